package main

import (
	"fmt"
	"log"
	"net/http"

	"kickrate/backend/internal/config"
	"kickrate/backend/internal/database"
	"kickrate/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func init() {
	config.LoadConfig()
}

func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabasePath)

	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", handler.RegisterUser)
		authRoutes.POST("/login", handler.LoginUser)
	}

	// User routes
	router.GET("/users", handler.GetUsers)

	// Game routes
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", handler.GetGames)
		gameRoutes.GET("/next", handler.GetNextGame)
		gameRoutes.GET("/past", handler.GetPastGames)
		gameRoutes.POST("", handler.CreateGame)
	}

	// Player leaderboard
	router.GET("/players", handler.GetPlayers)

	// Rating routes
	ratingRoutes := router.Group("/ratings")
	{
		ratingRoutes.POST("", handler.SubmitRating)
		ratingRoutes.GET("/:raterUserId/:ratedUserId", handler.GetRating)
	}

	// Attendance routes
	attendanceRoutes := router.Group("/attendance")
	{
		attendanceRoutes.POST("", handler.SubmitAttendance)
		attendanceRoutes.GET("/:gameId", handler.GetGameAttendance)
	}

	addr := ":" + config.AppConfig.Port
	fmt.Printf("Server is running on %s\n", addr)
	log.Fatal(router.Run(addr))
}
