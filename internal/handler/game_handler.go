package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// kickoffLayout is the combined form of the split gameDate + gameTime fields.
const kickoffLayout = "2006-01-02 15:04"

// region --- DTOs ---

// GameInput defines the structure for creating a game.
type GameInput struct {
	GameDate        string `json:"gameDate" binding:"required"`
	GameTime        string `json:"gameTime" binding:"required"`
	Location        string `json:"location" binding:"required,max=200"`
	Opponent        string `json:"opponent" binding:"required,max=100"`
	CreatedByUserID uint   `json:"createdByUserId" binding:"required"`
}

// GameResponse is the projection of a game. The owning user is referenced by
// id only, never serialized inline, so the response cannot cycle through the
// creator relation.
type GameResponse struct {
	ID              uint      `json:"id"`
	GameDate        string    `json:"gameDate"`
	GameTime        string    `json:"gameTime"`
	Location        string    `json:"location"`
	Opponent        string    `json:"opponent"`
	CreatedByUserID uint      `json:"createdByUserId"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:              game.ID,
		GameDate:        game.KickoffAt.Format("2006-01-02"),
		GameTime:        game.KickoffAt.Format("15:04"),
		Location:        game.Location,
		Opponent:        game.Opponent,
		CreatedByUserID: game.CreatedByUserID,
		CreatedAt:       game.CreatedAt,
	}
}

// endregion

// CreateGame schedules a new game. The split date and time fields are parsed
// into one orderable kickoff timestamp; any failure answers 400 rather than
// escaping the handler.
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: fmt.Sprintf("error creating game: %v", err)})
		return
	}

	kickoff, err := time.ParseInLocation(kickoffLayout, input.GameDate+" "+input.GameTime, time.Local)
	if err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: fmt.Sprintf("error creating game: %v", err)})
		return
	}

	var creator models.User
	if err := database.DB.First(&creator, input.CreatedByUserID).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "user not found"})
		return
	}

	game := models.Game{
		KickoffAt:       kickoff,
		Location:        input.Location,
		Opponent:        input.Opponent,
		CreatedByUserID: creator.ID,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: fmt.Sprintf("error creating game: %v", err)})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// GetGames returns every game in chronological order.
func GetGames(c *gin.Context) {
	var games []models.Game
	if err := database.DB.Order("kickoff_at ASC").Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetNextGame returns the chronologically nearest game whose kickoff is now
// or later, or 404 when none is scheduled.
func GetNextGame(c *gin.Context) {
	var game models.Game
	err := database.DB.Where("kickoff_at >= ?", time.Now()).Order("kickoff_at ASC").First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortWithError(c, &AppError{Kind: ErrNotFound, Message: "no upcoming games"})
			return
		}
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve games"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetPastGames returns every game already played, most recent first.
func GetPastGames(c *gin.Context) {
	var games []models.Game
	err := database.DB.Where("kickoff_at < ?", time.Now()).Order("kickoff_at DESC").Find(&games).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve games"})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}
