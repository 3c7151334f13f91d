package handler

import (
	"net/http"
	"time"

	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// UserResponse is the public projection of a user. The password hash is never
// part of any response shape.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin(),
		CreatedAt: user.CreatedAt,
	}
}

// GetUsers returns all registered users.
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve users"})
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, newUserResponse(user))
	}
	c.JSON(http.StatusOK, response)
}
