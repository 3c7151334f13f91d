package handler

import (
	"net/http"
	"strconv"
	"time"

	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// AttendanceInput defines the structure for submitting attendance.
// IsAttending is a pointer so an explicit false still passes the required
// binding check.
type AttendanceInput struct {
	GameID      uint  `json:"gameId" binding:"required"`
	UserID      uint  `json:"userId" binding:"required"`
	IsAttending *bool `json:"isAttending" binding:"required"`
}

// AttendanceResponse is the projection of one attendance row.
type AttendanceResponse struct {
	ID          uint      `json:"id"`
	GameID      uint      `json:"gameId"`
	UserID      uint      `json:"userId"`
	IsAttending bool      `json:"isAttending"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newAttendanceResponse(a models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		GameID:      a.GameID,
		UserID:      a.UserID,
		IsAttending: a.IsAttending,
		UpdatedAt:   a.UpdatedAt,
	}
}

// endregion

// SubmitAttendance records whether a user will attend a game. One row per
// (game, user); a repeat submission flips the flag in place via the same
// conditional-write pattern the rating upsert uses.
func SubmitAttendance(c *gin.Context) {
	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "gameId, userId and isAttending are required"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "game not found"})
		return
	}
	var user models.User
	if err := database.DB.First(&user, input.UserID).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "user not found"})
		return
	}

	attendance := models.Attendance{
		GameID:      input.GameID,
		UserID:      input.UserID,
		IsAttending: *input.IsAttending,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_attending": *input.IsAttending,
			"updated_at":   time.Now(),
		}),
	}).Create(&attendance).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to save attendance"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "attendance saved"})
}

// GetGameAttendance lists every attendance answer recorded for a game.
func GetGameAttendance(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 32)
	if err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "invalid game id"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, uint(gameID)).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "game not found"})
		return
	}

	var rows []models.Attendance
	if err := database.DB.Where("game_id = ?", uint(gameID)).Order("user_id ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve attendance"})
		return
	}

	response := make([]AttendanceResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, newAttendanceResponse(row))
	}
	c.JSON(http.StatusOK, response)
}
