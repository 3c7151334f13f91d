package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// RatingInput defines the structure for submitting a rating.
type RatingInput struct {
	RaterUserID uint `json:"raterUserId" binding:"required"`
	RatedUserID uint `json:"ratedUserId" binding:"required"`
	Stars       int  `json:"stars" binding:"required,min=1,max=5"`
}

// StarsResponse carries the stars one user gave another. Zero means the pair
// has no rating yet.
type StarsResponse struct {
	Stars int `json:"stars"`
}

// PlayerResponse is one leaderboard row.
type PlayerResponse struct {
	ID            uint    `json:"id"`
	Username      string  `json:"username"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int64   `json:"totalRatings"`
}

// endregion

// SubmitRating records a star rating from one user to another. A pair rates
// at most once: the write is a single conditional insert keyed on the
// composite (rater, rated) index, so a repeat submission overwrites the stars
// in place and concurrent submissions never produce a second row.
func SubmitRating(c *gin.Context) {
	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "raterUserId, ratedUserId and stars (1-5) are required"})
		return
	}

	if input.RaterUserID == input.RatedUserID {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "users cannot rate themselves"})
		return
	}

	var rater models.User
	if err := database.DB.First(&rater, input.RaterUserID).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "rater not found"})
		return
	}
	var rated models.User
	if err := database.DB.First(&rated, input.RatedUserID).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrNotFound, Message: "rated user not found"})
		return
	}

	rating := models.Rating{
		RaterUserID: input.RaterUserID,
		RatedUserID: input.RatedUserID,
		Stars:       input.Stars,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rater_user_id"}, {Name: "rated_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stars":      input.Stars,
			"updated_at": time.Now(),
		}),
	}).Create(&rating).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "rating saved"})
}

// GetRating returns the stars rater gave rated, with 0 as the "not yet
// rated" sentinel rather than an error.
func GetRating(c *gin.Context) {
	raterID, err := strconv.ParseUint(c.Param("raterUserId"), 10, 32)
	if err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "invalid rater user id"})
		return
	}
	ratedID, err := strconv.ParseUint(c.Param("ratedUserId"), 10, 32)
	if err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "invalid rated user id"})
		return
	}

	var rating models.Rating
	err = database.DB.Where("rater_user_id = ? AND rated_user_id = ?", uint(raterID), uint(ratedID)).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, StarsResponse{Stars: 0})
			return
		}
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve rating"})
		return
	}

	c.JSON(http.StatusOK, StarsResponse{Stars: rating.Stars})
}

// GetPlayers returns every user with their received-rating average and count,
// best-rated first. Unrated users score 0.0. Ties break on ascending id so
// the order is deterministic.
func GetPlayers(c *gin.Context) {
	var players []PlayerResponse
	err := database.DB.Model(&models.User{}).
		Select("users.id AS id, users.username AS username, COALESCE(AVG(ratings.stars), 0) AS average_rating, COUNT(ratings.id) AS total_ratings").
		Joins("LEFT JOIN ratings ON ratings.rated_user_id = users.id").
		Group("users.id, users.username").
		Order("average_rating DESC, users.id ASC").
		Scan(&players).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to retrieve players"})
		return
	}

	if players == nil {
		players = []PlayerResponse{}
	}
	c.JSON(http.StatusOK, players)
}
