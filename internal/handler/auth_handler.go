package handler

import (
	"errors"
	"net/http"

	"kickrate/backend/internal/auth"
	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=4"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Message  string `json:"message"`
}

// endregion

// RegisterUser creates a new user with a bcrypt-hashed password.
// Usernames are unique case-insensitively; the role is decided once here by
// the auth package and stored on the row.
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "username must be 3-50 characters and password at least 4"})
		return
	}

	var existingUser models.User
	err := database.DB.Where("LOWER(username) = LOWER(?)", input.Username).First(&existingUser).Error
	if err == nil {
		abortWithError(c, &AppError{Kind: ErrConflict, Message: "username already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to check username"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "failed to hash password"})
		return
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		Role:         auth.RoleFor(input.Username),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// The unique index backstops a concurrent registration that slipped
		// past the lookup above.
		abortWithError(c, &AppError{Kind: ErrConflict, Message: "username already exists"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin(),
		Message:  "registration successful",
	})
}

// LoginUser verifies credentials. Unknown usernames and wrong passwords get
// the same generic message so the endpoint cannot be used to enumerate users.
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, &AppError{Kind: ErrValidation, Message: "username and password are required"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		abortWithError(c, &AppError{Kind: ErrAuth, Message: "invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		abortWithError(c, &AppError{Kind: ErrAuth, Message: "invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin(),
		Message:  "login successful",
	})
}
