package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body used for errors and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorKind classifies request failures. Kinds stay distinct internally even
// when several of them map to the same HTTP status.
type ErrorKind int

const (
	// ErrValidation covers malformed or out-of-range input.
	ErrValidation ErrorKind = iota
	// ErrConflict covers uniqueness violations such as a taken username.
	ErrConflict
	// ErrAuth covers failed credential checks. The message must stay generic
	// so callers cannot probe which usernames exist.
	ErrAuth
	// ErrNotFound covers references to entities that do not exist.
	ErrNotFound
)

// AppError is a request failure with a kind and a human-readable message.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// statusFor maps an error kind to the HTTP status the API contract promises.
// Conflicts and credential failures answer 400 like plain validation errors;
// the client tells them apart only by message.
func statusFor(kind ErrorKind) int {
	if kind == ErrNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// abortWithError writes the JSON error body for an AppError.
func abortWithError(c *gin.Context, err *AppError) {
	c.JSON(statusFor(err.Kind), MessageResponse{Message: err.Message})
}
