package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"kickrate/backend/internal/config"
	"kickrate/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a fresh temp-file database and the full route table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		Port:          "8080",
		DatabasePath:  filepath.Join(t.TempDir(), "test.db"),
		AdminUsername: "roie",
	}
	database.Connect(config.AppConfig.DatabasePath)

	r := gin.New()
	r.Use(gin.Recovery())

	authRoutes := r.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	r.GET("/users", GetUsers)

	gameRoutes := r.Group("/games")
	gameRoutes.GET("", GetGames)
	gameRoutes.GET("/next", GetNextGame)
	gameRoutes.GET("/past", GetPastGames)
	gameRoutes.POST("", CreateGame)

	r.GET("/players", GetPlayers)

	ratingRoutes := r.Group("/ratings")
	ratingRoutes.POST("", SubmitRating)
	ratingRoutes.GET("/:raterUserId/:ratedUserId", GetRating)

	attendanceRoutes := r.Group("/attendance")
	attendanceRoutes.POST("", SubmitAttendance)
	attendanceRoutes.GET("/:gameId", GetGameAttendance)

	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, r http.Handler, username string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/auth/register", gin.H{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code, "register %s: %s", username, w.Body.String())

	var resp AuthResponse
	decodeBody(t, w, &resp)
	return resp.ID
}
