package handler

import (
	"net/http"
	"testing"
	"time"

	"kickrate/backend/internal/database"
	"kickrate/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedGame inserts a game directly so tests control the kickoff timestamp.
func seedGame(t *testing.T, userID uint, kickoff time.Time, opponent string) models.Game {
	t.Helper()
	game := models.Game{
		KickoffAt:       kickoff,
		Location:        "Home pitch",
		Opponent:        opponent,
		CreatedByUserID: userID,
	}
	require.NoError(t, database.DB.Create(&game).Error)
	return game
}

func TestCreateGame_Success(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")

	w := doJSON(r, http.MethodPost, "/games", gin.H{
		"gameDate":        "2030-05-12",
		"gameTime":        "19:30",
		"location":        "City Stadium",
		"opponent":        "FC Rivals",
		"createdByUserId": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp GameResponse
	decodeBody(t, w, &resp)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "2030-05-12", resp.GameDate)
	assert.Equal(t, "19:30", resp.GameTime)
	assert.Equal(t, "City Stadium", resp.Location)
	assert.Equal(t, "FC Rivals", resp.Opponent)
	assert.Equal(t, userID, resp.CreatedByUserID)
}

func TestCreateGame_UnparseableDate(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")

	w := doJSON(r, http.MethodPost, "/games", gin.H{
		"gameDate":        "next tuesday",
		"gameTime":        "19:30",
		"location":        "City Stadium",
		"opponent":        "FC Rivals",
		"createdByUserId": userID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp MessageResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateGame_UnknownCreator(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/games", gin.H{
		"gameDate":        "2030-05-12",
		"gameTime":        "19:30",
		"location":        "City Stadium",
		"opponent":        "FC Rivals",
		"createdByUserId": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetGames_ChronologicalOrder(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")

	now := time.Now()
	seedGame(t, userID, now.Add(48*time.Hour), "second")
	seedGame(t, userID, now.Add(-24*time.Hour), "first")
	seedGame(t, userID, now.Add(72*time.Hour), "third")

	w := doJSON(r, http.MethodGet, "/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []GameResponse
	decodeBody(t, w, &games)
	require.Len(t, games, 3)
	assert.Equal(t, "first", games[0].Opponent)
	assert.Equal(t, "second", games[1].Opponent)
	assert.Equal(t, "third", games[2].Opponent)
}

func TestGetNextGame_EarliestUpcoming(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")

	now := time.Now()
	seedGame(t, userID, now.Add(-24*time.Hour), "played")
	seedGame(t, userID, now.Add(72*time.Hour), "later")
	seedGame(t, userID, now.Add(24*time.Hour), "soonest")

	w := doJSON(r, http.MethodGet, "/games/next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var game GameResponse
	decodeBody(t, w, &game)
	assert.Equal(t, "soonest", game.Opponent)
}

func TestGetNextGame_NoneScheduled(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")
	seedGame(t, userID, time.Now().Add(-24*time.Hour), "played")

	w := doJSON(r, http.MethodGet, "/games/next", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPastGames_DescendingAndExcludesFuture(t *testing.T) {
	r := newTestRouter(t)
	userID := registerUser(t, r, "alice")

	now := time.Now()
	seedGame(t, userID, now.Add(-72*time.Hour), "oldest")
	seedGame(t, userID, now.Add(-24*time.Hour), "recent")
	seedGame(t, userID, now.Add(24*time.Hour), "upcoming")

	w := doJSON(r, http.MethodGet, "/games/past", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []GameResponse
	decodeBody(t, w, &games)
	require.Len(t, games, 2)
	assert.Equal(t, "recent", games[0].Opponent)
	assert.Equal(t, "oldest", games[1].Opponent)
}
