package controllers

import (
	"Golazo/models"
	"Golazo/services/redis"
	"Golazo/services/rooms"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) ToSession(uint64, string, any)            {}
func (noopNotifier) ToRoom(string, string, any)               {}
func (noopNotifier) ToRoomExcept(string, uint64, string, any) {}
func (noopNotifier) Broadcast(string, any)                    {}
func (noopNotifier) JoinRoom(uint64, string)                  {}
func (noopNotifier) LeaveRoom(uint64, string)                 {}

type emptyMailbox struct{}

func (emptyMailbox) FlushPending(string) ([]models.PendingFriendRequest, error) {
	return nil, nil
}

func testRouter(t *testing.T) (*gin.Engine, *rooms.Coordinator, *redis.RedisClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rc := redis.NewRedisClient(mr.Addr())
	coord := rooms.NewCoordinator(noopNotifier{}, emptyMailbox{}, rc)

	router := gin.New()
	router.GET("/ping", Ping)
	router.GET("/rooms", GetOpenRooms(coord))
	router.GET("/leaderboard", GetLeaderboard(rc))
	return router, coord, rc
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	router, _, _ := testRouter(t)

	w := doGet(router, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
}

func TestGetOpenRooms(t *testing.T) {
	router, coord, _ := testRouter(t)

	w := doGet(router, "/rooms")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rooms": []}`, w.Body.String())

	s := coord.Connect()
	coord.CreateRoom(s.ID, rooms.CreateConfig{PlayerName: "alice", RoomName: "Derbi"})

	hidden := coord.Connect()
	coord.CreateRoom(hidden.ID, rooms.CreateConfig{PlayerName: "bob", IsPrivate: true})

	w = doGet(router, "/rooms")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rooms []models.RoomSnapshot `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "Derbi", body.Rooms[0].Name)
	assert.Equal(t, 1, body.Rooms[0].PlayerCount)
}

func TestGetLeaderboard(t *testing.T) {
	router, _, rc := testRouter(t)

	require.NoError(t, rc.RecordResult("alice", 3, 0, models.OutcomeWon))
	require.NoError(t, rc.RecordResult("bob", 0, 3, models.OutcomeLost))

	w := doGet(router, "/leaderboard")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Entries []models.LeaderboardEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Entries, 2)
	assert.Equal(t, "alice", body.Entries[0].Name)
	assert.Equal(t, 1, body.Entries[0].Wins)
}
