package handlers

import (
	game_constants "Golazo/constants/game"
	"Golazo/models"
	"Golazo/services/redis"
	"Golazo/services/rooms"
	socketio_utils "Golazo/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

type gameEndPayload struct {
	Players []rooms.PlayerResult `json:"players"`
}

// HandleGameEnd returns the sender's room to waiting and folds each
// occupant's result into the leaderboard. Duplicate reports for the same
// match are absorbed by the coordinator.
func HandleGameEnd(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p gameEndPayload
		socketio_utils.Bind(args, &p)
		coord.EndMatch(session.ID, p.Players)
	}
}

type offlineResultPayload struct {
	PlayerName  string `json:"playerName"`
	PlayerScore int    `json:"playerScore"`
	AiScore     int    `json:"aiScore"`
	Won         bool   `json:"won"`
}

// HandleOfflineMatchResult records a single-sided result from a match
// against the built-in opponent.
func HandleOfflineMatchResult(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p offlineResultPayload
		if !socketio_utils.Bind(args, &p) || p.PlayerName == "" {
			return
		}
		coord.RecordOfflineResult(session.ID, p.PlayerName, p.PlayerScore, p.AiScore, p.Won)
	}
}

// HandleGetLeaderboard answers with the current top-10 snapshot.
func HandleGetLeaderboard(redisClient *redis.RedisClient, client *socket.Socket,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		entries, err := redisClient.TopEntries(game_constants.LeaderboardTopN)
		if err != nil {
			log.Printf("[LEADERBOARD-ERROR] Session %d: %v", session.ID, err)
			client.Emit("error", gin.H{"error": "Error reading leaderboard"})
			return
		}
		client.Emit("leaderboard_data", gin.H{"entries": entries})
	}
}
