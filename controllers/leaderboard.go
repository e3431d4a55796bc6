package controllers

import (
	game_constants "Golazo/constants/game"
	"Golazo/services/redis"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top-10 snapshot, ordered by wins, then goal
// differential, then goals scored.
func GetLeaderboard(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := redisClient.TopEntries(game_constants.LeaderboardTopN)
		if err != nil {
			log.Printf("[LEADERBOARD-ERROR] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading leaderboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}
