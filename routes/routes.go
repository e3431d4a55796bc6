package routes

import (
	"Golazo/controllers"
	"Golazo/services/redis"
	"Golazo/services/rooms"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the read-only REST surface and the static client
// assets. The realtime channel is mounted separately by the socket service.
func SetupRoutes(router *gin.Engine, coord *rooms.Coordinator, redisClient *redis.RedisClient) {
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/rooms", controllers.GetOpenRooms(coord))

	api.GET("/leaderboard", controllers.GetLeaderboard(redisClient))

	// The game client itself; contents are opaque to the server.
	router.StaticFile("/", "./public/index.html")
	router.Static("/public", "./public")
}
