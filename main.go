package main

import (
	"Golazo/middleware"
	"Golazo/routes"
	"Golazo/services/redis"
	"Golazo/services/rooms"
	"Golazo/services/socket_io"
	socketio_types "Golazo/services/socket_io/types"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// All state is volatile: by default the keyed stores run on an embedded
	// in-process redis that dies with the process. REDIS_URL overrides it
	// for debugging against a real instance.
	var redisClient *redis.RedisClient
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rc, err := redis.InitRedis(redisURL)
		if err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
		redisClient = rc
	} else {
		rc, mr, err := redis.InitEmbedded()
		if err != nil {
			log.Fatalf("Error starting embedded redis: %v", err)
		}
		defer mr.Close()
		redisClient = rc
	}
	defer redis.CloseRedis(redisClient)

	sio := socketio_types.NewSocketServer()
	coord := rooms.NewCoordinator(sio, redisClient, redisClient)

	reaper := rooms.NewReaper(coord, redisClient)
	reaper.Start()
	defer reaper.Stop()

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, coord, redisClient)

	(*socket_io.MySocketServer)(sio).Start(r, coord, redisClient)

	// Configure port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
