package redis

import (
	"fmt"
	"log"

	miniredis "github.com/alicebob/miniredis/v2"
)

// InitRedis initializes the Redis connection and basic configuration
func InitRedis(addr string) (*RedisClient, error) {
	rc := NewRedisClient(addr)

	// Test connection
	if err := rc.client.Ping(rc.ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")
	return rc, nil
}

// InitEmbedded starts an in-process miniredis instance and connects a client
// to it. This is the default mode: all state stays inside the process and
// disappears with it, there is no persistence across restart.
func InitEmbedded() (*RedisClient, *miniredis.Miniredis, error) {
	mr, err := miniredis.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start embedded redis: %v", err)
	}

	rc, err := InitRedis(mr.Addr())
	if err != nil {
		mr.Close()
		return nil, nil, err
	}

	log.Printf("Embedded redis listening on %s", mr.Addr())
	return rc, mr, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
