package controllers

import (
	"Golazo/services/rooms"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetOpenRooms returns the public rooms still waiting for players: the same
// filtered view the get_rooms socket event answers with, reachable without a
// socket connection.
func GetOpenRooms(coord *rooms.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": coord.ListRooms()})
	}
}
