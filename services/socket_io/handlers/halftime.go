package handlers

import (
	"Golazo/models"
	"Golazo/services/rooms"
	socketio_utils "Golazo/services/socket_io/utils"
)

type halfTimePayload struct {
	PlayerScore int `json:"playerScore"`
	AiScore     int `json:"aiScore"`
}

// HandleHalfTime opens the half-time barrier for the sender's room and
// shares the score at the break with every occupant.
func HandleHalfTime(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p halfTimePayload
		socketio_utils.Bind(args, &p)
		coord.HalfTimeStart(session.ID, p.PlayerScore, p.AiScore)
	}
}

// HandleHalfTimeReady signals the sender is ready for the second half. The
// resume fires once every current occupant has signaled.
func HandleHalfTimeReady(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		coord.HalfTimeReady(session.ID)
	}
}
