package handlers

import (
	"Golazo/models"
	"Golazo/services/rooms"
	socketio_types "Golazo/services/socket_io/types"
	"log"
)

// HandleDisconnecting runs the full teardown path when a transport
// connection drops: identical to an explicit leave, then the session record
// and the connection map entry go away.
func HandleDisconnecting(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] Session %d disconnecting", session.ID)
		coord.Disconnect(session.ID)
		sio.RemoveConnection(session.ID)
	}
}
