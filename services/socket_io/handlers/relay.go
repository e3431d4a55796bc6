package handlers

import (
	game_constants "Golazo/constants/game"
	"Golazo/models"
	"Golazo/services/rooms"
	socketio_types "Golazo/services/socket_io/types"
	socketio_utils "Golazo/services/socket_io/utils"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

/*
 * The relay router. Gameplay telemetry (movement, ball physics, the clock
 * held by whichever peer acts as host) and cosmetic signals are forwarded
 * verbatim to the other occupant(s) of the sender's room, tagged with the
 * sender's player id, never echoed back. The server does not interpret,
 * buffer or reorder any of it.
 *
 * Two exceptions broadcast to the whole room, sender included: goal updates
 * and the second-half transition, because both drive a shared scoreboard
 * rather than only the opponent's view.
 */

// RelayToOpponent forwards the payload to everyone else in the sender's
// room under outEvent. Senders outside a room are a silent no-op.
func RelayToOpponent(coord *rooms.Coordinator, client *socket.Socket,
	session *models.Session, outEvent string) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomID, playerID, ok := coord.RelayTarget(session.ID)
		if !ok {
			return
		}
		payload := socketio_utils.RawPayload(args)
		payload["senderId"] = playerID
		client.To(socket.Room(roomID)).Emit(outEvent, payload)
	}
}

// HandleGoalUpdate broadcasts a goal to the whole room, sender included.
// Scores are bounds-checked before fan-out; nothing else is validated.
func HandleGoalUpdate(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomID, playerID, ok := coord.RelayTarget(session.ID)
		if !ok {
			return
		}
		payload := socketio_utils.RawPayload(args)
		payload["senderId"] = playerID
		for _, key := range []string{"playerScore", "aiScore"} {
			if v, found := socketio_utils.IntField(payload, key); found {
				payload[key] = socketio_utils.ClampInt(v, 0, game_constants.MaxRelayedScore)
			}
		}

		log.Printf("[RELAY] goal_update in room %s by player %d", roomID, playerID)
		sio.ToRoom(roomID, "goal_update", payload)
	}
}

// HandleSecondHalfStart broadcasts the second-half kickoff to the whole
// room, sender included, so both scoreboards restart in step.
func HandleSecondHalfStart(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		roomID, playerID, ok := coord.RelayTarget(session.ID)
		if !ok {
			return
		}
		payload := socketio_utils.RawPayload(args)
		payload["senderId"] = playerID
		sio.ToRoom(roomID, "second_half_start", payload)
	}
}
