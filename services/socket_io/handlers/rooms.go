package handlers

import (
	"Golazo/models"
	"Golazo/services/rooms"
	socketio_utils "Golazo/services/socket_io/utils"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

type createRoomPayload struct {
	PlayerName    string `json:"playerName"`
	RoomName      string `json:"roomName"`
	MaxPlayers    int    `json:"maxPlayers"`
	GameMode      string `json:"gameMode"`
	Stadium       string `json:"stadium"`
	Weather       string `json:"weather"`
	MatchDuration int    `json:"matchDuration"`
	IsPrivate     bool   `json:"isPrivate"`
	Password      string `json:"password"`
}

// HandleCreateRoom builds a room with the sender as sole occupant and host.
// There is no error path: whatever the payload looks like, missing pieces
// are defaulted field by field.
func HandleCreateRoom(coord *rooms.Coordinator, client *socket.Socket,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p createRoomPayload
		socketio_utils.Bind(args, &p)

		log.Printf("[CREATE] create_room from session %d (%s)", session.ID, p.PlayerName)
		coord.CreateRoom(session.ID, rooms.CreateConfig{
			PlayerName:    p.PlayerName,
			RoomName:      p.RoomName,
			MaxPlayers:    p.MaxPlayers,
			GameMode:      p.GameMode,
			Stadium:       p.Stadium,
			Weather:       p.Weather,
			MatchDuration: p.MatchDuration,
			IsPrivate:     p.IsPrivate,
			Password:      p.Password,
		})
	}
}

// HandleGetRooms answers with the public rooms still waiting for players.
func HandleGetRooms(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		client.Emit("rooms_list", gin.H{"rooms": coord.ListRooms()})
	}
}

type joinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	Password   string `json:"password"`
}

// HandleJoinRoom appends the sender to a waiting room. Rejections (unknown,
// started, full, wrong password) go back to the requesting connection only.
func HandleJoinRoom(coord *rooms.Coordinator, client *socket.Socket,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p joinRoomPayload
		if !socketio_utils.Bind(args, &p) || p.RoomID == "" {
			log.Printf("[JOIN-ERROR] Missing room id from session %d", session.ID)
			client.Emit("join_error", gin.H{"message": rooms.ErrorMessage(rooms.ErrRoomNotFound)})
			return
		}

		snap, err := coord.JoinRoom(session.ID, p.RoomID, p.Password, p.PlayerName)
		if err != nil {
			log.Printf("[JOIN-ERROR] Session %d -> room %s: %v", session.ID, p.RoomID, err)
			client.Emit("join_error", gin.H{"message": rooms.ErrorMessage(err)})
			return
		}
		client.Emit("room_joined", gin.H{"room": snap})
	}
}

// HandleToggleReady flips the sender's ready flag; no-op outside a room.
func HandleToggleReady(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		coord.ToggleReady(session.ID)
	}
}

// HandleLeaveRoom covers the explicit leave_room event.
func HandleLeaveRoom(coord *rooms.Coordinator, session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		coord.Leave(session.ID)
	}
}
