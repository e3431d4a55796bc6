package handlers

import (
	"Golazo/models"
	"Golazo/services/redis"
	"Golazo/services/rooms"
	socketio_types "Golazo/services/socket_io/types"
	socketio_utils "Golazo/services/socket_io/utils"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zishang520/socket.io/v2/socket"
)

type friendRequestPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// HandleSendFriendRequest delivers the request immediately when the
// recipient name is bound to a live session, otherwise it queues a mailbox
// entry and acknowledges the sender with friend_request_queued.
func HandleSendFriendRequest(coord *rooms.Coordinator, redisClient *redis.RedisClient,
	client *socket.Socket, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p friendRequestPayload
		socketio_utils.Bind(args, &p)
		if p.From == "" {
			p.From = coord.SessionName(session.ID)
		}
		if p.To == "" || p.From == "" {
			return
		}

		req := models.PendingFriendRequest{
			ID:        uuid.NewString(),
			From:      p.From,
			To:        p.To,
			CreatedAt: time.Now(),
		}

		if targetID, online := coord.SessionByName(p.To); online {
			sio.ToSession(targetID, "friend_request_received", gin.H{
				"id":        req.ID,
				"from":      req.From,
				"createdAt": req.CreatedAt,
			})
			client.Emit("friend_request_sent", gin.H{"to": p.To, "id": req.ID})
			log.Printf("[FRIEND] Request %s delivered to online user %s", req.ID, p.To)
			return
		}

		if err := redisClient.EnqueuePendingRequest(&req); err != nil {
			log.Printf("[FRIEND-ERROR] Could not queue request for %s: %v", p.To, err)
			client.Emit("error", gin.H{"error": "Error sending friend request"})
			return
		}
		client.Emit("friend_request_queued", gin.H{
			"to":      p.To,
			"id":      req.ID,
			"message": "Will be delivered when they come online",
		})
		log.Printf("[FRIEND] Request %s queued for offline user %s", req.ID, p.To)
	}
}

// notifyFriend returns a handler for the point-to-point friend subtypes
// (accept, decline, remove). These are direct notifications to the
// recipient's currently active connection only; an offline target simply
// never receives them, there is no mailbox fallback.
func notifyFriend(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session, outEvent string) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p friendRequestPayload
		socketio_utils.Bind(args, &p)
		if p.From == "" {
			p.From = coord.SessionName(session.ID)
		}
		if p.To == "" {
			return
		}
		if targetID, online := coord.SessionByName(p.To); online {
			sio.ToSession(targetID, outEvent, gin.H{"from": p.From})
		}
	}
}

func HandleAcceptFriendRequest(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return notifyFriend(coord, sio, session, "friend_request_accepted")
}

func HandleDeclineFriendRequest(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return notifyFriend(coord, sio, session, "friend_request_declined")
}

func HandleRemoveFriend(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return notifyFriend(coord, sio, session, "friend_removed")
}

type gameInvitePayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	RoomID string `json:"roomId"`
}

// HandleSendGameInvite forwards a room invite to the named friend's active
// connection, if any.
func HandleSendGameInvite(coord *rooms.Coordinator, sio *socketio_types.SocketServer,
	session *models.Session) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p gameInvitePayload
		socketio_utils.Bind(args, &p)
		if p.From == "" {
			p.From = coord.SessionName(session.ID)
		}
		if p.To == "" {
			return
		}
		if targetID, online := coord.SessionByName(p.To); online {
			sio.ToSession(targetID, "game_invite_received", gin.H{
				"from":   p.From,
				"roomId": p.RoomID,
			})
		}
	}
}

type onlineFriendsPayload struct {
	Friends []string `json:"friends"`
}

// HandleGetOnlineFriends reports which of the supplied names are currently
// attached to a live session.
func HandleGetOnlineFriends(coord *rooms.Coordinator, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		var p onlineFriendsPayload
		socketio_utils.Bind(args, &p)
		client.Emit("online_friends", gin.H{"online": coord.OnlineNames(p.Friends)})
	}
}
