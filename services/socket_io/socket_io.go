package socket_io

import (
	"Golazo/services/redis"
	"Golazo/services/rooms"
	"Golazo/services/socket_io/handlers"
	socketio_types "Golazo/services/socket_io/types"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// safe wraps an event handler so a panic in one message cannot take down the
// connection or the process: caught at the dispatch boundary, logged,
// swallowed.
func safe(event string, h func(args ...interface{})) func(args ...interface{}) {
	return func(args ...interface{}) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[DISPATCH-ERROR] Handler for %q panicked: %v", event, r)
			}
		}()
		h(args...)
	}
}

func (sio *MySocketServer) Start(router *gin.Engine, coord *rooms.Coordinator, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	self := (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Assign a fresh session to the connection. No authentication: the
		// display name the client asserts later is all the identity there is.
		session := coord.Connect()
		self.AddConnection(session.ID, client)
		log.Printf("[CONNECT] Socket %s -> session %d", client.Id(), session.ID)

		// Room lifecycle
		client.On("create_room", safe("create_room", handlers.HandleCreateRoom(coord, client, session)))
		client.On("get_rooms", safe("get_rooms", handlers.HandleGetRooms(coord, client)))
		client.On("join_room", safe("join_room", handlers.HandleJoinRoom(coord, client, session)))
		client.On("toggle_ready", safe("toggle_ready", handlers.HandleToggleReady(coord, session)))
		client.On("leave_room", safe("leave_room", handlers.HandleLeaveRoom(coord, session)))

		// Gameplay relay: opponent-only telemetry and cosmetics
		client.On("game_update", safe("game_update", handlers.RelayToOpponent(coord, client, session, "game_update")))
		client.On("player_sync", safe("player_sync", handlers.RelayToOpponent(coord, client, session, "player_sync")))
		client.On("ball_touch", safe("ball_touch", handlers.RelayToOpponent(coord, client, session, "ball_touch")))
		client.On("ball_sync", safe("ball_sync", handlers.RelayToOpponent(coord, client, session, "ball_sync")))
		client.On("time_sync", safe("time_sync", handlers.RelayToOpponent(coord, client, session, "time_sync")))
		client.On("start_replay", safe("start_replay", handlers.RelayToOpponent(coord, client, session, "start_replay")))
		client.On("send_emoji", safe("send_emoji", handlers.RelayToOpponent(coord, client, session, "emoji_received")))

		// Whole-room exceptions: shared scoreboard events
		client.On("goal_update", safe("goal_update", handlers.HandleGoalUpdate(coord, self, session)))
		client.On("second_half_start", safe("second_half_start", handlers.HandleSecondHalfStart(coord, self, session)))

		// Half-time barrier
		client.On("half_time", safe("half_time", handlers.HandleHalfTime(coord, session)))
		client.On("half_time_ready", safe("half_time_ready", handlers.HandleHalfTimeReady(coord, session)))

		// Results and leaderboard
		client.On("game_end", safe("game_end", handlers.HandleGameEnd(coord, session)))
		client.On("offline_match_result", safe("offline_match_result", handlers.HandleOfflineMatchResult(coord, session)))
		client.On("get_leaderboard", safe("get_leaderboard", handlers.HandleGetLeaderboard(redisClient, client, session)))

		// Friends
		client.On("send_friend_request", safe("send_friend_request", handlers.HandleSendFriendRequest(coord, redisClient, client, self, session)))
		client.On("accept_friend_request", safe("accept_friend_request", handlers.HandleAcceptFriendRequest(coord, self, session)))
		client.On("decline_friend_request", safe("decline_friend_request", handlers.HandleDeclineFriendRequest(coord, self, session)))
		client.On("remove_friend", safe("remove_friend", handlers.HandleRemoveFriend(coord, self, session)))
		client.On("send_game_invite", safe("send_game_invite", handlers.HandleSendGameInvite(coord, self, session)))
		client.On("get_online_friends", safe("get_online_friends", handlers.HandleGetOnlineFriends(coord, client)))

		// NOTE: will run the same teardown path as an explicit leave
		client.On("disconnecting", safe("disconnecting", handlers.HandleDisconnecting(coord, self, session)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}
