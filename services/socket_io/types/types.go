package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and a map of
// socket connections keyed by session id. It is the delivery side of the
// coordinator: every outbound event funnels through here.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track session id -> socket connection
	connections map[uint64]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		connections: make(map[uint64]*socket.Socket),
	}
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(sessionID uint64, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.connections[sessionID] = client
}

func (s *SocketServer) RemoveConnection(sessionID uint64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.connections, sessionID)
}

func (s *SocketServer) GetConnection(sessionID uint64) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.connections[sessionID]
	return client, exists
}

// The methods below implement rooms.Notifier.

// ToSession emits to one session's connection, if it is still attached.
func (s *SocketServer) ToSession(sessionID uint64, event string, payload any) {
	if client, ok := s.GetConnection(sessionID); ok {
		client.Emit(event, payload)
	}
}

// ToRoom emits to every occupant of a transport room, sender included.
func (s *SocketServer) ToRoom(roomID string, event string, payload any) {
	s.Sio_server.To(socket.Room(roomID)).Emit(event, payload)
}

// ToRoomExcept emits to a room minus one session. Each socket sits in a
// personal room named after its own id, which is what Except keys on.
func (s *SocketServer) ToRoomExcept(roomID string, exceptSessionID uint64, event string, payload any) {
	client, ok := s.GetConnection(exceptSessionID)
	if !ok {
		s.ToRoom(roomID, event, payload)
		return
	}
	s.Sio_server.To(socket.Room(roomID)).Except(socket.Room(client.Id())).Emit(event, payload)
}

// Broadcast emits to every live connection.
func (s *SocketServer) Broadcast(event string, payload any) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	for _, client := range s.connections {
		client.Emit(event, payload)
	}
}

// JoinRoom binds a session's socket to a transport room.
func (s *SocketServer) JoinRoom(sessionID uint64, roomID string) {
	if client, ok := s.GetConnection(sessionID); ok {
		client.Join(socket.Room(roomID))
	}
}

// LeaveRoom unbinds a session's socket from a transport room.
func (s *SocketServer) LeaveRoom(sessionID uint64, roomID string) {
	if client, ok := s.GetConnection(sessionID); ok {
		client.Leave(socket.Room(roomID))
	}
}
