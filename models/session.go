package models

/*
 * 'Session' is the per-connection record. One is created when a transport
 * connection is accepted and destroyed when it disconnects. The display name
 * is self-asserted by the client and only becomes known on the first
 * room-affecting action (create_room, join_room or an offline result report).
 */
type Session struct {
	ID     uint64 // process-lifetime unique, monotonically assigned
	Name   string // empty until the client asserts one
	RoomID string // empty while not in a room
}

func (s *Session) InRoom() bool {
	return s.RoomID != ""
}
