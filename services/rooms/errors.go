package rooms

import "errors"

// Join rejections. All of them are user-facing and non-fatal: the handler
// layer translates them into a join_error emit to the requesting connection
// and nothing else happens.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomAlreadyStarted = errors.New("room already started")
	ErrRoomFull           = errors.New("room is full")
	ErrWrongPassword      = errors.New("wrong password")
)

// ErrorMessage maps a join rejection to the message sent to the client.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "Room not found"
	case errors.Is(err, ErrRoomAlreadyStarted):
		return "Match already started"
	case errors.Is(err, ErrRoomFull):
		return "Room is full"
	case errors.Is(err, ErrWrongPassword):
		return "Wrong password"
	default:
		return "Could not join room"
	}
}
