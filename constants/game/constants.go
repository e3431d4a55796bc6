package game_constants

import "time"

// Room creation defaults. Malformed or missing config fields fall back to
// these values field by field, they are never a reason to reject a request.
const (
	DefaultRoomName      = "Partido rápido"
	DefaultMaxPlayers    = 2
	DefaultGameMode      = "1v1"
	DefaultStadium       = "classic"
	DefaultWeather       = "clear"
	DefaultMatchDuration = 120 // seconds, interpreted by the client only
)

const MaxRoomPlayers = 8
const RoomIDLength = 6

// Reaper timeouts. A room stuck in "waiting" is abandoned sooner than a room
// stuck in "playing", since a playing room may just be a long match.
const (
	ReaperInterval     = 5 * time.Minute
	WaitingRoomTimeout = 30 * time.Minute
	PlayingRoomTimeout = 2 * time.Hour
)

// Friend mailbox retention
const (
	MailboxRetention     = 7 * 24 * time.Hour
	MailboxPruneInterval = 6 * time.Hour
)

const LeaderboardTopN = 10

// Relayed scores are clamped to this range before fan-out. The server does no
// other validation of gameplay values.
const MaxRelayedScore = 100
