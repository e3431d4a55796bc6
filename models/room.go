package models

import (
	"math/rand"
	"time"
)

type RoomStatus string

const (
	RoomWaiting RoomStatus = "waiting"
	RoomPlaying RoomStatus = "playing"
)

/*
 * 'Player' is the per-room occupant record. It exists only while its session
 * is a member of a room; leaving the room (or the room being torn down)
 * destroys it.
 */
type Player struct {
	SessionID uint64
	PlayerID  int
	Name      string
	Ready     bool
}

/*
 * 'Room' is the unit of match coordination. The players slice preserves join
 * order, the first occupant (the creator) is always the host. Config values
 * (game mode, stadium, weather, duration) are opaque passthrough, the server
 * never interprets them.
 */
type Room struct {
	ID            string
	Name          string
	HostSessionID uint64
	Players       []*Player // insertion order = join order
	MaxPlayers    int
	GameMode      string
	Stadium       string
	Weather       string
	MatchDuration int
	IsPrivate     bool
	PasswordHash  []byte // nil when the room has no password
	Status        RoomStatus
	CreatedAt     time.Time
	StartedAt     time.Time

	// Session ids that signaled readiness for the second-half resume.
	// Cleared when half-time starts and again on resume.
	HalfTimeReady map[uint64]struct{}
}

func (r *Room) IsFull() bool {
	return len(r.Players) >= r.MaxPlayers
}

func (r *Room) PlayerBySession(sessionID uint64) *Player {
	for _, p := range r.Players {
		if p.SessionID == sessionID {
			return p
		}
	}
	return nil
}

// RemovePlayer drops the occupant bound to sessionID, preserving join order
// of the remainder. Returns the removed player, or nil if not an occupant.
func (r *Room) RemovePlayer(sessionID uint64) *Player {
	for i, p := range r.Players {
		if p.SessionID == sessionID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return p
		}
	}
	return nil
}

// AllReady reports whether a match can start: at least two occupants and
// every one of them flagged ready.
func (r *Room) AllReady() bool {
	if len(r.Players) < 2 {
		return false
	}
	for _, p := range r.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

type PlayerSnapshot struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Ready    bool   `json:"ready"`
	IsHost   bool   `json:"isHost"`
}

type RoomSnapshot struct {
	ID            string           `json:"roomId"`
	Name          string           `json:"roomName"`
	HostID        int              `json:"hostId"`
	Players       []PlayerSnapshot `json:"players"`
	PlayerCount   int              `json:"playerCount"`
	MaxPlayers    int              `json:"maxPlayers"`
	GameMode      string           `json:"gameMode"`
	Stadium       string           `json:"stadium"`
	Weather       string           `json:"weather"`
	MatchDuration int              `json:"matchDuration"`
	IsPrivate     bool             `json:"isPrivate"`
	HasPassword   bool             `json:"hasPassword"`
	Status        RoomStatus       `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Snapshot builds the wire representation of the room. The password hash is
// never part of it.
func (r *Room) Snapshot() RoomSnapshot {
	players := make([]PlayerSnapshot, len(r.Players))
	hostID := 0
	for i, p := range r.Players {
		players[i] = PlayerSnapshot{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Ready:    p.Ready,
			IsHost:   p.SessionID == r.HostSessionID,
		}
		if p.SessionID == r.HostSessionID {
			hostID = p.PlayerID
		}
	}
	return RoomSnapshot{
		ID:            r.ID,
		Name:          r.Name,
		HostID:        hostID,
		Players:       players,
		PlayerCount:   len(r.Players),
		MaxPlayers:    r.MaxPlayers,
		GameMode:      r.GameMode,
		Stadium:       r.Stadium,
		Weather:       r.Weather,
		MatchDuration: r.MatchDuration,
		IsPrivate:     r.IsPrivate,
		HasPassword:   len(r.PasswordHash) > 0,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

// Random room id generation
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRoomID(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
