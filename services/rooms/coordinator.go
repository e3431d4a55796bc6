package rooms

import (
	game_constants "Golazo/constants/game"
	"Golazo/models"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Notifier is the outbound side of the coordinator. The socket.io layer
// implements it; tests use a recorder. Emissions are fire-and-forget, there
// is no delivery acknowledgment and no retry.
type Notifier interface {
	ToSession(sessionID uint64, event string, payload any)
	ToRoom(roomID string, event string, payload any)
	ToRoomExcept(roomID string, exceptSessionID uint64, event string, payload any)
	Broadcast(event string, payload any)
	JoinRoom(sessionID uint64, roomID string)
	LeaveRoom(sessionID uint64, roomID string)
}

// Mailbox delivers pending friend requests when a display name activates.
type Mailbox interface {
	FlushPending(name string) ([]models.PendingFriendRequest, error)
}

// Leaderboard folds match results into the cumulative statistics store.
type Leaderboard interface {
	RecordResult(name string, goalsFor, goalsAgainst int, outcome models.MatchOutcome) error
}

/*
 * 'Coordinator' owns every piece of mutable lobby state: the session
 * registry, the room store and the display-name index. All state mutation
 * happens under one mutex, so each inbound message is processed to
 * completion (including the broadcasts it triggers) before the next one,
 * which is what gives the per-room and global linearizable semantics.
 * Nothing outside this package touches the maps directly.
 */
type Coordinator struct {
	mu            sync.Mutex
	sessions      map[uint64]*models.Session
	rooms         map[string]*models.Room
	byName        map[string]uint64 // active display name -> session id
	nextSessionID uint64
	nextPlayerID  int

	notifier Notifier
	mailbox  Mailbox
	board    Leaderboard
}

func NewCoordinator(notifier Notifier, mailbox Mailbox, board Leaderboard) *Coordinator {
	return &Coordinator{
		sessions: make(map[uint64]*models.Session),
		rooms:    make(map[string]*models.Room),
		byName:   make(map[string]uint64),
		notifier: notifier,
		mailbox:  mailbox,
		board:    board,
	}
}

// CreateConfig carries the caller-supplied room configuration. Missing or
// out-of-range fields are defaulted field by field, creating a room has no
// error path.
type CreateConfig struct {
	PlayerName    string
	RoomName      string
	MaxPlayers    int
	GameMode      string
	Stadium       string
	Weather       string
	MatchDuration int
	IsPrivate     bool
	Password      string
}

func (cfg *CreateConfig) applyDefaults() {
	if cfg.RoomName == "" {
		cfg.RoomName = game_constants.DefaultRoomName
	}
	if cfg.MaxPlayers < 2 || cfg.MaxPlayers > game_constants.MaxRoomPlayers {
		cfg.MaxPlayers = game_constants.DefaultMaxPlayers
	}
	if cfg.GameMode == "" {
		cfg.GameMode = game_constants.DefaultGameMode
	}
	if cfg.Stadium == "" {
		cfg.Stadium = game_constants.DefaultStadium
	}
	if cfg.Weather == "" {
		cfg.Weather = game_constants.DefaultWeather
	}
	if cfg.MatchDuration <= 0 {
		cfg.MatchDuration = game_constants.DefaultMatchDuration
	}
}

// Connect registers a fresh session for a new transport connection.
func (c *Coordinator) Connect() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSessionID++
	s := &models.Session{ID: c.nextSessionID}
	c.sessions[s.ID] = s
	log.Printf("[CONNECT] Session %d registered", s.ID)
	return s
}

// Disconnect runs the full teardown path for a dropped connection. It is the
// same path as an explicit leave, followed by removal of the session record.
func (c *Coordinator) Disconnect(sessionID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.leaveLocked(sessionID)

	s := c.sessions[sessionID]
	if s != nil && s.Name != "" && c.byName[s.Name] == sessionID {
		delete(c.byName, s.Name)
	}
	delete(c.sessions, sessionID)
	log.Printf("[DISCONNECT] Session %d removed", sessionID)
}

// CreateRoom allocates a room with the requester as sole occupant and host.
func (c *Coordinator) CreateRoom(sessionID uint64, cfg CreateConfig) *models.RoomSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil {
		return nil
	}
	if s.InRoom() {
		// Creating while still in a room counts as leaving it first.
		c.leaveLocked(sessionID)
	}

	cfg.applyDefaults()

	var hash []byte
	if cfg.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[CREATE-ERROR] Could not hash room password: %v", err)
		} else {
			hash = h
		}
	}

	// Ensure the generated ID is truly unique
	var roomID string
	for {
		roomID = models.GenerateRoomID(game_constants.RoomIDLength)
		if _, taken := c.rooms[roomID]; !taken {
			break
		}
	}

	c.nextPlayerID++
	host := &models.Player{
		SessionID: sessionID,
		PlayerID:  c.nextPlayerID,
		Name:      cfg.PlayerName,
	}
	if host.Name == "" {
		host.Name = fmt.Sprintf("Player%d", host.PlayerID)
	}

	room := &models.Room{
		ID:            roomID,
		Name:          cfg.RoomName,
		HostSessionID: sessionID,
		Players:       []*models.Player{host},
		MaxPlayers:    cfg.MaxPlayers,
		GameMode:      cfg.GameMode,
		Stadium:       cfg.Stadium,
		Weather:       cfg.Weather,
		MatchDuration: cfg.MatchDuration,
		IsPrivate:     cfg.IsPrivate,
		PasswordHash:  hash,
		Status:        models.RoomWaiting,
		CreatedAt:     time.Now(),
		HalfTimeReady: make(map[uint64]struct{}),
	}
	c.rooms[roomID] = room
	s.RoomID = roomID

	c.registerNameLocked(s, host.Name)
	c.notifier.JoinRoom(sessionID, roomID)

	snap := room.Snapshot()
	c.notifier.ToSession(sessionID, "room_created", gin.H{
		"room":     snap,
		"playerId": host.PlayerID,
	})
	c.broadcastRoomsListLocked()

	log.Printf("[CREATE] Room %s created by session %d (%s)", roomID, sessionID, host.Name)
	return &snap
}

// ListRooms returns the public rooms still waiting for players. Private and
// in-progress rooms are never listed.
func (c *Coordinator) ListRooms() []models.RoomSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listRoomsLocked()
}

func (c *Coordinator) listRoomsLocked() []models.RoomSnapshot {
	list := make([]models.RoomSnapshot, 0, len(c.rooms))
	for _, room := range c.rooms {
		if room.IsPrivate || room.Status != models.RoomWaiting {
			continue
		}
		list = append(list, room.Snapshot())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

func (c *Coordinator) broadcastRoomsListLocked() {
	c.notifier.Broadcast("rooms_list", gin.H{"rooms": c.listRoomsLocked()})
}

// JoinRoom appends the requester to the room. Rejections never mutate the
// room: the checks run in a fixed order (not found, started, full, password)
// before any state change.
func (c *Coordinator) JoinRoom(sessionID uint64, roomID, password, playerName string) (*models.RoomSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil {
		return nil, ErrRoomNotFound
	}
	room := c.rooms[roomID]
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status != models.RoomWaiting {
		return nil, ErrRoomAlreadyStarted
	}
	if room.IsFull() {
		return nil, ErrRoomFull
	}
	if len(room.PasswordHash) > 0 {
		if bcrypt.CompareHashAndPassword(room.PasswordHash, []byte(password)) != nil {
			return nil, ErrWrongPassword
		}
	}

	if s.RoomID == roomID {
		// Already an occupant, nothing to do.
		snap := room.Snapshot()
		return &snap, nil
	}
	if s.InRoom() {
		c.leaveLocked(sessionID)
	}

	c.nextPlayerID++
	player := &models.Player{
		SessionID: sessionID,
		PlayerID:  c.nextPlayerID,
		Name:      playerName,
	}
	if player.Name == "" {
		player.Name = fmt.Sprintf("Player%d", player.PlayerID)
	}
	room.Players = append(room.Players, player)
	s.RoomID = roomID

	c.registerNameLocked(s, player.Name)
	c.notifier.JoinRoom(sessionID, roomID)

	snap := room.Snapshot()
	c.notifier.ToRoom(roomID, "player_joined", gin.H{
		"room": snap,
		"player": models.PlayerSnapshot{
			PlayerID: player.PlayerID,
			Name:     player.Name,
		},
	})
	c.broadcastRoomsListLocked()

	log.Printf("[JOIN] Session %d (%s) joined room %s (%d/%d)",
		sessionID, player.Name, roomID, len(room.Players), room.MaxPlayers)
	return &snap, nil
}

// ToggleReady flips the requester's ready flag. When at least two occupants
// are present and every one of them is ready, the match starts.
func (c *Coordinator) ToggleReady(sessionID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil || !s.InRoom() {
		return
	}
	room := c.rooms[s.RoomID]
	if room == nil || room.Status != models.RoomWaiting {
		return
	}
	p := room.PlayerBySession(sessionID)
	if p == nil {
		return
	}

	p.Ready = !p.Ready
	c.notifier.ToRoom(room.ID, "player_ready_changed", gin.H{
		"playerId": p.PlayerID,
		"name":     p.Name,
		"ready":    p.Ready,
		"room":     room.Snapshot(),
	})

	if room.AllReady() {
		c.startMatchLocked(room)
	}
}

func (c *Coordinator) startMatchLocked(room *models.Room) {
	room.Status = models.RoomPlaying
	room.StartedAt = time.Now()
	room.HalfTimeReady = make(map[uint64]struct{})

	c.notifier.ToRoom(room.ID, "game_start", gin.H{"room": room.Snapshot()})
	// The room is no longer waiting, so it drops out of the public list.
	c.broadcastRoomsListLocked()
	log.Printf("[START] Match started in room %s with %d players", room.ID, len(room.Players))
}

// PlayerResult is one occupant's perspective of a finished match.
type PlayerResult struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	OpponentScore int    `json:"opponentScore"`
	Won           bool   `json:"won"`
}

// EndMatch returns the sender's room to the waiting state for a rematch and
// folds each per-player result into the leaderboard. A second game_end for
// the same match finds the room already waiting and is a no-op, so results
// are recorded exactly once.
func (c *Coordinator) EndMatch(sessionID uint64, results []PlayerResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil || !s.InRoom() {
		return
	}
	room := c.rooms[s.RoomID]
	if room == nil || room.Status != models.RoomPlaying {
		return
	}

	room.Status = models.RoomWaiting
	room.StartedAt = time.Time{}
	room.HalfTimeReady = make(map[uint64]struct{})
	for _, p := range room.Players {
		p.Ready = false
	}

	for _, res := range results {
		if res.Name == "" {
			continue
		}
		if err := c.board.RecordResult(res.Name, res.Score, res.OpponentScore, res.Outcome()); err != nil {
			log.Printf("[GAME-END-ERROR] Could not record result for %s: %v", res.Name, err)
		}
	}

	c.notifier.ToRoom(room.ID, "game_ended", gin.H{"results": results})
	c.notifier.ToRoom(room.ID, "room_updated", gin.H{"room": room.Snapshot()})
	c.broadcastRoomsListLocked()
	log.Printf("[GAME-END] Room %s back to waiting, %d results recorded", room.ID, len(results))
}

// Outcome derives the leaderboard outcome: equal scores are a draw, the won
// flag decides otherwise.
func (r PlayerResult) Outcome() models.MatchOutcome {
	if r.Score == r.OpponentScore {
		return models.OutcomeDrawn
	}
	if r.Won {
		return models.OutcomeWon
	}
	return models.OutcomeLost
}

// RecordOfflineResult records a single-sided match against the built-in
// opponent. This is also a name-activating action, so pending friend
// requests for the name are flushed here.
func (c *Coordinator) RecordOfflineResult(sessionID uint64, playerName string, playerScore, aiScore int, won bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil || playerName == "" {
		return
	}
	c.registerNameLocked(s, playerName)

	res := PlayerResult{Name: playerName, Score: playerScore, OpponentScore: aiScore, Won: won}
	if err := c.board.RecordResult(playerName, playerScore, aiScore, res.Outcome()); err != nil {
		log.Printf("[OFFLINE-ERROR] Could not record result for %s: %v", playerName, err)
	}
	log.Printf("[OFFLINE] Recorded offline result for %s (%d-%d)", playerName, playerScore, aiScore)
}

// Leave removes the requester from its room. Idempotent no-op when the
// session holds no room.
func (c *Coordinator) Leave(sessionID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveLocked(sessionID)
}

func (c *Coordinator) leaveLocked(sessionID uint64) {
	s := c.sessions[sessionID]
	if s == nil || !s.InRoom() {
		return
	}
	room := c.rooms[s.RoomID]
	if room == nil {
		s.RoomID = ""
		return
	}
	roomID := room.ID
	inGame := room.Status == models.RoomPlaying

	if room.HostSessionID == sessionID {
		// Loss of host always dissolves the room, whatever the remaining
		// occupant count. The notice distinguishes lobby vs mid-match so the
		// client can word it properly.
		event := "host_left_lobby"
		if inGame {
			event = "host_left_game"
		}
		c.notifier.ToRoomExcept(roomID, sessionID, event, gin.H{
			"roomId":  roomID,
			"message": "The host left the room",
		})
		delete(c.rooms, roomID)
		for _, p := range room.Players {
			if other := c.sessions[p.SessionID]; other != nil && other.RoomID == roomID {
				other.RoomID = ""
			}
			c.notifier.LeaveRoom(p.SessionID, roomID)
		}
		log.Printf("[LEAVE] Host of room %s left (inGame=%v), room deleted", roomID, inGame)
	} else {
		p := room.RemovePlayer(sessionID)
		s.RoomID = ""
		c.notifier.LeaveRoom(sessionID, roomID)
		if p == nil {
			return
		}
		if len(room.Players) == 0 {
			delete(c.rooms, roomID)
			log.Printf("[LEAVE] Room %s emptied, deleted", roomID)
		} else {
			c.notifier.ToRoom(roomID, "player_left", gin.H{
				"playerId": p.PlayerID,
				"name":     p.Name,
				"inGame":   inGame,
				"room":     room.Snapshot(),
			})
			log.Printf("[LEAVE] Session %d left room %s, %d remaining", sessionID, roomID, len(room.Players))
		}
	}

	c.broadcastRoomsListLocked()
}

// HalfTimeStart opens the half-time barrier: clears the readiness set and
// tells the whole room (host included) the score at the break.
func (c *Coordinator) HalfTimeStart(sessionID uint64, playerScore, aiScore int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.playingRoomOf(sessionID)
	if room == nil {
		return
	}
	room.HalfTimeReady = make(map[uint64]struct{})
	c.notifier.ToRoom(room.ID, "half_time_started", gin.H{
		"playerScore": playerScore,
		"aiScore":     aiScore,
	})
	log.Printf("[HALF-TIME] Barrier opened in room %s (%d-%d)", room.ID, playerScore, aiScore)
}

// HalfTimeReady marks the requester ready for the second half. Re-readying
// is idempotent. The resume fires when the set size reaches the *current*
// occupant count; departed occupants are deliberately not purged from the
// set (see the note in the room model).
func (c *Coordinator) HalfTimeReady(sessionID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room := c.playingRoomOf(sessionID)
	if room == nil {
		return
	}
	room.HalfTimeReady[sessionID] = struct{}{}

	ready := len(room.HalfTimeReady)
	total := len(room.Players)
	c.notifier.ToRoom(room.ID, "half_time_ready_update", gin.H{
		"ready": ready,
		"total": total,
	})

	if ready >= total {
		room.HalfTimeReady = make(map[uint64]struct{})
		c.notifier.ToRoom(room.ID, "half_time_resume", gin.H{"roomId": room.ID})
		log.Printf("[HALF-TIME] Room %s resuming second half", room.ID)
	}
}

func (c *Coordinator) playingRoomOf(sessionID uint64) *models.Room {
	s := c.sessions[sessionID]
	if s == nil || !s.InRoom() {
		return nil
	}
	room := c.rooms[s.RoomID]
	if room == nil || room.Status != models.RoomPlaying {
		return nil
	}
	return room
}

// RelayTarget resolves the sender's room and player id for the relay router.
func (c *Coordinator) RelayTarget(sessionID uint64) (roomID string, playerID int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.sessions[sessionID]
	if s == nil || !s.InRoom() {
		return "", 0, false
	}
	room := c.rooms[s.RoomID]
	if room == nil {
		return "", 0, false
	}
	p := room.PlayerBySession(sessionID)
	if p == nil {
		return "", 0, false
	}
	return room.ID, p.PlayerID, true
}

// SessionName returns the display name the session has asserted, if any.
func (c *Coordinator) SessionName(sessionID uint64) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.sessions[sessionID]; s != nil {
		return s.Name
	}
	return ""
}

// SessionByName resolves the live session currently bound to a display name.
func (c *Coordinator) SessionByName(name string) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	if _, alive := c.sessions[id]; !alive {
		return 0, false
	}
	return id, true
}

// OnlineNames filters the supplied names down to those currently attached to
// a live session.
func (c *Coordinator) OnlineNames(names []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	online := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := c.byName[name]; ok {
			if _, alive := c.sessions[id]; alive {
				online = append(online, name)
			}
		}
	}
	return online
}

// registerNameLocked binds a display name to the session and delivers any
// friend requests that queued up while the name was offline.
func (c *Coordinator) registerNameLocked(s *models.Session, name string) {
	if name == "" {
		return
	}
	s.Name = name
	c.byName[name] = s.ID

	pending, err := c.mailbox.FlushPending(name)
	if err != nil {
		log.Printf("[MAILBOX-ERROR] Could not flush pending requests for %s: %v", name, err)
		return
	}
	for _, req := range pending {
		c.notifier.ToSession(s.ID, "friend_request_received", gin.H{
			"id":        req.ID,
			"from":      req.From,
			"createdAt": req.CreatedAt,
		})
	}
	if len(pending) > 0 {
		log.Printf("[MAILBOX] Delivered %d pending friend requests to %s", len(pending), name)
	}
}

// SweepRooms evicts rooms that sat in waiting or playing beyond their
// timeout. Occupants are notified once per room; the public list is
// refreshed once per sweep, not per deletion.
func (c *Coordinator) SweepRooms(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	closed := 0
	for id, room := range c.rooms {
		var stale bool
		switch room.Status {
		case models.RoomWaiting:
			stale = now.Sub(room.CreatedAt) > game_constants.WaitingRoomTimeout
		case models.RoomPlaying:
			since := room.StartedAt
			if since.IsZero() {
				since = room.CreatedAt
			}
			stale = now.Sub(since) > game_constants.PlayingRoomTimeout
		}
		if !stale {
			continue
		}

		c.notifier.ToRoom(id, "room_closed", gin.H{
			"roomId":  id,
			"message": "Room closed due to inactivity",
		})
		for _, p := range room.Players {
			if s := c.sessions[p.SessionID]; s != nil && s.RoomID == id {
				s.RoomID = ""
			}
			c.notifier.LeaveRoom(p.SessionID, id)
		}
		delete(c.rooms, id)
		closed++
		log.Printf("[REAPER] Closed stale room %s (status=%s)", id, room.Status)
	}

	if closed > 0 {
		c.broadcastRoomsListLocked()
	}
	return closed
}

// RoomCount is a read-only probe used by the health endpoint and tests.
func (c *Coordinator) RoomCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rooms)
}
