package rooms

import (
	game_constants "Golazo/constants/game"
	"log"
	"time"
)

// MailboxPruner drops mailbox entries older than the retention window.
type MailboxPruner interface {
	PruneMailboxes(retention time.Duration) (int, error)
}

/*
 * 'Reaper' periodically sweeps the room store for abandoned rooms and, on a
 * much longer interval, prunes stale friend-mailbox entries. Both sweeps go
 * through the coordinator's normal locking, they hold no extra assumptions
 * about exclusive access.
 */
type Reaper struct {
	coord  *Coordinator
	pruner MailboxPruner
	stop   chan struct{}
}

func NewReaper(coord *Coordinator, pruner MailboxPruner) *Reaper {
	return &Reaper{
		coord:  coord,
		pruner: pruner,
		stop:   make(chan struct{}),
	}
}

func (r *Reaper) Start() {
	go r.run()
	log.Printf("[REAPER] Started (rooms every %s, mailbox every %s)",
		game_constants.ReaperInterval, game_constants.MailboxPruneInterval)
}

func (r *Reaper) Stop() {
	close(r.stop)
}

func (r *Reaper) run() {
	roomTicker := time.NewTicker(game_constants.ReaperInterval)
	mailTicker := time.NewTicker(game_constants.MailboxPruneInterval)
	defer roomTicker.Stop()
	defer mailTicker.Stop()

	for {
		select {
		case <-roomTicker.C:
			if closed := r.coord.SweepRooms(time.Now()); closed > 0 {
				log.Printf("[REAPER] Swept %d stale rooms", closed)
			}
		case <-mailTicker.C:
			pruned, err := r.pruner.PruneMailboxes(game_constants.MailboxRetention)
			if err != nil {
				log.Printf("[REAPER-ERROR] Mailbox prune failed: %v", err)
			} else if pruned > 0 {
				log.Printf("[REAPER] Pruned %d stale friend requests", pruned)
			}
		case <-r.stop:
			return
		}
	}
}
