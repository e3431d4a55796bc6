package rooms

import (
	"testing"
	"time"
)

type countingPruner struct{}

func (countingPruner) PruneMailboxes(time.Duration) (int, error) { return 0, nil }

func TestReaperStartStop(t *testing.T) {
	fx := newFixture()
	r := NewReaper(fx.coord, countingPruner{})

	r.Start()
	r.Stop()

	// Stop must terminate the loop; a second sweep through the coordinator
	// proves nothing is wedged on its lock.
	done := make(chan struct{})
	go func() {
		fx.coord.SweepRooms(time.Now())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("coordinator lock not released after reaper shutdown")
	}
}
