package redis

import (
	"Golazo/models"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *RedisClient {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisClient(mr.Addr())
}

func TestRecordResultAggregates(t *testing.T) {
	rc := testClient(t)

	require.NoError(t, rc.RecordResult("alice", 3, 1, models.OutcomeWon))
	require.NoError(t, rc.RecordResult("alice", 0, 2, models.OutcomeLost))
	require.NoError(t, rc.RecordResult("alice", 1, 1, models.OutcomeDrawn))

	entry, err := rc.GetLeaderboardEntry("alice")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.GamesPlayed)
	assert.Equal(t, 1, entry.Wins)
	assert.Equal(t, 1, entry.Losses)
	assert.Equal(t, 4, entry.GoalsFor)
	assert.Equal(t, 4, entry.GoalsAgainst)
}

func TestGetLeaderboardEntryAbsent(t *testing.T) {
	rc := testClient(t)

	entry, err := rc.GetLeaderboardEntry("nobody")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestTopEntriesOrderingAndTruncation(t *testing.T) {
	rc := testClient(t)

	require.NoError(t, rc.RecordResult("loser", 0, 5, models.OutcomeLost))
	require.NoError(t, rc.RecordResult("champ", 4, 0, models.OutcomeWon))
	require.NoError(t, rc.RecordResult("champ", 2, 1, models.OutcomeWon))
	require.NoError(t, rc.RecordResult("runnerUp", 3, 0, models.OutcomeWon))

	top, err := rc.TopEntries(10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "champ", top[0].Name)
	assert.Equal(t, "runnerUp", top[1].Name)
	assert.Equal(t, "loser", top[2].Name)

	top, err = rc.TopEntries(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "champ", top[0].Name)
}

func TestMailboxFlushDeliversOnce(t *testing.T) {
	rc := testClient(t)

	first := &models.PendingFriendRequest{ID: "r1", From: "alice", To: "bob", CreatedAt: time.Now()}
	second := &models.PendingFriendRequest{ID: "r2", From: "carol", To: "bob", CreatedAt: time.Now()}
	require.NoError(t, rc.EnqueuePendingRequest(first))
	require.NoError(t, rc.EnqueuePendingRequest(second))

	pending, err := rc.FlushPending("bob")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "r1", pending[0].ID)
	assert.Equal(t, "r2", pending[1].ID)

	// A second flush finds nothing.
	pending, err = rc.FlushPending("bob")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFlushPendingDropsExpired(t *testing.T) {
	rc := testClient(t)

	stale := &models.PendingFriendRequest{
		ID: "old", From: "alice", To: "bob",
		CreatedAt: time.Now().Add(-8 * 24 * time.Hour),
	}
	fresh := &models.PendingFriendRequest{
		ID: "new", From: "carol", To: "bob",
		CreatedAt: time.Now(),
	}
	require.NoError(t, rc.EnqueuePendingRequest(stale))
	require.NoError(t, rc.EnqueuePendingRequest(fresh))

	pending, err := rc.FlushPending("bob")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "new", pending[0].ID)
}

func TestPruneMailboxes(t *testing.T) {
	rc := testClient(t)

	require.NoError(t, rc.EnqueuePendingRequest(&models.PendingFriendRequest{
		ID: "old1", From: "a", To: "bob",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, rc.EnqueuePendingRequest(&models.PendingFriendRequest{
		ID: "keep", From: "b", To: "bob",
		CreatedAt: time.Now(),
	}))
	require.NoError(t, rc.EnqueuePendingRequest(&models.PendingFriendRequest{
		ID: "old2", From: "c", To: "dave",
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}))

	pruned, err := rc.PruneMailboxes(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, pruned)

	// Bob keeps his fresh entry, Dave's emptied queue is gone entirely.
	pending, err := rc.FlushPending("bob")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "keep", pending[0].ID)

	pending, err = rc.FlushPending("dave")
	require.NoError(t, err)
	assert.Empty(t, pending)

	// A pruned store with nothing stale reports zero.
	pruned, err = rc.PruneMailboxes(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, pruned)
}
