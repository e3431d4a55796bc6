package redis

import (
	"Golazo/models"
	redis_utils "Golazo/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations. It backs the two keyed stores of the
// system: the cumulative leaderboard and the friend-request mailbox. The
// server runs against an embedded in-process instance by default, so both
// stores share the process lifetime.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(addr string) *RedisClient {
	var client *redis.Client
	if opt, err := redis.ParseURL(addr); err == nil {
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// ---------------------------------------------------------------
// Leaderboard store
// ---------------------------------------------------------------

// GetLeaderboardEntry retrieves the cumulative stats for a display name.
// Key format: "leaderboard:player:{name}". Returns nil when absent.
func (rc *RedisClient) GetLeaderboardEntry(name string) (*models.LeaderboardEntry, error) {
	data, err := rc.client.Get(rc.ctx, redis_utils.FormatLeaderboardKey(name)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting leaderboard entry: %v", err)
	}

	var entry models.LeaderboardEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("error unmarshaling leaderboard entry: %v", err)
	}
	return &entry, nil
}

// SaveLeaderboardEntry stores an entry and registers its name in the index
// set used by TopEntries.
func (rc *RedisClient) SaveLeaderboardEntry(entry *models.LeaderboardEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error marshaling leaderboard entry: %v", err)
	}
	if err := rc.client.Set(rc.ctx, redis_utils.FormatLeaderboardKey(entry.Name), data, 0).Err(); err != nil {
		return err
	}
	return rc.client.SAdd(rc.ctx, redis_utils.LeaderboardIndexKey, entry.Name).Err()
}

// RecordResult lazily creates the entry for a name and folds one match
// result into it. Used identically for online match ends (once per occupant)
// and offline results (single-sided).
func (rc *RedisClient) RecordResult(name string, goalsFor, goalsAgainst int, outcome models.MatchOutcome) error {
	entry, err := rc.GetLeaderboardEntry(name)
	if err != nil {
		return err
	}
	if entry == nil {
		entry = &models.LeaderboardEntry{Name: name}
	}
	entry.Apply(goalsFor, goalsAgainst, outcome)
	return rc.SaveLeaderboardEntry(entry)
}

// TopEntries returns the first n entries ordered by wins desc, goal
// differential desc, goals-for desc.
func (rc *RedisClient) TopEntries(n int) ([]models.LeaderboardEntry, error) {
	names, err := rc.client.SMembers(rc.ctx, redis_utils.LeaderboardIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing leaderboard names: %v", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(names))
	for _, name := range names {
		entry, err := rc.GetLeaderboardEntry(name)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	models.SortEntries(entries)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// ---------------------------------------------------------------
// Friend mailbox
// ---------------------------------------------------------------

// EnqueuePendingRequest appends a friend request under the recipient's name.
// Key format: "mailbox:{name}" (list, oldest first).
func (rc *RedisClient) EnqueuePendingRequest(req *models.PendingFriendRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error marshaling pending request: %v", err)
	}
	if err := rc.client.RPush(rc.ctx, redis_utils.FormatMailboxKey(req.To), data).Err(); err != nil {
		return err
	}
	return rc.client.SAdd(rc.ctx, redis_utils.MailboxIndexKey, req.To).Err()
}

// FlushPending removes and returns every pending request addressed to the
// name. Entries already past the retention window are dropped, not
// delivered. A flushed mailbox cannot deliver the same request twice.
func (rc *RedisClient) FlushPending(name string) ([]models.PendingFriendRequest, error) {
	key := redis_utils.FormatMailboxKey(name)
	raw, err := rc.client.LRange(rc.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading mailbox for %s: %v", name, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return nil, err
	}
	if err := rc.client.SRem(rc.ctx, redis_utils.MailboxIndexKey, name).Err(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-mailboxRetentionFallback)
	pending := make([]models.PendingFriendRequest, 0, len(raw))
	for _, item := range raw {
		var req models.PendingFriendRequest
		if err := json.Unmarshal([]byte(item), &req); err != nil {
			continue
		}
		if req.CreatedAt.Before(cutoff) {
			continue
		}
		pending = append(pending, req)
	}
	return pending, nil
}

// The reaper prunes on its own schedule; this bound only guards delivery of
// entries that outlived a missed prune cycle.
const mailboxRetentionFallback = 7 * 24 * time.Hour

// PruneMailboxes walks every recipient queue and drops entries older than
// the retention window, deleting recipient keys left empty. Returns the
// number of dropped entries.
func (rc *RedisClient) PruneMailboxes(retention time.Duration) (int, error) {
	names, err := rc.client.SMembers(rc.ctx, redis_utils.MailboxIndexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("error listing mailbox recipients: %v", err)
	}

	cutoff := time.Now().Add(-retention)
	pruned := 0
	for _, name := range names {
		key := redis_utils.FormatMailboxKey(name)
		raw, err := rc.client.LRange(rc.ctx, key, 0, -1).Result()
		if err != nil {
			return pruned, err
		}

		kept := make([]interface{}, 0, len(raw))
		for _, item := range raw {
			var req models.PendingFriendRequest
			if err := json.Unmarshal([]byte(item), &req); err != nil {
				pruned++
				continue
			}
			if req.CreatedAt.Before(cutoff) {
				pruned++
				continue
			}
			kept = append(kept, item)
		}
		if len(kept) == len(raw) {
			continue
		}

		// Rewrite the queue with only the fresh entries.
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return pruned, err
		}
		if len(kept) == 0 {
			if err := rc.client.SRem(rc.ctx, redis_utils.MailboxIndexKey, name).Err(); err != nil {
				return pruned, err
			}
			continue
		}
		if err := rc.client.RPush(rc.ctx, key, kept...).Err(); err != nil {
			return pruned, err
		}
	}
	return pruned, nil
}
