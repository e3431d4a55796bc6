package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

func FormatLeaderboardKey(name string) string {
	return fmt.Sprintf("leaderboard:player:%s", name)
}

// LeaderboardIndexKey is the set of names that own a leaderboard entry.
const LeaderboardIndexKey = "leaderboard:players"

func FormatMailboxKey(name string) string {
	return fmt.Sprintf("mailbox:%s", name)
}

// MailboxIndexKey is the set of recipient names with a non-empty mailbox.
const MailboxIndexKey = "mailbox:recipients"
