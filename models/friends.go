package models

import (
	"time"
)

/*
 * 'PendingFriendRequest' is a mailbox entry queued under an offline
 * recipient's display name. It is delivered (and removed) the moment that
 * name becomes active, or pruned once it is older than the retention window.
 */
type PendingFriendRequest struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	CreatedAt time.Time `json:"createdAt"`
}
