package model

import "time"

// WatchHistoryEntry records a single video view for a user.
type WatchHistoryEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
}
