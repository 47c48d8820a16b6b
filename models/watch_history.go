package models

import "time"

// WatchHistoryEntry records that a user played a video. Entries form an
// append-only ordered sequence per user; Position preserves playback order
// independent of timestamps.
type WatchHistoryEntry struct {
	// UserID is the owner of the history sequence.
	UserID int64 `json:"user_id"`

	// VideoID is the watched video. The video may since have been removed;
	// the read path tolerates dangling references by omitting them.
	VideoID int64 `json:"video_id"`

	// Position is the 1-based sequence number within the user's history.
	Position int64 `json:"position"`

	// WatchedAt is the timestamp the entry was appended.
	WatchedAt time.Time `json:"watched_at"`
}

// TableName returns the name of the database table
// associated with the WatchHistoryEntry model.
func (w WatchHistoryEntry) TableName() string {
	return "watch_history"
}
