package models

import "time"

// Tweet is a short community post published by a channel.
type Tweet struct {
	// TweetID is the internal unique identifier of the post.
	TweetID int64 `json:"id"`

	// OwnerID references the publishing user.
	OwnerID int64 `json:"owner_id"`

	// Content is the post body. Must be non-empty.
	Content string `json:"content"`

	// CreatedAt is the publication timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}
