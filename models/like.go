package models

import "time"

// LikeTargetKind enumerates the entity kinds a like can attach to.
type LikeTargetKind string

const (
	// LikeTargetVideo marks a like placed on a video.
	LikeTargetVideo LikeTargetKind = "video"

	// LikeTargetTweet marks a like placed on a community post.
	LikeTargetTweet LikeTargetKind = "tweet"

	// LikeTargetComment marks a like placed on a comment.
	LikeTargetComment LikeTargetKind = "comment"
)

// Like is a polymorphic approval edge: LikedBy × exactly one target entity.
// At most one like exists per (user, kind, target) triple; repeating the
// action removes the edge (toggle semantics).
type Like struct {
	// LikeID is the internal unique identifier of the edge.
	LikeID int64 `json:"id"`

	// LikedBy references the user who placed the like.
	LikedBy int64 `json:"liked_by"`

	// TargetKind names the entity kind TargetID points at.
	TargetKind LikeTargetKind `json:"target_kind"`

	// TargetID is the liked entity's identifier within its kind.
	TargetID int64 `json:"target_id"`

	// CreatedAt is the timestamp when the like was placed.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
