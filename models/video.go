// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Video is a published video entity. This service does not own video upload
// or transcoding; it consumes videos as join targets for watch history and
// channel aggregation.
type Video struct {
	// VideoID is the internal unique identifier of the video.
	VideoID int64 `json:"id"`

	// OwnerID references the user who published the video.
	OwnerID int64 `json:"owner_id"`

	// Title is the display title of the video.
	Title string `json:"title"`

	// Description is the optional long-form description.
	Description string `json:"description,omitempty"`

	// VideoURL points to the playable asset in the blob store.
	VideoURL string `json:"video_url"`

	// ThumbnailURL points to the preview image in the blob store.
	ThumbnailURL string `json:"thumbnail"`

	// Duration is the playable length in seconds.
	Duration int64 `json:"duration"`

	// Views is the cumulative view counter.
	Views int64 `json:"views"`

	// CreatedAt is the publication timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Video model.
func (v Video) TableName() string {
	return "videos"
}

// EnrichedVideo is a video joined with its owner's public profile. The owner
// is collapsed into a single object, not a list: referential integrity of
// Video.OwnerID guarantees exactly one match.
type EnrichedVideo struct {
	Video
	Owner PublicProfile `json:"owner"`
}
