package models

import "time"

// Playlist is a user-curated ordered collection of videos.
type Playlist struct {
	// PlaylistID is the internal unique identifier of the playlist.
	PlaylistID int64 `json:"id"`

	// OwnerID references the owning user.
	OwnerID int64 `json:"owner_id"`

	// Name is the display name. Must be non-empty.
	Name string `json:"name"`

	// Description is an optional free-form description.
	Description string `json:"description,omitempty"`

	// Videos holds the member videos when the playlist is loaded with its
	// contents; nil on bare lookups.
	Videos []Video `json:"videos,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Playlist model.
func (p Playlist) TableName() string {
	return "playlists"
}
