package models

import "time"

// User represents a platform account: a viewer and, implicitly, a channel.
// It contains identity attributes, credential data, and media references.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique e-mail address used during authentication.
	Email string `json:"email"`

	// Username is the unique handle of the user. It is stored lowercased;
	// lookups are therefore case-insensitive.
	Username string `json:"username"`

	// FullName is the display name of the user. It is non-sensitive and
	// may be shown in UI.
	FullName string `json:"full_name"`

	// PasswordHash stores the encoded one-way hash of the user's password.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// AvatarURL points to the user's avatar in the blob store. Required.
	AvatarURL string `json:"avatar"`

	// CoverURL points to the user's channel cover image. Optional;
	// empty string when the user never uploaded one.
	CoverURL string `json:"cover_image,omitempty"`

	// RefreshToken is the single active refresh-token slot. At most one
	// valid long-lived token exists per user; nil means "no active token".
	// Never serialized.
	RefreshToken *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicProfile is the subset of User fields safe to embed in derived views
// (channel profiles, video owner projections).
type PublicProfile struct {
	UserID    int64  `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar"`
}

// Public returns the user's public profile projection.
func (u User) Public() PublicProfile {
	return PublicProfile{
		UserID:    u.UserID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
