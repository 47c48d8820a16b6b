package service

import (
	"context"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService owns the account and session lifecycle: registration,
// credential verification, and the paired access/refresh token flow backed
// by the single-slot rotation scheme.
type AuthService interface {
	// Register creates a new account. The avatar blob is mandatory, the
	// cover blob optional (zero-value Blob means absent). Both are uploaded
	// to the blob store before the account row is inserted.
	Register(ctx context.Context, req models.RegisterRequest, avatar, cover adapter.Blob) (models.User, error)

	// Login verifies credentials, mints a fresh token pair, and installs
	// the refresh token into the user's slot, displacing any previous
	// session.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)

	// Logout clears the user's refresh-token slot. Outstanding access
	// tokens stay valid until they expire; no new pair can be minted.
	Logout(ctx context.Context, userID int64) error

	// Refresh exchanges a valid refresh token for a brand-new pair. Each
	// refresh token works exactly once: a replayed token fails with
	// ErrTokenIsExpiredOrInvalid.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	// ChangePassword verifies the old password before storing the hash of
	// the new one.
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error

	// CurrentUser loads the authenticated user's account record.
	CurrentUser(ctx context.Context, userID int64) (models.User, error)

	// UpdateAccountDetails applies a partial profile update; empty fields
	// are left untouched.
	UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error)

	// UpdateAvatar uploads the new avatar, swaps the stored reference, and
	// schedules the displaced blob for cleanup.
	UpdateAvatar(ctx context.Context, userID int64, avatar adapter.Blob) (models.User, error)

	// UpdateCover behaves like UpdateAvatar for the channel cover image.
	UpdateCover(ctx context.Context, userID int64, cover adapter.Blob) (models.User, error)

	// ParseAccessToken validates a raw access-token string and returns its
	// decoded form. Any failure is ErrTokenIsExpiredOrInvalid.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ChannelService is the social-graph aggregation layer: channel profiles
// with derived statistics, subscription edges, and watch history.
type ChannelService interface {
	// GetChannelProfile returns the channel's public profile enriched with
	// subscriber statistics. viewerID <= 0 means anonymous.
	GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error)

	// Subscribe creates the edge from subscriberID to the channel named by
	// username. Subscribing to oneself fails with ErrSelfSubscription.
	Subscribe(ctx context.Context, subscriberID int64, username string) error

	// Unsubscribe removes the edge; absent edges are a no-op.
	Unsubscribe(ctx context.Context, subscriberID int64, username string) error

	// RecordWatch appends videoID to the user's watch history.
	RecordWatch(ctx context.Context, userID, videoID int64) error

	// WatchHistory returns the user's watched videos, enriched with owner
	// profiles, in watch order. Deleted videos are omitted.
	WatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error)
}

// SocialService covers community posts, playlists, and likes.
type SocialService interface {
	PublishTweet(ctx context.Context, ownerID int64, content string) (models.Tweet, error)
	ListTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error)

	CreatePlaylist(ctx context.Context, ownerID int64, name, description string) (models.Playlist, error)
	// AddVideoToPlaylist appends a video; only the playlist owner may
	// modify it.
	AddVideoToPlaylist(ctx context.Context, requesterID, playlistID, videoID int64) error
	GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error)

	// ToggleLike flips the requester's like on the target and reports the
	// resulting state.
	ToggleLike(ctx context.Context, likedBy int64, kind models.LikeTargetKind, targetID int64) (bool, error)
	CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error)
}
