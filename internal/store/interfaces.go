package store

import (
	"context"

	"github.com/vidora/vidora/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access contract for account records, including
// the single refresh-token slot that backs session revocation.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrIdentityAlreadyExists when the email or
	// username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID loads an account by primary key.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByIdentifier loads an account matching either the email or the
	// lowercased username. At least one argument must be non-empty.
	FindUserByIdentifier(ctx context.Context, email, username string) (models.User, error)

	// SetRefreshToken unconditionally overwrites the user's refresh-token
	// slot. Used at login, where no previous token needs to match.
	SetRefreshToken(ctx context.Context, userID int64, token string) error

	// RotateRefreshToken atomically replaces oldToken with newToken in the
	// user's slot. The update is a single conditional statement; when the
	// stored slot no longer equals oldToken it affects zero rows and
	// ErrRefreshTokenMismatch is returned. This is the mechanism that makes
	// a refresh token single-use under concurrent rotation attempts.
	RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error

	// ClearRefreshToken empties the slot, revoking the active refresh token.
	ClearRefreshToken(ctx context.Context, userID int64) error

	// UpdatePasswordHash replaces the stored credential hash.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// UpdateAvatarURL stores a new avatar reference and returns the updated
	// account along with the previous reference for best-effort cleanup.
	UpdateAvatarURL(ctx context.Context, userID int64, url string) (updated models.User, previousURL string, err error)

	// UpdateCoverURL stores a new cover reference and returns the updated
	// account along with the previous reference for best-effort cleanup.
	UpdateCoverURL(ctx context.Context, userID int64, url string) (updated models.User, previousURL string, err error)

	// UpdateAccountDetails applies a partial profile update; empty fields
	// are left untouched.
	UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error)
}

// SubscriptionRepository manages the directed subscriber→channel edges and
// the derived channel statistics computed from them.
type SubscriptionRepository interface {
	// Subscribe creates the edge (subscriberID → channelID). Creating an
	// edge that already exists is a no-op.
	Subscribe(ctx context.Context, subscriberID, channelID int64) error

	// Unsubscribe removes the edge. Removing an absent edge is a no-op.
	Unsubscribe(ctx context.Context, subscriberID, channelID int64) error

	// GetChannelProfile resolves username to an account and computes its
	// derived statistics. All relationship reads happen inside one
	// read-only snapshot transaction so the two counts and the membership
	// flag can never disagree about a concurrently written edge.
	// viewerID <= 0 means an anonymous viewer (IsSubscribed is false).
	GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error)
}

// VideoRepository covers the video read path consumed by this service:
// watch-history append and the enriched history join.
type VideoRepository interface {
	// AppendWatchEntry appends videoID to the tail of the user's watch
	// history sequence.
	AppendWatchEntry(ctx context.Context, userID, videoID int64) error

	// GetWatchHistory resolves the user's stored video id sequence into
	// enriched video records in stored order. Ids whose video no longer
	// exists are silently omitted.
	GetWatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error)
}

// SocialRepository persists community posts, playlists, and likes.
type SocialRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	ListUserTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error)

	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) error
	// GetPlaylist loads a playlist together with its member videos.
	GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error)

	// ToggleLike flips the like edge for (like.LikedBy, like.TargetKind,
	// like.TargetID) and reports the resulting state: true when the edge
	// now exists.
	ToggleLike(ctx context.Context, like models.Like) (bool, error)
	CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error)
}
