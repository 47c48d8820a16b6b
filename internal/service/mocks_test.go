package service

import (
	"context"
	"sync"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn         func(ctx context.Context, userID int64) (models.User, error)
	findUserByIdentifierFn func(ctx context.Context, email, username string) (models.User, error)
	setRefreshTokenFn      func(ctx context.Context, userID int64, token string) error
	rotateRefreshTokenFn   func(ctx context.Context, userID int64, oldToken, newToken string) error
	clearRefreshTokenFn    func(ctx context.Context, userID int64) error
	updatePasswordHashFn   func(ctx context.Context, userID int64, passwordHash string) error
	updateAvatarURLFn      func(ctx context.Context, userID int64, url string) (models.User, string, error)
	updateCoverURLFn       func(ctx context.Context, userID int64, url string) (models.User, string, error)
	updateAccountFn        func(ctx context.Context, userID int64, fullName, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) FindUserByIdentifier(ctx context.Context, email, username string) (models.User, error) {
	if m.findUserByIdentifierFn != nil {
		return m.findUserByIdentifierFn(ctx, email, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) SetRefreshToken(ctx context.Context, userID int64, token string) error {
	if m.setRefreshTokenFn != nil {
		return m.setRefreshTokenFn(ctx, userID, token)
	}
	return nil
}

func (m *mockUserRepository) RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error {
	if m.rotateRefreshTokenFn != nil {
		return m.rotateRefreshTokenFn(ctx, userID, oldToken, newToken)
	}
	return nil
}

func (m *mockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	if m.clearRefreshTokenFn != nil {
		return m.clearRefreshTokenFn(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordHashFn != nil {
		return m.updatePasswordHashFn(ctx, userID, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) UpdateAvatarURL(ctx context.Context, userID int64, url string) (models.User, string, error) {
	if m.updateAvatarURLFn != nil {
		return m.updateAvatarURLFn(ctx, userID, url)
	}
	return models.User{UserID: userID, AvatarURL: url}, "", nil
}

func (m *mockUserRepository) UpdateCoverURL(ctx context.Context, userID int64, url string) (models.User, string, error) {
	if m.updateCoverURLFn != nil {
		return m.updateCoverURLFn(ctx, userID, url)
	}
	return models.User{UserID: userID, CoverURL: url}, "", nil
}

func (m *mockUserRepository) UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, userID, fullName, email)
	}
	return models.User{UserID: userID, FullName: fullName, Email: email}, nil
}

// ─────────────────────────────────────────────
// Mock: store.SubscriptionRepository
// ─────────────────────────────────────────────

type mockSubscriptionRepository struct {
	subscribeFn         func(ctx context.Context, subscriberID, channelID int64) error
	unsubscribeFn       func(ctx context.Context, subscriberID, channelID int64) error
	getChannelProfileFn func(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error)
}

func (m *mockSubscriptionRepository) Subscribe(ctx context.Context, subscriberID, channelID int64) error {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, subscriberID, channelID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Unsubscribe(ctx context.Context, subscriberID, channelID int64) error {
	if m.unsubscribeFn != nil {
		return m.unsubscribeFn(ctx, subscriberID, channelID)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error) {
	if m.getChannelProfileFn != nil {
		return m.getChannelProfileFn(ctx, username, viewerID)
	}
	return models.ChannelProfile{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.VideoRepository
// ─────────────────────────────────────────────

type mockVideoRepository struct {
	appendWatchEntryFn func(ctx context.Context, userID, videoID int64) error
	getWatchHistoryFn  func(ctx context.Context, userID int64) ([]models.EnrichedVideo, error)
}

func (m *mockVideoRepository) AppendWatchEntry(ctx context.Context, userID, videoID int64) error {
	if m.appendWatchEntryFn != nil {
		return m.appendWatchEntryFn(ctx, userID, videoID)
	}
	return nil
}

func (m *mockVideoRepository) GetWatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error) {
	if m.getWatchHistoryFn != nil {
		return m.getWatchHistoryFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.SocialRepository
// ─────────────────────────────────────────────

type mockSocialRepository struct {
	createTweetFn        func(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	listUserTweetsFn     func(ctx context.Context, ownerID int64) ([]models.Tweet, error)
	createPlaylistFn     func(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	addVideoToPlaylistFn func(ctx context.Context, playlistID, videoID int64) error
	getPlaylistFn        func(ctx context.Context, playlistID int64) (models.Playlist, error)
	toggleLikeFn         func(ctx context.Context, like models.Like) (bool, error)
	countLikesFn         func(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error)
}

func (m *mockSocialRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	if m.createTweetFn != nil {
		return m.createTweetFn(ctx, tweet)
	}
	return tweet, nil
}

func (m *mockSocialRepository) ListUserTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error) {
	if m.listUserTweetsFn != nil {
		return m.listUserTweetsFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockSocialRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	if m.createPlaylistFn != nil {
		return m.createPlaylistFn(ctx, playlist)
	}
	return playlist, nil
}

func (m *mockSocialRepository) AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) error {
	if m.addVideoToPlaylistFn != nil {
		return m.addVideoToPlaylistFn(ctx, playlistID, videoID)
	}
	return nil
}

func (m *mockSocialRepository) GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error) {
	if m.getPlaylistFn != nil {
		return m.getPlaylistFn(ctx, playlistID)
	}
	return models.Playlist{PlaylistID: playlistID}, nil
}

func (m *mockSocialRepository) ToggleLike(ctx context.Context, like models.Like) (bool, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, like)
	}
	return true, nil
}

func (m *mockSocialRepository) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error) {
	if m.countLikesFn != nil {
		return m.countLikesFn(ctx, kind, targetID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.BlobStore + cleanup queue
// ─────────────────────────────────────────────

type mockBlobStore struct {
	uploadFn func(ctx context.Context, blob adapter.Blob) (string, error)
	deleteFn func(ctx context.Context, url string) error
}

func (m *mockBlobStore) Upload(ctx context.Context, blob adapter.Blob) (string, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, blob)
	}
	return "https://cdn.example.com/blob", nil
}

func (m *mockBlobStore) Delete(ctx context.Context, url string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, url)
	}
	return nil
}

// mockCleanupQueue records enqueued URLs; Enqueue may be called from
// service-internal goroutines so access is guarded.
type mockCleanupQueue struct {
	mu   sync.Mutex
	urls []string
}

func (m *mockCleanupQueue) Enqueue(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
}

func (m *mockCleanupQueue) enqueued() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}
