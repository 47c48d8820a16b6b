package http

import (
	"context"
	"net/http"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/service"
	"github.com/vidora/vidora/internal/utils"
	"github.com/vidora/vidora/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; unset fields fall back
// to inert defaults.
type mockAuthService struct {
	registerFn         func(ctx context.Context, req models.RegisterRequest, avatar, cover adapter.Blob) (models.User, error)
	loginFn            func(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)
	logoutFn           func(ctx context.Context, userID int64) error
	refreshFn          func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	changePasswordFn   func(ctx context.Context, userID int64, oldPassword, newPassword string) error
	currentUserFn      func(ctx context.Context, userID int64) (models.User, error)
	updateAccountFn    func(ctx context.Context, userID int64, fullName, email string) (models.User, error)
	updateAvatarFn     func(ctx context.Context, userID int64, avatar adapter.Blob) (models.User, error)
	updateCoverFn      func(ctx context.Context, userID int64, cover adapter.Blob) (models.User, error)
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest, avatar, cover adapter.Blob) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req, avatar, cover)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, models.TokenPair{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, userID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, userID)
	}
	return nil
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	return models.TokenPair{}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, oldPassword, newPassword)
	}
	return nil
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(ctx, userID, fullName, email)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) UpdateAvatar(ctx context.Context, userID int64, avatar adapter.Blob) (models.User, error) {
	if m.updateAvatarFn != nil {
		return m.updateAvatarFn(ctx, userID, avatar)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) UpdateCover(ctx context.Context, userID int64, cover adapter.Blob) (models.User, error) {
	if m.updateCoverFn != nil {
		return m.updateCoverFn(ctx, userID, cover)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseAccessTokenFn != nil {
		return m.parseAccessTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock ChannelService
// ─────────────────────────────────────────────

type mockChannelService struct {
	getChannelProfileFn func(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error)
	subscribeFn         func(ctx context.Context, subscriberID int64, username string) error
	unsubscribeFn       func(ctx context.Context, subscriberID int64, username string) error
	recordWatchFn       func(ctx context.Context, userID, videoID int64) error
	watchHistoryFn      func(ctx context.Context, userID int64) ([]models.EnrichedVideo, error)
}

func (m *mockChannelService) GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error) {
	if m.getChannelProfileFn != nil {
		return m.getChannelProfileFn(ctx, username, viewerID)
	}
	return models.ChannelProfile{}, nil
}

func (m *mockChannelService) Subscribe(ctx context.Context, subscriberID int64, username string) error {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, subscriberID, username)
	}
	return nil
}

func (m *mockChannelService) Unsubscribe(ctx context.Context, subscriberID int64, username string) error {
	if m.unsubscribeFn != nil {
		return m.unsubscribeFn(ctx, subscriberID, username)
	}
	return nil
}

func (m *mockChannelService) RecordWatch(ctx context.Context, userID, videoID int64) error {
	if m.recordWatchFn != nil {
		return m.recordWatchFn(ctx, userID, videoID)
	}
	return nil
}

func (m *mockChannelService) WatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error) {
	if m.watchHistoryFn != nil {
		return m.watchHistoryFn(ctx, userID)
	}
	return []models.EnrichedVideo{}, nil
}

// ─────────────────────────────────────────────
// Mock SocialService
// ─────────────────────────────────────────────

type mockSocialService struct {
	publishTweetFn       func(ctx context.Context, ownerID int64, content string) (models.Tweet, error)
	listTweetsFn         func(ctx context.Context, ownerID int64) ([]models.Tweet, error)
	createPlaylistFn     func(ctx context.Context, ownerID int64, name, description string) (models.Playlist, error)
	addVideoToPlaylistFn func(ctx context.Context, requesterID, playlistID, videoID int64) error
	getPlaylistFn        func(ctx context.Context, playlistID int64) (models.Playlist, error)
	toggleLikeFn         func(ctx context.Context, likedBy int64, kind models.LikeTargetKind, targetID int64) (bool, error)
	countLikesFn         func(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error)
}

func (m *mockSocialService) PublishTweet(ctx context.Context, ownerID int64, content string) (models.Tweet, error) {
	if m.publishTweetFn != nil {
		return m.publishTweetFn(ctx, ownerID, content)
	}
	return models.Tweet{}, nil
}

func (m *mockSocialService) ListTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error) {
	if m.listTweetsFn != nil {
		return m.listTweetsFn(ctx, ownerID)
	}
	return []models.Tweet{}, nil
}

func (m *mockSocialService) CreatePlaylist(ctx context.Context, ownerID int64, name, description string) (models.Playlist, error) {
	if m.createPlaylistFn != nil {
		return m.createPlaylistFn(ctx, ownerID, name, description)
	}
	return models.Playlist{}, nil
}

func (m *mockSocialService) AddVideoToPlaylist(ctx context.Context, requesterID, playlistID, videoID int64) error {
	if m.addVideoToPlaylistFn != nil {
		return m.addVideoToPlaylistFn(ctx, requesterID, playlistID, videoID)
	}
	return nil
}

func (m *mockSocialService) GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error) {
	if m.getPlaylistFn != nil {
		return m.getPlaylistFn(ctx, playlistID)
	}
	return models.Playlist{}, nil
}

func (m *mockSocialService) ToggleLike(ctx context.Context, likedBy int64, kind models.LikeTargetKind, targetID int64) (bool, error) {
	if m.toggleLikeFn != nil {
		return m.toggleLikeFn(ctx, likedBy, kind, targetID)
	}
	return false, nil
}

func (m *mockSocialService) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error) {
	if m.countLikesFn != nil {
		return m.countLikesFn(ctx, kind, targetID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services are all mocked with inert
// defaults. Individual tests override the mock fields they care about.
func newTestHandler(auth *mockAuthService, channel *mockChannelService, social *mockSocialService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if channel == nil {
		channel = &mockChannelService{}
	}
	if social == nil {
		social = &mockSocialService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		ChannelService: channel,
		SocialService:  social,
	}, logger.Nop())
}

// injectNopLogger puts a nop logger into the request context so that
// logger.FromRequest does not fall back to the global writer.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// asUser stores userID in the request context the way the auth middleware
// would after validating a token.
func asUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}
