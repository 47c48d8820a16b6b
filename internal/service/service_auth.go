// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/config"
	"github.com/vidora/vidora/internal/crypto"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/store"
	"github.com/vidora/vidora/internal/utils"
	"github.com/vidora/vidora/models"
)

// BlobCleanupQueue accepts URLs of displaced media blobs for asynchronous,
// best-effort deletion. A profile update never fails because the old blob
// could not be removed.
type BlobCleanupQueue interface {
	Enqueue(url string)
}

// authService is the concrete implementation of [AuthService].
//
// Tokens are issued in pairs signed with two distinct HMAC keys: a
// short-lived access token and a long-lived refresh token. The refresh
// token's single-use guarantee comes from the repository's conditional slot
// update, not from any state held here; this service stays stateless and
// safe for concurrent use.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	blobStore      adapter.BlobStore
	cleanup        BlobCleanupQueue

	// accessSignKey and refreshSignKey are distinct HMAC secrets. A refresh
	// token can never pass access-token validation and vice versa.
	accessSignKey  string
	refreshSignKey string

	tokenIssuer     string
	accessDuration  time.Duration
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repository,
// password hasher, and blob store, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, blobStore adapter.BlobStore, cleanup BlobCleanupQueue, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		hasher:          hasher,
		blobStore:       blobStore,
		cleanup:         cleanup,
		accessSignKey:   cfg.AccessTokenSignKey,
		refreshSignKey:  cfg.RefreshTokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          logger,
	}
}

// Register creates a new account.
//
// Text fields are trimmed of surrounding whitespace and the username is
// additionally lowercased before storage so lookups are
// case-insensitive. Avatar and cover upload to the blob store concurrently
// before the row is inserted; if the insert then fails, both uploads are
// queued for cleanup so no orphan blobs accumulate.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any mandatory field is empty or
//     whitespace-only.
//   - ErrAvatarRequired if the avatar blob is missing.
//   - A wrapped storage error if the repository call fails (e.g. identity
//     already taken, see store.ErrIdentityAlreadyExists).
func (a *authService) Register(ctx context.Context, req models.RegisterRequest, avatar, cover adapter.Blob) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" || req.Username == "" || req.FullName == "" || strings.TrimSpace(req.Password) == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if len(avatar.Data) == 0 {
		return models.User{}, ErrAvatarRequired
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	var (
		wg                  sync.WaitGroup
		avatarURL, coverURL string
		avatarErr, coverErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		avatarURL, avatarErr = a.blobStore.Upload(ctx, avatar)
	}()
	if len(cover.Data) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			coverURL, coverErr = a.blobStore.Upload(ctx, cover)
		}()
	}
	wg.Wait()

	if avatarErr != nil || coverErr != nil {
		a.discardBlobs(avatarURL, coverURL)
		err := avatarErr
		if err == nil {
			err = coverErr
		}
		log.Err(err).Msg("media upload failed during registration")
		return models.User{}, fmt.Errorf("media upload failed: %w", err)
	}

	user := models.User{
		Email:        req.Email,
		Username:     strings.ToLower(req.Username),
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		AvatarURL:    avatarURL,
		CoverURL:     coverURL,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		a.discardBlobs(avatarURL, coverURL)
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// discardBlobs queues already-uploaded media for deletion after a failed
// registration.
func (a *authService) discardBlobs(urls ...string) {
	for _, url := range urls {
		if url != "" {
			a.cleanup.Enqueue(url)
		}
	}
}

// Login authenticates an existing user by email or username.
//
// On success a fresh token pair is minted and the refresh token is written
// into the user's slot unconditionally, displacing whatever session held it
// before. Exactly one refresh token per user is valid at any moment.
//
// Returns the user and pair or:
//   - ErrInvalidDataProvided if no identifier or no password was supplied.
//   - A wrapped storage error if the lookup fails (see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not verify.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if (req.Email == "" && req.Username == "") || req.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, models.TokenPair{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByIdentifier(ctx, req.Email, strings.ToLower(req.Username))
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by identifier failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	ok, err := a.hasher.Verify(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password verification failed")
		return models.User{}, models.TokenPair{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Error().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.TokenPair{}, ErrWrongPassword
	}

	pair, err := a.mintTokenPair(user.UserID)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	if err := a.userRepository.SetRefreshToken(ctx, user.UserID, pair.RefreshToken); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("failed to install refresh token")
		return models.User{}, models.TokenPair{}, fmt.Errorf("failed to install refresh token: %w", err)
	}

	return user, pair, nil
}

// Logout clears the refresh-token slot, revoking the active session.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.ClearRefreshToken(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to clear refresh token")
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	return nil
}

// Refresh exchanges a presented refresh token for a brand-new pair.
//
// The token is first validated cryptographically (signature, expiry,
// issuer), then swapped against the user's slot with a conditional update.
// The conditional update is what makes each token single-use: after a
// successful rotation the slot holds the new token, so a replay of the old
// one affects zero rows and fails. Of two concurrent refreshes with the same
// token, exactly one wins.
//
// Any failure, expired token, forged token, replayed token, or cleared
// slot, collapses into ErrTokenIsExpiredOrInvalid.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshSignKey, a.tokenIssuer)
	if err != nil {
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	pair, err := a.mintTokenPair(token.UserID)
	if err != nil {
		return models.TokenPair{}, err
	}

	err = a.userRepository.RotateRefreshToken(ctx, token.UserID, refreshToken, pair.RefreshToken)
	if err != nil {
		log.Error().Err(err).Int64("user_id", token.UserID).Msg("refresh token rotation rejected")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	return pair, nil
}

// ChangePassword verifies the old password before storing the new hash.
func (a *authService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	ok, err := a.hasher.Verify(user.PasswordHash, oldPassword)
	if err != nil {
		return fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return ErrWrongPassword
	}

	newHash, err := a.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to update password hash")
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	return nil
}

// CurrentUser loads the authenticated user's account record.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateAccountDetails applies a partial profile update.
func (a *authService) UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	if fullName == "" && email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := a.userRepository.UpdateAccountDetails(ctx, userID, fullName, email)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account update ended with error")
		return models.User{}, fmt.Errorf("account update ended with error: %w", err)
	}

	return updated, nil
}

// UpdateAvatar uploads the new avatar, swaps the stored reference, and
// queues the displaced blob for asynchronous cleanup. The swap is committed
// before the cleanup is scheduled, so a cleanup failure can never lose the
// new reference.
func (a *authService) UpdateAvatar(ctx context.Context, userID int64, avatar adapter.Blob) (models.User, error) {
	return a.updateMedia(ctx, userID, avatar, a.userRepository.UpdateAvatarURL)
}

// UpdateCover behaves like [authService.UpdateAvatar] for the cover image.
func (a *authService) UpdateCover(ctx context.Context, userID int64, cover adapter.Blob) (models.User, error) {
	return a.updateMedia(ctx, userID, cover, a.userRepository.UpdateCoverURL)
}

func (a *authService) updateMedia(ctx context.Context, userID int64, blob adapter.Blob, swap func(context.Context, int64, string) (models.User, string, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(blob.Data) == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	url, err := a.blobStore.Upload(ctx, blob)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("media upload failed")
		return models.User{}, fmt.Errorf("media upload failed: %w", err)
	}

	updated, previousURL, err := swap(ctx, userID, url)
	if err != nil {
		a.cleanup.Enqueue(url)
		log.Err(err).Int64("user_id", userID).Msg("media swap ended with error")
		return models.User{}, fmt.Errorf("media swap ended with error: %w", err)
	}

	if previousURL != "" {
		a.cleanup.Enqueue(previousURL)
	}

	return updated, nil
}

// ParseAccessToken validates a raw access-token string.
//
// Any validation failure (expired, wrong issuer, wrong key, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so callers do not inspect
// low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// mintTokenPair issues the access and refresh tokens together. Both share
// the issuer; they differ in lifetime and signing key.
func (a *authService) mintTokenPair(userID int64) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.accessDuration, a.accessSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.refreshDuration, a.refreshSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
	}, nil
}
