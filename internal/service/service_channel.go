package service

import (
	"context"
	"fmt"

	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/store"
	"github.com/vidora/vidora/models"
)

// channelService is the concrete implementation of [ChannelService]. All
// derived statistics are computed by the repository inside one snapshot
// transaction; this layer adds validation and the self-subscription guard.
type channelService struct {
	userRepository         store.UserRepository
	subscriptionRepository store.SubscriptionRepository
	videoRepository        store.VideoRepository
	logger                 *logger.Logger
}

// NewChannelService constructs a [ChannelService] over the given
// repositories.
func NewChannelService(userRepository store.UserRepository, subscriptionRepository store.SubscriptionRepository, videoRepository store.VideoRepository, logger *logger.Logger) ChannelService {
	return &channelService{
		userRepository:         userRepository,
		subscriptionRepository: subscriptionRepository,
		videoRepository:        videoRepository,
		logger:                 logger,
	}
}

// GetChannelProfile returns the channel's public profile enriched with
// subscriber statistics.
//
// Returns ErrInvalidDataProvided for an empty username, or a wrapped storage
// error (see store.ErrNoUserWasFound for unknown channels).
func (c *channelService) GetChannelProfile(ctx context.Context, username string, viewerID int64) (models.ChannelProfile, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.ChannelProfile{}, ErrInvalidDataProvided
	}

	profile, err := c.subscriptionRepository.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		log.Err(err).Str("username", username).Msg("channel profile aggregation failed")
		return models.ChannelProfile{}, fmt.Errorf("channel profile aggregation failed: %w", err)
	}

	return profile, nil
}

// Subscribe creates the subscription edge from subscriberID to the channel
// named by username.
//
// Returns ErrSelfSubscription when the resolved channel is the subscriber's
// own account, ErrInvalidDataProvided for an empty username, or a wrapped
// storage error.
func (c *channelService) Subscribe(ctx context.Context, subscriberID int64, username string) error {
	channelID, err := c.resolveChannel(ctx, subscriberID, username)
	if err != nil {
		return err
	}

	if err := c.subscriptionRepository.Subscribe(ctx, subscriberID, channelID); err != nil {
		return fmt.Errorf("subscription failed: %w", err)
	}

	return nil
}

// Unsubscribe removes the subscription edge; absent edges are a no-op.
func (c *channelService) Unsubscribe(ctx context.Context, subscriberID int64, username string) error {
	channelID, err := c.resolveChannel(ctx, subscriberID, username)
	if err != nil {
		return err
	}

	if err := c.subscriptionRepository.Unsubscribe(ctx, subscriberID, channelID); err != nil {
		return fmt.Errorf("unsubscription failed: %w", err)
	}

	return nil
}

// resolveChannel maps a channel username to its user id and rejects
// self-edges. Both Subscribe and Unsubscribe resolve through here so the
// self-subscription guard cannot be bypassed by either direction.
func (c *channelService) resolveChannel(ctx context.Context, subscriberID int64, username string) (int64, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return 0, ErrInvalidDataProvided
	}

	channel, err := c.userRepository.FindUserByIdentifier(ctx, "", username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("channel lookup failed")
		return 0, fmt.Errorf("channel lookup failed: %w", err)
	}

	if channel.UserID == subscriberID {
		return 0, ErrSelfSubscription
	}

	return channel.UserID, nil
}

// RecordWatch appends videoID to the user's watch history.
func (c *channelService) RecordWatch(ctx context.Context, userID, videoID int64) error {
	log := logger.FromContext(ctx)

	if videoID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := c.videoRepository.AppendWatchEntry(ctx, userID, videoID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("video_id", videoID).Msg("recording watch entry failed")
		return fmt.Errorf("recording watch entry failed: %w", err)
	}

	return nil
}

// WatchHistory returns the user's watched videos in watch order, each
// enriched with its owner's public profile. Entries whose video has been
// deleted are omitted rather than failing the whole read.
func (c *channelService) WatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error) {
	log := logger.FromContext(ctx)

	history, err := c.videoRepository.GetWatchHistory(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("watch history read failed")
		return nil, fmt.Errorf("watch history read failed: %w", err)
	}

	return history, nil
}
