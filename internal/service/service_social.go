package service

import (
	"context"
	"fmt"

	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/store"
	"github.com/vidora/vidora/models"
)

// socialService is the concrete implementation of [SocialService].
type socialService struct {
	socialRepository store.SocialRepository
	logger           *logger.Logger
}

// NewSocialService constructs a [SocialService] over the given repository.
func NewSocialService(socialRepository store.SocialRepository, logger *logger.Logger) SocialService {
	return &socialService{
		socialRepository: socialRepository,
		logger:           logger,
	}
}

// PublishTweet creates a community post.
func (s *socialService) PublishTweet(ctx context.Context, ownerID int64, content string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if content == "" {
		return models.Tweet{}, ErrInvalidDataProvided
	}

	tweet, err := s.socialRepository.CreateTweet(ctx, models.Tweet{OwnerID: ownerID, Content: content})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("tweet creation ended with error")
		return models.Tweet{}, fmt.Errorf("tweet creation ended with error: %w", err)
	}

	return tweet, nil
}

// ListTweets returns the user's posts, newest first.
func (s *socialService) ListTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error) {
	tweets, err := s.socialRepository.ListUserTweets(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("tweet listing failed: %w", err)
	}

	return tweets, nil
}

// CreatePlaylist creates an empty named playlist.
func (s *socialService) CreatePlaylist(ctx context.Context, ownerID int64, name, description string) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		return models.Playlist{}, ErrInvalidDataProvided
	}

	playlist, err := s.socialRepository.CreatePlaylist(ctx, models.Playlist{OwnerID: ownerID, Name: name, Description: description})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("playlist creation ended with error")
		return models.Playlist{}, fmt.Errorf("playlist creation ended with error: %w", err)
	}

	return playlist, nil
}

// AddVideoToPlaylist appends a video to the playlist tail. Only the playlist
// owner may modify it: the ownership check reads the playlist first and
// rejects foreign requesters with ErrNotPlaylistOwner.
func (s *socialService) AddVideoToPlaylist(ctx context.Context, requesterID, playlistID, videoID int64) error {
	log := logger.FromContext(ctx)

	playlist, err := s.socialRepository.GetPlaylist(ctx, playlistID)
	if err != nil {
		log.Err(err).Int64("playlist_id", playlistID).Msg("playlist lookup failed")
		return fmt.Errorf("playlist lookup failed: %w", err)
	}

	if playlist.OwnerID != requesterID {
		return ErrNotPlaylistOwner
	}

	if err := s.socialRepository.AddVideoToPlaylist(ctx, playlistID, videoID); err != nil {
		log.Err(err).Int64("playlist_id", playlistID).Int64("video_id", videoID).Msg("adding video to playlist failed")
		return fmt.Errorf("adding video to playlist failed: %w", err)
	}

	return nil
}

// GetPlaylist loads a playlist together with its member videos.
func (s *socialService) GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error) {
	playlist, err := s.socialRepository.GetPlaylist(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("playlist lookup failed: %w", err)
	}

	return playlist, nil
}

// ToggleLike flips the requester's like on the target entity and reports
// whether the like now exists.
func (s *socialService) ToggleLike(ctx context.Context, likedBy int64, kind models.LikeTargetKind, targetID int64) (bool, error) {
	log := logger.FromContext(ctx)

	switch kind {
	case models.LikeTargetVideo, models.LikeTargetTweet, models.LikeTargetComment:
	default:
		return false, ErrUnsupportedLikeTarget
	}
	if targetID <= 0 {
		return false, ErrInvalidDataProvided
	}

	liked, err := s.socialRepository.ToggleLike(ctx, models.Like{LikedBy: likedBy, TargetKind: kind, TargetID: targetID})
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Str("target_kind", string(kind)).Msg("like toggle failed")
		return false, fmt.Errorf("like toggle failed: %w", err)
	}

	return liked, nil
}

// CountLikes counts likes attached to one target entity.
func (s *socialService) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error) {
	count, err := s.socialRepository.CountLikes(ctx, kind, targetID)
	if err != nil {
		return 0, fmt.Errorf("like counting failed: %w", err)
	}

	return count, nil
}
