package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/models"
)

// socialRepository is the PostgreSQL-backed implementation of
// [SocialRepository]: tweets, playlists, and polymorphic likes.
type socialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSocialRepository constructs a [SocialRepository] backed by the provided
// database connection and logger.
func NewSocialRepository(db *DB, logger *logger.Logger) SocialRepository {
	logger.Debug().Msg("creating social repository")
	return &socialRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTweet persists a community post and returns it with server-assigned
// fields populated.
func (r *socialRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTweet, tweet.OwnerID, tweet.Content)

	var created models.Tweet
	if err := row.Scan(&created.TweetID, &created.OwnerID, &created.Content, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*socialRepository.CreateTweet").Int64("owner_id", tweet.OwnerID).Msg("error creating tweet")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Tweet{}, ErrNoUserWasFound
		default:
			return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListUserTweets returns the user's posts, newest first.
func (r *socialRepository) ListUserTweets(ctx context.Context, ownerID int64) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserTweets, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*socialRepository.ListUserTweets").Int64("owner_id", ownerID).Msg("error querying tweets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tweets := make([]models.Tweet, 0)
	for rows.Next() {
		var tweet models.Tweet
		if err := rows.Scan(&tweet.TweetID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt); err != nil {
			log.Err(err).Str("func", "*socialRepository.ListUserTweets").Msg("error scanning tweet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tweets = append(tweets, tweet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tweets, nil
}

// CreatePlaylist persists an empty playlist and returns it with
// server-assigned fields populated.
func (r *socialRepository) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPlaylist, playlist.OwnerID, playlist.Name, playlist.Description)

	var created models.Playlist
	if err := row.Scan(&created.PlaylistID, &created.OwnerID, &created.Name, &created.Description, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*socialRepository.CreatePlaylist").Int64("owner_id", playlist.OwnerID).Msg("error creating playlist")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Playlist{}, ErrNoUserWasFound
		default:
			return models.Playlist{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// AddVideoToPlaylist appends videoID to the playlist tail. Re-adding a video
// already in the playlist is a no-op.
//
// A foreign_key_violation distinguishes which side is missing by the
// constraint name carried in the driver error message; both map to
// not-found sentinels.
func (r *socialRepository) AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addVideoToPlaylist, playlistID, videoID); err != nil {
		log.Err(err).Str("func", "*socialRepository.AddVideoToPlaylist").
			Int64("playlist_id", playlistID).Int64("video_id", videoID).
			Msg("error adding video to playlist")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrNoPlaylistWasFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// GetPlaylist loads a playlist together with its member videos in playlist
// order. Returns [ErrNoPlaylistWasFound] when the playlist does not exist.
func (r *socialRepository) GetPlaylist(ctx context.Context, playlistID int64) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	var playlist models.Playlist
	row := r.db.QueryRowContext(ctx, findPlaylistByID, playlistID)
	if err := row.Scan(&playlist.PlaylistID, &playlist.OwnerID, &playlist.Name, &playlist.Description, &playlist.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Playlist{}, ErrNoPlaylistWasFound
		}
		log.Err(err).Str("func", "*socialRepository.GetPlaylist").Int64("playlist_id", playlistID).Msg("error finding playlist")
		return models.Playlist{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, getPlaylistVideos, playlistID)
	if err != nil {
		log.Err(err).Str("func", "*socialRepository.GetPlaylist").Int64("playlist_id", playlistID).Msg("error querying playlist videos")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlist.Videos = make([]models.Video, 0)
	for rows.Next() {
		var video models.Video
		err := rows.Scan(
			&video.VideoID,
			&video.OwnerID,
			&video.Title,
			&video.Description,
			&video.VideoURL,
			&video.ThumbnailURL,
			&video.Duration,
			&video.Views,
			&video.CreatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*socialRepository.GetPlaylist").Msg("error scanning playlist video row")
			return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		playlist.Videos = append(playlist.Videos, video)
	}
	if err := rows.Err(); err != nil {
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return playlist, nil
}

// ToggleLike flips the like edge for the (user, kind, target) triple and
// reports the resulting state: true when the edge now exists.
//
// The flip is two idempotent statements: an INSERT ... ON CONFLICT DO
// NOTHING, and a DELETE only when the insert found an existing edge.
func (r *socialRepository) ToggleLike(ctx context.Context, like models.Like) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertLike, like.LikedBy, string(like.TargetKind), like.TargetID)
	if err != nil {
		log.Err(err).Str("func", "*socialRepository.ToggleLike").Msg("error inserting like")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return true, nil
	}

	// Edge already existed: the toggle removes it.
	query, args, err := buildDeleteLikeQuery(like.LikedBy, string(like.TargetKind), like.TargetID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*socialRepository.ToggleLike").Msg("error deleting like")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return false, nil
}

// CountLikes counts like edges attached to one target entity.
func (r *socialRepository) CountLikes(ctx context.Context, kind models.LikeTargetKind, targetID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountLikesQuery(string(kind), targetID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*socialRepository.CountLikes").Msg("error counting likes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
