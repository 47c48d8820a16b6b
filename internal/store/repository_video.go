package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/models"
)

// videoRepository is the PostgreSQL-backed implementation of
// [VideoRepository].
type videoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVideoRepository constructs a [VideoRepository] backed by the provided
// database connection and logger.
func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// appendWatchEntryAttempts bounds the retries when concurrent appends for
// the same user compute the same tail position.
const appendWatchEntryAttempts = 3

// AppendWatchEntry appends videoID to the tail of the user's watch history.
// The position is computed server-side inside the INSERT, so two concurrent
// appends for one user can race to the same position; a unique_violation on
// the (user_id, position) key is retried with a freshly computed tail.
//
// A foreign_key_violation means the video does not exist:
// [ErrNoVideoWasFound].
func (r *videoRepository) AppendWatchEntry(ctx context.Context, userID, videoID int64) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 0; attempt < appendWatchEntryAttempts; attempt++ {
		if _, err = r.db.ExecContext(ctx, appendWatchEntry, userID, videoID); err == nil {
			return nil
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			continue
		case pgerrcode.ForeignKeyViolation:
			log.Err(err).Str("func", "*videoRepository.AppendWatchEntry").
				Int64("user_id", userID).Int64("video_id", videoID).
				Msg("error appending watch entry")
			return ErrNoVideoWasFound
		default:
			log.Err(err).Str("func", "*videoRepository.AppendWatchEntry").
				Int64("user_id", userID).Int64("video_id", videoID).
				Msg("error appending watch entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	log.Err(err).Str("func", "*videoRepository.AppendWatchEntry").
		Int64("user_id", userID).Int64("video_id", videoID).
		Msg("watch entry position contended on every attempt")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// GetWatchHistory resolves the user's stored watch sequence into enriched
// video records in stored order. The inner joins silently drop entries whose
// video has since been deleted, so the result can be shorter than the raw
// history.
func (r *videoRepository) GetWatchHistory(ctx context.Context, userID int64) ([]models.EnrichedVideo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getWatchHistory, userID)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.GetWatchHistory").Int64("user_id", userID).Msg("error querying watch history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.EnrichedVideo, 0)
	for rows.Next() {
		var entry models.EnrichedVideo
		err := rows.Scan(
			&entry.VideoID,
			&entry.OwnerID,
			&entry.Title,
			&entry.Description,
			&entry.VideoURL,
			&entry.ThumbnailURL,
			&entry.Duration,
			&entry.Views,
			&entry.CreatedAt,
			&entry.Owner.UserID,
			&entry.Owner.Username,
			&entry.Owner.FullName,
			&entry.Owner.AvatarURL,
		)
		if err != nil {
			log.Err(err).Str("func", "*videoRepository.GetWatchHistory").Msg("error scanning watch history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}
