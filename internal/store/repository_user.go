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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, credential updates, and the
// refresh-token slot against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads the canonical users column set into a models.User.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Username,
		&user.FullName,
		&user.PasswordHash,
		&user.AvatarURL,
		&user.CoverURL,
		&user.RefreshToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrIdentityAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.Username, user.FullName, user.PasswordHash, user.AvatarURL, user.CoverURL)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrIdentityAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByID retrieves an account by its primary key.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByIdentifier retrieves an account whose email or username matches
// one of the supplied identifiers. The query is shaped dynamically because
// either identifier may be absent.
//
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindUserByIdentifier(ctx context.Context, email, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIdentifierQuery(email, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// SetRefreshToken overwrites the refresh-token slot unconditionally.
func (r *userRepository) SetRefreshToken(ctx context.Context, userID int64, token string) error {
	return r.execOnUser(ctx, "SetRefreshToken", setRefreshToken, userID, token)
}

// RotateRefreshToken performs the compare-and-set slot update described on
// [UserRepository]. Zero affected rows means the stored token no longer
// equals oldToken and the rotation loses: [ErrRefreshTokenMismatch].
func (r *userRepository) RotateRefreshToken(ctx context.Context, userID int64, oldToken, newToken string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, rotateRefreshToken, userID, oldToken, newToken)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RotateRefreshToken").Int64("user_id", userID).Msg("error rotating refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRefreshTokenMismatch
	}

	return nil
}

// ClearRefreshToken empties the slot, invalidating the active refresh token.
func (r *userRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	return r.execOnUser(ctx, "ClearRefreshToken", clearRefreshToken, userID)
}

// UpdatePasswordHash replaces the stored credential hash.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	return r.execOnUser(ctx, "UpdatePasswordHash", updatePasswordHash, userID, passwordHash)
}

// execOnUser runs a single-row UPDATE keyed by user_id and converts a
// zero-row result into [ErrNoUserWasFound].
func (r *userRepository) execOnUser(ctx context.Context, op, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateAvatarURL swaps the avatar reference inside a short transaction: the
// previous URL is read under FOR UPDATE so the caller gets exactly the blob
// that this update displaced, even under concurrent media updates.
func (r *userRepository) UpdateAvatarURL(ctx context.Context, userID int64, url string) (models.User, string, error) {
	return r.swapMediaURL(ctx, "UpdateAvatarURL", selectAvatarForUpdate, updateAvatarURL, userID, url)
}

// UpdateCoverURL swaps the cover reference; see [userRepository.UpdateAvatarURL].
func (r *userRepository) UpdateCoverURL(ctx context.Context, userID int64, url string) (models.User, string, error) {
	return r.swapMediaURL(ctx, "UpdateCoverURL", selectCoverForUpdate, updateCoverURL, userID, url)
}

func (r *userRepository) swapMediaURL(ctx context.Context, op, selectQuery, updateQuery string, userID int64, url string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("failed to begin transaction")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var previous string
	if err := tx.QueryRowContext(ctx, selectQuery, userID).Scan(&previous); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository."+op).Int64("user_id", userID).Msg("error reading previous media url")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	updated, err := scanUser(tx.QueryRowContext(ctx, updateQuery, userID, url))
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Int64("user_id", userID).Msg("error updating media url")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return updated, previous, nil
}

// UpdateAccountDetails applies a partial profile update built dynamically
// from the non-empty fields.
//
// Error handling mirrors [userRepository.CreateUser]: an email
// unique_violation maps to [ErrIdentityAlreadyExists].
func (r *userRepository) UpdateAccountDetails(ctx context.Context, userID int64, fullName, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(userID, fullName, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAccountDetails").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateAccountDetails").Int64("user_id", userID).Msg("error updating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrIdentityAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}
