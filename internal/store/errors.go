package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityAlreadyExists is returned when an attempt to register a new
	// user fails because the email or the username is already taken.
	ErrIdentityAlreadyExists = errors.New("email or username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRefreshTokenMismatch is returned when a conditional refresh-token
	// slot update affects zero rows: the presented token no longer matches
	// the stored slot. This is the replay/reuse signal.
	ErrRefreshTokenMismatch = errors.New("refresh token slot mismatch")

	// ErrNoVideoWasFound is returned when a video lookup produces no rows.
	ErrNoVideoWasFound = errors.New("no video was found")

	// ErrNoTweetWasFound is returned when a tweet lookup produces no rows.
	ErrNoTweetWasFound = errors.New("no tweet was found")

	// ErrNoPlaylistWasFound is returned when a playlist lookup produces
	// no rows.
	ErrNoPlaylistWasFound = errors.New("no playlist was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
