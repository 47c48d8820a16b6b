package store

import (
	sq "github.com/Masterminds/squirrel"
)

// psql is the shared squirrel builder configured for PostgreSQL ($N
// placeholders). Used by every dynamically shaped query in this package.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into models.User.
const userColumns = `user_id, email, username, full_name, password_hash, avatar_url, cover_url, refresh_token, created_at, updated_at`

const (
	createUser = `INSERT INTO users (email, username, full_name, password_hash, avatar_url, cover_url)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	setRefreshToken = `UPDATE users
    SET refresh_token = $2, updated_at = now()
    WHERE user_id = $1;`

	// The WHERE clause on refresh_token makes rotation a compare-and-set:
	// of two concurrent rotations presenting the same token, exactly one
	// affects a row.
	rotateRefreshToken = `UPDATE users
    SET refresh_token = $3, updated_at = now()
    WHERE user_id = $1 AND refresh_token = $2;`

	clearRefreshToken = `UPDATE users
    SET refresh_token = NULL, updated_at = now()
    WHERE user_id = $1;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $2, updated_at = now()
    WHERE user_id = $1;`

	selectAvatarForUpdate = `SELECT avatar_url FROM users WHERE user_id = $1 FOR UPDATE;`
	selectCoverForUpdate  = `SELECT cover_url FROM users WHERE user_id = $1 FOR UPDATE;`

	updateAvatarURL = `UPDATE users
    SET avatar_url = $2, updated_at = now()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	updateCoverURL = `UPDATE users
    SET cover_url = $2, updated_at = now()
    WHERE user_id = $1
    RETURNING ` + userColumns + `;`

	subscribe = `INSERT INTO subscriptions (subscriber_id, channel_id)
    VALUES ($1, $2)
    ON CONFLICT (subscriber_id, channel_id) DO NOTHING;`

	unsubscribe = `DELETE FROM subscriptions
    WHERE subscriber_id = $1 AND channel_id = $2;`

	countSubscribers = `SELECT count(*) FROM subscriptions WHERE channel_id = $1;`

	countSubscribedTo = `SELECT count(*) FROM subscriptions WHERE subscriber_id = $1;`

	existsSubscription = `SELECT EXISTS (
    SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2
  );`

	// Position is assigned server-side so appends stay ordered without a
	// client-supplied counter.
	appendWatchEntry = `INSERT INTO watch_history (user_id, video_id, position)
    VALUES ($1, $2, COALESCE((SELECT MAX(position) FROM watch_history WHERE user_id = $1), 0) + 1);`

	// INNER JOINs drop history entries whose video has vanished: the
	// tolerant join required by the watch-history read path.
	getWatchHistory = `SELECT
      v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at,
      o.user_id, o.username, o.full_name, o.avatar_url
    FROM watch_history h
    JOIN videos v ON v.video_id = h.video_id
    JOIN users o ON o.user_id = v.owner_id
    WHERE h.user_id = $1
    ORDER BY h.position;`

	createTweet = `INSERT INTO tweets (owner_id, content)
    VALUES ($1, $2)
    RETURNING tweet_id, owner_id, content, created_at;`

	listUserTweets = `SELECT tweet_id, owner_id, content, created_at
    FROM tweets
    WHERE owner_id = $1
    ORDER BY created_at DESC;`

	createPlaylist = `INSERT INTO playlists (owner_id, name, description)
    VALUES ($1, $2, $3)
    RETURNING playlist_id, owner_id, name, description, created_at;`

	findPlaylistByID = `SELECT playlist_id, owner_id, name, description, created_at
    FROM playlists
    WHERE playlist_id = $1;`

	addVideoToPlaylist = `INSERT INTO playlist_videos (playlist_id, video_id, position)
    VALUES ($1, $2, COALESCE((SELECT MAX(position) FROM playlist_videos WHERE playlist_id = $1), 0) + 1)
    ON CONFLICT (playlist_id, video_id) DO NOTHING;`

	getPlaylistVideos = `SELECT v.video_id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at
    FROM playlist_videos pv
    JOIN videos v ON v.video_id = pv.video_id
    WHERE pv.playlist_id = $1
    ORDER BY pv.position;`

	insertLike = `INSERT INTO likes (liked_by, target_kind, target_id)
    VALUES ($1, $2, $3)
    ON CONFLICT (liked_by, target_kind, target_id) DO NOTHING;`
)

// buildFindUserByIdentifierQuery matches a user by email OR lowercased
// username, whichever identifiers the caller supplied. Built dynamically
// because either identifier may be absent.
func buildFindUserByIdentifierQuery(email, username string) (string, []any, error) {
	or := sq.Or{}
	if email != "" {
		or = append(or, sq.Eq{"email": email})
	}
	if username != "" {
		or = append(or, sq.Eq{"username": username})
	}

	return psql.
		Select("user_id", "email", "username", "full_name", "password_hash", "avatar_url", "cover_url", "refresh_token", "created_at", "updated_at").
		From("users").
		Where(or).
		ToSql()
}

// buildUpdateAccountQuery assembles a partial profile UPDATE: only non-empty
// fields appear in the SET clause.
func buildUpdateAccountQuery(userID int64, fullName, email string) (string, []any, error) {
	update := psql.
		Update("users").
		Set("updated_at", sq.Expr("now()"))

	if fullName != "" {
		update = update.Set("full_name", fullName)
	}
	if email != "" {
		update = update.Set("email", email)
	}

	return update.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildDeleteLikeQuery removes the like edge identified by the full
// (user, kind, target) triple.
func buildDeleteLikeQuery(likedBy int64, kind string, targetID int64) (string, []any, error) {
	return psql.
		Delete("likes").
		Where(sq.Eq{"liked_by": likedBy, "target_kind": kind, "target_id": targetID}).
		ToSql()
}

// buildCountLikesQuery counts like edges attached to one target entity.
func buildCountLikesQuery(kind string, targetID int64) (string, []any, error) {
	return psql.
		Select("count(*)").
		From("likes").
		Where(sq.Eq{"target_kind": kind, "target_id": targetID}).
		ToSql()
}
