package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows(strings.Split(userColumns, ", ")).
		AddRow(user.UserID, user.Email, user.Username, user.FullName, user.PasswordHash,
			user.AvatarURL, user.CoverURL, user.RefreshToken, user.CreatedAt, user.UpdatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:        "john@example.com",
		Username:     "john",
		FullName:     "John Doe",
		PasswordHash: "hash",
		AvatarURL:    "https://cdn.example.com/a.png",
	}

	stored := user
	stored.UserID = 1
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Username, user.FullName, user.PasswordHash, user.AvatarURL, user.CoverURL).
		WillReturnRows(userRows(stored))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	if !errors.Is(err, ErrIdentityAlreadyExists) {
		t.Fatalf("expected ErrIdentityAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "john"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByIdentifier_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{UserID: 7, Email: "john@example.com", Username: "john"}

	mock.ExpectQuery("FROM users").
		WithArgs("john@example.com", "john").
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserByIdentifier(ctx, "john@example.com", "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
}

func TestFindUserByIdentifier_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByIdentifier(ctx, "", "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM users").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 42)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

// ─── refresh-token slot ───────────────────────────────────────────────────────

func TestRotateRefreshToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(1), "old-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RotateRefreshToken(ctx, 1, "old-token", "new-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRotateRefreshToken_Mismatch(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// zero affected rows: the slot no longer holds the presented token
	mock.ExpectExec("UPDATE users").
		WithArgs(int64(1), "stale-token", "new-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RotateRefreshToken(ctx, 1, "stale-token", "new-token")
	if !errors.Is(err, ErrRefreshTokenMismatch) {
		t.Fatalf("expected ErrRefreshTokenMismatch, got %v", err)
	}
}

func TestClearRefreshToken_NoUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearRefreshToken(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestSetRefreshToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(1), "fresh-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetRefreshToken(ctx, 1, "fresh-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ─── media swaps ──────────────────────────────────────────────────────────────

func TestUpdateAvatarURL_ReturnsPreviousURL(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	updated := models.User{UserID: 1, Username: "john", AvatarURL: "https://cdn.example.com/new.png"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT avatar_url FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"avatar_url"}).AddRow("https://cdn.example.com/old.png"))
	mock.ExpectQuery("UPDATE users").
		WithArgs(int64(1), "https://cdn.example.com/new.png").
		WillReturnRows(userRows(updated))
	mock.ExpectCommit()

	got, previous, err := repo.UpdateAvatarURL(ctx, 1, "https://cdn.example.com/new.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if previous != "https://cdn.example.com/old.png" {
		t.Errorf("expected previous URL of the displaced blob, got %q", previous)
	}
	if got.AvatarURL != "https://cdn.example.com/new.png" {
		t.Errorf("expected updated avatar URL, got %q", got.AvatarURL)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateCoverURL_NoUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT cover_url FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, _, err := repo.UpdateCoverURL(ctx, 404, "https://cdn.example.com/c.png")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateAccountDetails_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateAccountDetails(ctx, 1, "", "taken@example.com")
	if !errors.Is(err, ErrIdentityAlreadyExists) {
		t.Fatalf("expected ErrIdentityAlreadyExists, got %v", err)
	}
}

func TestUpdateAccountDetails_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	updated := models.User{UserID: 1, Email: "new@example.com", Username: "john", FullName: "John D."}

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(userRows(updated))

	got, err := repo.UpdateAccountDetails(ctx, 1, "John D.", "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FullName != "John D." || got.Email != "new@example.com" {
		t.Errorf("unexpected updated user: %+v", got)
	}
}
