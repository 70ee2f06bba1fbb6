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
	"github.com/mattn/go-sqlite3"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/models"
)

// fixedIDGenerator always returns the same identifier, making the
// store-assigned id assertable in tests.
type fixedIDGenerator struct {
	id string
}

func (g fixedIDGenerator) Generate() string {
	return g.id
}

const testUserID = "0195a2b4-7c1e-7f00-8000-000000000001"

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		ids:    fixedIDGenerator{id: testUserID},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "Ana",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(testUserID, user.Name, user.Email, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testUserID, user.Name, user.Email, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != testUserID {
		t.Errorf("expected ID=%s, got %s", testUserID, created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected store-assigned CreatedAt")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ana", Email: "a@x.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolation_SQLite(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	repo.db.errorClassificator = NewSQLiteErrorClassifier()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.CreateUser(context.Background(), models.User{Name: "Ana", Email: "a@x.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ana", Email: "a@x.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Name: "Ana", Email: "a@x.com"}

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(testUserID)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
		AddRow(testUserID, "Ana", "a@x.com", "$2a$12$hash", now)

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != testUserID {
		t.Errorf("expected ID=%s, got %s", testUserID, found.ID)
	}
	if found.PasswordHash == "" {
		t.Error("login path must read back the password hash")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// zero rows: Scan surfaces sql.ErrNoRows
	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at").
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "missing@x.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_ExcludesPassword(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "created_at"}).
		AddRow(testUserID, "Ana", "a@x.com", now)

	// the password_hash column must not appear in the SELECT at all
	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WithArgs(testUserID).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), testUserID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PasswordHash != "" {
		t.Errorf("expected empty PasswordHash, got %q", found.PasswordHash)
	}
	if found.Name != "Ana" {
		t.Errorf("expected name Ana, got %s", found.Name)
	}
}

func TestFindUserByID_IncludesPasswordWhenAsked(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "created_at", "password_hash"}).
		AddRow(testUserID, "Ana", "a@x.com", now, "$2a$12$hash")

	mock.ExpectQuery(`SELECT id, name, email, created_at, password_hash FROM users`).
		WithArgs(testUserID).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), testUserID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PasswordHash != "$2a$12$hash" {
		t.Errorf("expected password hash to be read back, got %q", found.PasswordHash)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, email, created_at FROM users`).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at"}))

	_, err := repo.FindUserByID(context.Background(), "unknown", false)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
