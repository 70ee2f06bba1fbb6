package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// is backend-agnostic: driver errors are interpreted through the
// [ErrorClassificator] carried by the DB handle.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    IDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection, identifier generator, and logger.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with store-assigned fields (ID, CreatedAt).
//
// The record identifier is generated here, at the store boundary, so callers
// never supply one. The INSERT uses the [createUser] query which returns all
// columns via a RETURNING clause, so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - unique constraint violation on email → [ErrEmailAlreadyExists]. This
//     is the authoritative duplicate check; the service-level existence
//     lookup is only an early exit and can race with concurrent inserts.
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()

	row := r.db.QueryRowContext(ctx, createUser, user.ID, user.Name, user.Email, user.PasswordHash)

	// create user in db
	if err := row.Err(); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email unique constraint violated")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: insert failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email unique constraint violated")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly,
// including the password hash. It is intended for the login flow only.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByEmail").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its identifier. When
// includePassword is false the password hash column is left out of the
// SELECT entirely, enforcing the "never expose the hash" invariant at the
// query boundary rather than by post-hoc field clearing.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Query construction failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id string, includePassword bool) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(id, includePassword)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// find user by id
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	dest := []any{&foundUser.ID, &foundUser.Name, &foundUser.Email, &foundUser.CreatedAt}
	if includePassword {
		dest = append(dest, &foundUser.PasswordHash)
	}

	// scan found user from db
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}
