package store

import (
	"context"

	"github.com/rmachado/go-auth-api/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with the
	// store-assigned ID and CreatedAt. Returns ErrEmailAlreadyExists when
	// the email unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the full user record, including the
	// password hash, for the login flow. Returns ErrNoUserWasFound when
	// no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user record by its identifier. When
	// includePassword is false the password hash column is excluded from
	// the query itself, so the hash never leaves the database on read
	// paths that do not need it. Returns ErrNoUserWasFound when no record
	// matches.
	FindUserByID(ctx context.Context, id string, includePassword bool) (models.User, error)
}

// ErrorClassificator maps backend-specific driver errors to portable
// classifications so repositories stay backend-agnostic.
type ErrorClassificator interface {
	// Classify reports whether a failed operation is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a unique
	// constraint violation (e.g. a duplicate email).
	IsUniqueViolation(err error) bool
}

// IDGenerator produces identifiers for newly created records.
type IDGenerator interface {
	Generate() string
}
