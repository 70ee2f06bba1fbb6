package service

import (
	"context"

	"github.com/rmachado/go-auth-api/models"
)

// AuthService covers the authentication flow: registration, credential
// verification, and bearer-token lifecycle.
type AuthService interface {
	// RegisterUser hashes the password and persists a new account.
	// Returns store.ErrEmailAlreadyExists when the email is taken.
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)

	// Login verifies the credentials and returns the matching account.
	// Returns store.ErrNoUserWasFound when the email is unknown and
	// ErrWrongPassword when the password does not match.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its claims.
	// Any validation failure is normalised to ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers read access to user profiles.
type UserService interface {
	// GetUserByID returns the user record with the password hash excluded
	// at the query boundary. Returns store.ErrNoUserWasFound when absent.
	GetUserByID(ctx context.Context, id string) (models.User, error)
}
