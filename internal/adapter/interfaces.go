package adapter

import (
	"context"

	"github.com/rmachado/go-auth-api/models"
)

// APIClient is a programmatic client for the authentication service's HTTP
// API. Implementations hold the bearer token obtained at login and attach
// it to protected calls.
type APIClient interface {
	// Register creates a new account. The service issues no token at
	// registration; call Login afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates and stores the returned bearer token on the
	// client for subsequent protected calls. The raw token is also
	// returned.
	Login(ctx context.Context, email, password string) (string, error)

	// GetUser fetches a user profile by id using the stored bearer token.
	GetUser(ctx context.Context, id string) (models.User, error)

	// SetToken replaces the stored bearer token.
	SetToken(token string)

	// Token returns the stored bearer token, empty until a successful
	// Login or SetToken call.
	Token() string
}
