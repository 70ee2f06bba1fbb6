package service

import (
	"context"
	"fmt"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/store"
	"github.com/rmachado/go-auth-api/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUserByID retrieves a user profile by its identifier. The password hash
// is excluded at the query boundary, so the returned record can be exposed
// to clients as-is.
//
// Returns the user record or:
//   - ErrInvalidDataProvided if id is empty.
//   - store.ErrNoUserWasFound (wrapped) when no record matches.
func (u *userService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		log.Error().Msg("empty user id provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := u.userRepository.FindUserByID(ctx, id, false)
	if err != nil {
		log.Err(err).Str("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
