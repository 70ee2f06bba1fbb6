package service

import (
	"github.com/rmachado/go-auth-api/internal/config"
	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/store"
)

// Services bundles every business-logic component exposed to the transport
// layer.
type Services struct {
	AuthService AuthService
	UserService UserService
}

// NewServices wires all services to the given repositories and application
// configuration.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		UserService: NewUserService(repositories.UserRepository, logger),
	}
}
