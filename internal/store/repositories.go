package store

import (
	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/utils"
)

// Repositories bundles every data-access component built on top of a single
// database handle.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires all repositories to the given database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, utils.NewUUIDGenerator(), logger),
	}
}
