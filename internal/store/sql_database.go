package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rmachado/go-auth-api/internal/config"
	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/migrations"
)

// DB wraps the standard library connection pool with the backend-specific
// error classifier and the goose dialect used for schema migrations.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	logger             *logger.Logger
}

// Open connects to the user record store described by cfg. The backend is
// selected from the DSN: a "postgres://" or "postgresql://" scheme opens a
// PostgreSQL connection via the pgx stdlib driver, anything else is treated
// as a SQLite file path.
func Open(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all pending schema migrations using the dialect of the
// connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Classificator exposes the backend-specific error classifier so that
// repositories built on this handle can interpret driver errors.
func (db *DB) Classificator() ErrorClassificator {
	return db.errorClassificator
}

func pingDatabase(ctx context.Context, conn *sql.DB, funcName string, log *logger.Logger) error {
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", funcName).Msg("error connecting database (ping)")
		return fmt.Errorf("error connecting database (ping): %w", err)
	}

	log.Info().Str("func", funcName).Msg("connected to database successfully")
	return nil
}
