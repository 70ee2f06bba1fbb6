package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source. Tokens cannot be issued or
	// verified without it.
	ErrMissingTokenSignKey = errors.New("missing token sign key")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("missing database DSN")
)
