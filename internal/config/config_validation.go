// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Machado

package config

import "time"

// Fallbacks applied to optional settings that were not provided by any
// configuration source.
const (
	defaultHTTPAddress    = "localhost:3000"
	defaultTokenIssuer    = "go-auth-api"
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in optional settings left empty by every source.
// Required settings (sign key, DSN) are deliberately not defaulted; their
// absence is a startup error caught by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
