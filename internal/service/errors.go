// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rodrigo Machado

package service

import "errors"

// Sentinel errors returned by the service layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDataProvided is returned when a required field reaching the
	// service layer is empty. Handlers validate first; this is the guard
	// for non-HTTP callers.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not
	// match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	// This is a server fault (key misconfiguration), never a client error.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsInvalid is the normalised error for every token
	// verification failure: absent signature, tampering, wrong issuer, or
	// a malformed token string.
	ErrTokenIsInvalid = errors.New("token is invalid")
)
