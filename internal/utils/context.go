// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, password hashing,
// HTTP response writing, JWT token generation and validation, and UUID
// generation.
package utils

import "context"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's
// identifier in the request context. Set by the auth middleware after a
// successful token verification.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  when a value is present and has the expected type
//   - ok == false when the value is missing or of an unexpected type
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
