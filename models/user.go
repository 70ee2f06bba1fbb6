package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user, assigned by the
	// store at creation time.
	ID string `json:"id"`

	// Name is the display name of the user. Required at registration.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	// Uniqueness is enforced by the database.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to JSON and is read back from the store
	// only on the login path.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
