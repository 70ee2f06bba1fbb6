package models

// RegisterRequest is the JSON body accepted by POST /auth/register.
type RegisterRequest struct {
	// Name is the display name of the new account. Required.
	Name string `json:"name"`

	// Email is the unique account identifier. Required.
	Email string `json:"email"`

	// Password is the plain-text password. Required; it is hashed
	// before the record ever reaches the store.
	Password string `json:"password"`

	// ConfirmPassword must match Password exactly.
	ConfirmPassword string `json:"confirmpassword"`
}

// LoginRequest is the JSON body accepted by POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the generic response envelope. Every client-facing
// outcome, success or failure, carries a human-readable msg field and
// nothing else; internal diagnostics stay in the server logs.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UserResponse wraps a user record for the profile endpoint.
type UserResponse struct {
	User User `json:"user"`
}
