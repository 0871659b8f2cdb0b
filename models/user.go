package models

import "time"

// User represents an account entity used for authentication and as the unit
// of ownership for categories and credentials. Sensitive fields must never
// be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID).
	UserID string `json:"user_id"`

	// Email is the unique sign-in identifier of the account.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive.
	Name string `json:"name"`

	// PasswordHash is the one-way bcrypt hash of the login password.
	// Never serialized; used only for credential verification.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInput carries the client-supplied registration or login payload.
// Password is plain text in transit only; it is hashed before storage and
// never logged.
type UserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}
