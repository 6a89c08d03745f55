package models

import "time"

// Role values accepted for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique, lower-cased e-mail address used to log in.
	Email string `json:"email"`

	// Username is the unique public name of the user (3–30 alphanumerics).
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either "user" or "admin".
	Role string `json:"role"`

	// IsVerified reports whether the account's e-mail was confirmed.
	IsVerified bool `json:"isVerified"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicInfo returns the subset of account fields that is safe to place in a
// response body.
func (u User) PublicInfo() map[string]any {
	return map[string]any{
		"id":         u.UserID,
		"email":      u.Email,
		"username":   u.Username,
		"role":       u.Role,
		"isVerified": u.IsVerified,
	}
}

// TableName returns the name of the database table associated with the User model.
func (u User) TableName() string {
	return "users"
}
