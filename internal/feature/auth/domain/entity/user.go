// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered user in the system.
// The JSON tags define both the on-disk layout inside the document store
// snapshot and the seed file format.
type User struct {
	// ID is the opaque unique identifier for the user, assigned at
	// creation and immutable afterwards.
	ID string `json:"id"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is matched case-sensitively.
	Email string `json:"email"`

	// Username is the display name. It is not guaranteed unique.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored, and the hash is never
	// included in an HTTP response.
	PasswordHash string `json:"passwordHash"`
}
