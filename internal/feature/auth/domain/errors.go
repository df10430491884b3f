// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// It deliberately does not distinguish an unknown email from a wrong
	// password, to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates that a user with the given email already exists.
	// This is returned during registration.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")
)
