// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login fails.
	// The same error covers an unknown email and a wrong password so that
	// the response never reveals which part was incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a required input field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidResetToken is returned when a password reset is attempted
	// with no pending reset or a token that does not match the stored one.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")

	// ErrResetTokenExpired is returned when a reset token is past its expiry.
	ErrResetTokenExpired = errors.New("reset token has expired")
)
