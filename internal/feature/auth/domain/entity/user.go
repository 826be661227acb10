// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered user in the system.
// It contains authentication credentials, profile data and the
// pending password-reset state.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// Name is an optional display name.
	Name string `gorm:"size:255"`

	// Role is the user's access level. Defaults to RoleUser.
	Role string `gorm:"size:32;not null;default:user"`

	// ResetToken is the pending password-reset token.
	// It is nil unless a reset has been requested and not yet consumed.
	// ResetToken and ResetTokenExpiry are always both nil or both set.
	ResetToken *string `gorm:"size:128;index"`

	// ResetTokenExpiry is the expiry time of ResetToken.
	ResetTokenExpiry *time.Time

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// HasPendingReset returns true if a reset token is stored for the user.
func (u *User) HasPendingReset() bool {
	return u.ResetToken != nil && u.ResetTokenExpiry != nil
}
