// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Todo represents a single task owned by a user.
// All access is scoped by UserID; a todo is never visible to another user.
type Todo struct {
	// ID is the unique identifier for the todo.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the owning user. Immutable after creation.
	UserID uint `gorm:"index;not null" json:"userId"`

	// Title is the short task label. Required, non-empty.
	Title string `gorm:"size:255;not null" json:"title"`

	// Description is optional free text.
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Completed marks the task as done. Defaults to false.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
