// Package usecase implements the business logic for the todos feature.
package usecase

import "errors"

var (
	// ErrTodoNotFound is returned when no todo matches the given id and owner.
	// A todo owned by another user yields the same error as a missing one so
	// that the response never reveals whether the record exists.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyTitle is returned when a todo is created or updated with an
	// empty or blank title.
	ErrEmptyTitle = errors.New("title is required")
)
