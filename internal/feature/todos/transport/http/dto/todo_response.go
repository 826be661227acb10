package dto

import (
	"time"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoItem is the JSON projection of a todo record.
type TodoItem struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTodoItem converts a domain todo into its response projection.
// The owner id is implied by the authenticated caller and not echoed back.
func NewTodoItem(t *entity.Todo) TodoItem {
	return TodoItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TodoRes is the success envelope for todo mutations.
type TodoRes struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Todo    TodoItem `json:"todo"`
}

// MessageRes is a generic success envelope.
type MessageRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorRes is the error envelope returned on any failure.
type ErrorRes struct {
	Error string `json:"error"`
}
