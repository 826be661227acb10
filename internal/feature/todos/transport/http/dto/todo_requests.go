// Package dto defines data transfer objects for the todos feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for POST /todos.
type CreateTodoReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateTodoReq represents the request body for PUT /todos/:id.
// All fields are optional; nil fields are left unchanged (partial update).
type UpdateTodoReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
