package dto

// UserRes is the public projection of a user.
// The password hash never appears in any response.
type UserRes struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// RegisterRes is the response for a successful registration.
type RegisterRes struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// LoginRes is the response for a successful login.
type LoginRes struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserRes `json:"user"`
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
