package dto

// ForgotPasswordReq represents the request body for /auth/forgot-password.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordReq represents the request body for /auth/reset-password.
// NewPassword must satisfy the same length rule as registration.
type ResetPasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
