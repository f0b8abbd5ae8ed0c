// File: internal/api/login_request.go
package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Valid email is required" example:"ada@example.com"`
	Password string `json:"password" validate:"required" msg:"Password is required" example:"secret1"`
}
