// File: internal/api/signup_request.go
package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email" msg:"Valid email is required" example:"ada@example.com"`
	Password  string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters" example:"secret1"`
	FirstName string `json:"firstName" validate:"required" msg:"First name is required" example:"Ada"`
	LastName  string `json:"lastName" validate:"required" msg:"Last name is required" example:"Lovelace"`
}
