// File: internal/api/message_response.go
package api

import "upperskills/internal/apperr"

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email or password"`
}

// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []apperr.FieldError `json:"errors"`
}

// swagger:model api.HealthResponse
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
	Cache    string `json:"cache,omitempty" example:"ok"`
}
