// File: internal/api/auth_response.go
package api

import (
	"time"

	"upperskills/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        uuid.UUID  `json:"id" example:"0b7e6c1e-7f43-4a8e-9f51-6d0d2f0e7c11"`
	Email     string     `json:"email" example:"ada@example.com"`
	FirstName string     `json:"firstName" example:"Ada"`
	LastName  string     `json:"lastName" example:"Lovelace"`
	Role      model.Role `json:"role" example:"USER"`
	IsActive  bool       `json:"isActive" example:"true"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewUserResponse 轉換為不含密碼的回應格式
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// swagger:model api.AuthResponse
type AuthResponse struct {
	Message string       `json:"message" example:"Login successful"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// swagger:model api.MeResponse
type MeResponse struct {
	User UserResponse `json:"user"`
}
