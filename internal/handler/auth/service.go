// File: internal/handler/auth/service.go
package auth

import (
	"context"

	"upperskills/internal/api"
	"upperskills/internal/model"
	"upperskills/internal/service"

	"github.com/google/uuid"
)

// Service 認證相關操作，由 service.AuthService 實作
type Service interface {
	Signup(ctx context.Context, req api.SignupRequest) (*model.User, string, error)
	Login(ctx context.Context, req api.LoginRequest) (*model.User, string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	Logout(ctx context.Context, claims *service.Claims) error
}

// FakeService 以函式欄位模擬 Service，未設定時 panic
type FakeService struct {
	SignupFn      func(ctx context.Context, req api.SignupRequest) (*model.User, string, error)
	LoginFn       func(ctx context.Context, req api.LoginRequest) (*model.User, string, error)
	CurrentUserFn func(ctx context.Context, userID uuid.UUID) (*model.User, error)
	LogoutFn      func(ctx context.Context, claims *service.Claims) error
}

func (f *FakeService) Signup(ctx context.Context, req api.SignupRequest) (*model.User, string, error) {
	if f.SignupFn != nil {
		return f.SignupFn(ctx, req)
	}
	panic("unexpected Signup")
}

func (f *FakeService) Login(ctx context.Context, req api.LoginRequest) (*model.User, string, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, req)
	}
	panic("unexpected Login")
}

func (f *FakeService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if f.CurrentUserFn != nil {
		return f.CurrentUserFn(ctx, userID)
	}
	panic("unexpected CurrentUser")
}

func (f *FakeService) Logout(ctx context.Context, claims *service.Claims) error {
	if f.LogoutFn != nil {
		return f.LogoutFn(ctx, claims)
	}
	panic("unexpected Logout")
}
