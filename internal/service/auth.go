// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/logging"
	"upperskills/internal/model"
	"upperskills/internal/store"
	"upperskills/internal/validate"

	"github.com/google/uuid"
)

// UserStore 使用者資料存取，由 store.Store 實作
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
}

// AuthService 處理註冊、登入、目前使用者與登出
type AuthService struct {
	users    UserStore
	tokens   *TokenIssuer
	revoker  *Revoker
	validate *validate.Validator
	log      logging.Logger
}

// NewAuthService revoker 為 nil 時登出只回應確認，不撤銷 token
func NewAuthService(users UserStore, tokens *TokenIssuer, revoker *Revoker, v *validate.Validator, log logging.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoker: revoker, validate: v, log: log}
}

// NormalizeEmail 去除前後空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, req api.SignupRequest) (*model.User, string, error) {
	req.Email = NormalizeEmail(req.Email)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validate.Validate(req); err != nil {
		return nil, "", err
	}

	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, "", apperr.ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("Signup: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("Signup: %w", err)
	}

	u := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		// 同時註冊時由唯一索引擋下
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, "", apperr.ErrConflict
		}
		return nil, "", fmt.Errorf("Signup: %w", err)
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", fmt.Errorf("Signup: %w", err)
	}
	s.log.Info(ctx, "user signed up", "user_id", u.ID)
	return u, token, nil
}

// Login 檢查順序：查詢 → 比對密碼 → 帳號啟用狀態
func (s *AuthService) Login(ctx context.Context, req api.LoginRequest) (*model.User, string, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := s.validate.Validate(req); err != nil {
		return nil, "", err
	}

	u, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			compareDummy(req.Password)
			return nil, "", apperr.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("Login: %w", err)
	}
	if err := ComparePassword(u.PasswordHash, req.Password); err != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, "", apperr.ErrAccountDeactivated
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", fmt.Errorf("Login: %w", err)
	}
	return u, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("CurrentUser: %w", err)
	}
	return u, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if s.revoker == nil || claims == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}
	return nil
}

// Authenticate 驗證 bearer token，啟用黑名單時一併檢查是否已登出
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperr.ErrUnauthenticated
	}
	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("Authenticate: %w", err)
		}
		if revoked {
			return nil, apperr.ErrUnauthenticated
		}
	}
	return claims, nil
}

// EnsureAdmin 若 email 尚未註冊則建立 ADMIN 帳號，已存在則不變更
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = NormalizeEmail(email)
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}
	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "UpperSkills",
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.CreateUser(ctx, u); err != nil && !errors.Is(err, store.ErrDuplicateEmail) {
		return fmt.Errorf("EnsureAdmin: %w", err)
	}
	s.log.Info(ctx, "admin account ensured", "email", email)
	return nil
}
