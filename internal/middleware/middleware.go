// File: internal/middleware/middleware.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"upperskills/internal/apperr"
	"upperskills/internal/model"
	"upperskills/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// Authenticator 驗證 bearer token，由 service.AuthService 實作
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Claims, error)
}

var (
	errMissingToken = echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
	errInvalidToken = echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	errForbidden    = echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
)

// bearerToken 回傳 Authorization header 中的 token，沒有 header 時回傳空字串
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", errMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

func extractClaims(c echo.Context, auth Authenticator) (*service.Claims, error) {
	token, err := bearerToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := auth.Authenticate(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthenticated) {
			return nil, errInvalidToken
		}
		return nil, err
	}
	return claims, nil
}

// ClaimsFrom 取出 RequireAuth/OptionalAuth 放入的 claims
func ClaimsFrom(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(ContextUserKey).(*service.Claims)
	return claims, ok && claims != nil
}

// RequireAuth 缺少或無效的 token 直接回 401
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, auth)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// RequireRole 需放在 RequireAuth 之後
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return errMissingToken
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return errForbidden
		}
	}
}

// OptionalAuth 有有效 token 時放入 claims，否則當作匿名請求
func OptionalAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err == nil {
				if claims, err := auth.Authenticate(c.Request().Context(), token); err == nil {
					c.Set(ContextUserKey, claims)
				}
			}
			return next(c)
		}
	}
}
