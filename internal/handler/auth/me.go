// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"
	"upperskills/internal/middleware"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MeResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/me [get]
func MeHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
		}

		user, err := svc.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return handler.Fail(err, "Failed to get user data")
		}
		return c.JSON(http.StatusOK, api.MeResponse{User: api.NewUserResponse(user)})
	}
}
