// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"
	"upperskills/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出
// @Summary     登出
// @Description 預設僅回應確認；伺服器啟用 TOKEN_REVOCATION 時會撤銷目前 token
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /auth/logout [post]
func LogoutHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Access token required")
		}
		if err := svc.Logout(c.Request().Context(), claims); err != nil {
			return handler.Fail(err, "Failed to logout")
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Logout successful"})
	}
}
