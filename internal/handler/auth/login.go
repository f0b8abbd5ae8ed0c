// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description email 不存在與密碼錯誤回傳相同訊息；帳號停用時回傳 401 "Account is deactivated"
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.ErrInvalidBody
		}

		user, token, err := svc.Login(c.Request().Context(), req)
		if err != nil {
			return handler.Fail(err, "Failed to login")
		}
		return c.JSON(http.StatusOK, api.AuthResponse{
			Message: "Login successful",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}
