// File: internal/handler/auth/signup.go
package auth

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"

	"github.com/labstack/echo/v4"
)

// SignupHandler 註冊新使用者
// @Summary     註冊
// @Description 建立一般使用者帳號並回傳 7 天有效的 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.SignupRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/signup [post]
func SignupHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return handler.ErrInvalidBody
		}

		user, token, err := svc.Signup(c.Request().Context(), req)
		if err != nil {
			return handler.Fail(err, "Failed to create user")
		}
		return c.JSON(http.StatusCreated, api.AuthResponse{
			Message: "User created successfully",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}
