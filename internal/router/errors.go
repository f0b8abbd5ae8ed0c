// File: internal/router/errors.go
package router

import (
	"errors"
	"fmt"
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/logging"

	"github.com/labstack/echo/v4"
)

// ErrorHandler 統一錯誤輸出：驗證錯誤為 {"errors":[...]}，其餘為 {"error":"..."}
// 500 類錯誤只記錄細節，不回傳給呼叫端
func ErrorHandler(log logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		ctx := c.Request().Context()

		var (
			status int
			body   any
			ve     *apperr.ValidationError
			he     *echo.HTTPError
		)
		switch {
		case errors.As(err, &ve):
			status, body = http.StatusBadRequest, api.ValidationErrorResponse{Errors: ve.Fields}
		case errors.As(err, &he):
			status = he.Code
			msg := fmt.Sprint(he.Message)
			if status >= http.StatusInternalServerError {
				log.Error(ctx, "request failed", "method", c.Request().Method, "path", c.Path(), "error", he.Internal)
			}
			body = api.ErrorResponse{Error: msg}
		default:
			status = apperr.Status(err)
			if status == http.StatusInternalServerError {
				log.Error(ctx, "request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
				body = api.ErrorResponse{Error: http.StatusText(status)}
			} else {
				body = api.ErrorResponse{Error: err.Error()}
			}
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			log.Error(ctx, "write error response failed", "error", werr)
		}
	}
}
