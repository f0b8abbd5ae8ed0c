// File: internal/handler/respond.go
package handler

import (
	"errors"
	"net/http"

	"upperskills/internal/apperr"

	"github.com/labstack/echo/v4"
)

// Fail 將非預期錯誤換成對外的通用訊息，原始錯誤保留在 Internal 供記錄
func Fail(err error, generic string) error {
	var he *echo.HTTPError
	if errors.As(err, &he) || apperr.Status(err) != http.StatusInternalServerError {
		return err
	}
	return echo.NewHTTPError(http.StatusInternalServerError, generic).SetInternal(err)
}

// ErrInvalidBody 請求內容無法解析
var ErrInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
