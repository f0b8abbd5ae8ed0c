// File: internal/handler/contact/update_status.go
package contact

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"

	"github.com/labstack/echo/v4"
)

// UpdateStatusHandler 更新聯絡訊息狀態
// @Summary     更新聯絡訊息狀態
// @Description 狀態可任意轉換 (僅限 ADMIN)；id 不存在回傳 404
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       id   path     string                         true "聯絡訊息 ID"
// @Param       body body     api.UpdateContactStatusRequest true "新狀態"
// @Success     200  {object} api.ContactResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contact/{id}/status [put]
func UpdateStatusHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateContactStatusRequest
		if err := c.Bind(&req); err != nil {
			return handler.ErrInvalidBody
		}

		contact, err := svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
		if err != nil {
			return handler.Fail(err, "Failed to update contact status")
		}
		return c.JSON(http.StatusOK, api.ContactResponse{
			Message: "Contact status updated successfully",
			Contact: *contact,
		})
	}
}
