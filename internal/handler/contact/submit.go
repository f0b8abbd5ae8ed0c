// File: internal/handler/contact/submit.go
package contact

import (
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/handler"
	"upperskills/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubmitHandler 送出聯絡表單
// @Summary     送出聯絡表單
// @Description 儲存訊息並寄送通知信；寄信失敗不影響回應。帶有效 token 時會關聯至該使用者
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       body body     api.ContactRequest true "聯絡內容"
// @Success     201  {object} api.SubmitContactResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /contact [post]
func SubmitHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return handler.ErrInvalidBody
		}

		var submitter *uuid.UUID
		if claims, ok := middleware.ClaimsFrom(c); ok {
			id := claims.UserID
			submitter = &id
		}

		contact, err := svc.Submit(c.Request().Context(), req, submitter)
		if err != nil {
			return handler.Fail(err, "Failed to submit contact form")
		}
		return c.JSON(http.StatusCreated, api.SubmitContactResponse{
			Message: "Contact form submitted successfully",
			Contact: api.ContactSummary{
				ID:        contact.ID,
				Name:      contact.Name,
				Email:     contact.Email,
				CreatedAt: contact.CreatedAt,
			},
		})
	}
}
