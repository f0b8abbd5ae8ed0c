// File: internal/handler/contact/list.go
package contact

import (
	"errors"
	"net/http"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListHandler 管理員分頁查詢聯絡訊息
// @Summary     列出聯絡訊息
// @Description 依建立時間新到舊排序，可依狀態篩選 (僅限 ADMIN)
// @Tags        contact
// @Produce     json
// @Param       page   query    int    false "頁碼 (預設 1，最多 100000)"
// @Param       limit  query    int    false "每頁筆數 (預設 10，最多 100)"
// @Param       status query    string false "狀態" Enums(PENDING, REVIEWED, RESPONDED, CLOSED)
// @Success     200    {object} api.ContactListResponse
// @Failure     400    {object} api.ValidationErrorResponse
// @Failure     401    {object} api.ErrorResponse
// @Failure     403    {object} api.ErrorResponse
// @Failure     500    {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /contact [get]
func ListHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.ListContactsQuery
		if err := bindListQuery(c, &q); err != nil {
			return err
		}

		contacts, page, err := svc.List(c.Request().Context(), q)
		if err != nil {
			return handler.Fail(err, "Failed to get contacts")
		}
		return c.JSON(http.StatusOK, api.ContactListResponse{Contacts: contacts, Pagination: page})
	}
}

// bindListQuery 非整數的 page/limit 轉為欄位驗證錯誤
func bindListQuery(c echo.Context, q *api.ListContactsQuery) error {
	errs := echo.QueryParamsBinder(c).
		FailFast(false).
		Int("page", &q.Page).
		Int("limit", &q.Limit).
		String("status", &q.Status).
		BindErrors()
	if len(errs) == 0 {
		return nil
	}

	ve := &apperr.ValidationError{}
	for _, err := range errs {
		var be *echo.BindingError
		if errors.As(err, &be) && len(be.Field) > 0 {
			ve.Fields = append(ve.Fields, apperr.FieldError{Field: be.Field, Message: be.Field + " must be an integer"})
			continue
		}
		return handler.ErrInvalidBody
	}
	return ve
}
