package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/middleware"
	"upperskills/internal/model"
	"upperskills/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newStatusCtx(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONCtx(e, http.MethodPut, "/api/contact/"+id+"/status", body)
	c.SetPath("/api/contact/:id/status")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func requireHTTPError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
	require.Equal(t, msg, he.Message)
}

func sampleContact() *model.Contact {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &model.Contact{
		ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Message: "Hello there, team",
		Status: model.ContactPending, CreatedAt: now, UpdatedAt: now,
	}
}

func TestSubmitHandler(t *testing.T) {
	e := echo.New()
	c := sampleContact()

	ctx, _ := newJSONCtx(e, http.MethodPost, "/api/contact", "{")
	requireHTTPError(t, SubmitHandler(&FakeService{})(ctx), http.StatusBadRequest, "Invalid request body")

	var gotReq api.ContactRequest
	var gotSubmitter *uuid.UUID
	svc := &FakeService{SubmitFn: func(ctx context.Context, req api.ContactRequest, submitter *uuid.UUID) (*model.Contact, error) {
		gotReq, gotSubmitter = req, submitter
		return c, nil
	}}

	// anonymous
	ctx, rec := newJSONCtx(e, http.MethodPost, "/api/contact", `{"name":"Ada","email":"ada@example.com","message":"Hello there, team"}`)
	require.NoError(t, SubmitHandler(svc)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Hello there, team", gotReq.Message)
	require.Nil(t, gotSubmitter)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Contact form submitted successfully", body["message"])
	contact := body["contact"].(map[string]any)
	require.Equal(t, c.ID.String(), contact["id"])
	require.Equal(t, "2025-03-01T10:00:00Z", contact["createdAt"])
	require.NotContains(t, contact, "message")

	// with a user attached by OptionalAuth
	uid := uuid.New()
	ctx, _ = newJSONCtx(e, http.MethodPost, "/api/contact", `{}`)
	ctx.Set(middleware.ContextUserKey, &service.Claims{UserID: uid, Role: model.RoleUser})
	require.NoError(t, SubmitHandler(svc)(ctx))
	require.NotNil(t, gotSubmitter)
	require.Equal(t, uid, *gotSubmitter)

	svc.SubmitFn = func(context.Context, api.ContactRequest, *uuid.UUID) (*model.Contact, error) {
		return nil, &apperr.ValidationError{Fields: []apperr.FieldError{{Field: "name", Message: "Name is required"}}}
	}
	ctx, _ = newJSONCtx(e, http.MethodPost, "/api/contact", `{}`)
	var ve *apperr.ValidationError
	require.ErrorAs(t, SubmitHandler(svc)(ctx), &ve)

	svc.SubmitFn = func(context.Context, api.ContactRequest, *uuid.UUID) (*model.Contact, error) { return nil, errors.New("db") }
	ctx, _ = newJSONCtx(e, http.MethodPost, "/api/contact", `{}`)
	requireHTTPError(t, SubmitHandler(svc)(ctx), http.StatusInternalServerError, "Failed to submit contact form")
}

func TestListHandler(t *testing.T) {
	e := echo.New()
	c := sampleContact()
	uid := uuid.New()
	c.UserID = &uid
	c.User = &model.ContactUser{ID: uid, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	var gotQ api.ListContactsQuery
	svc := &FakeService{ListFn: func(ctx context.Context, q api.ListContactsQuery) ([]model.Contact, api.Pagination, error) {
		gotQ = q
		return []model.Contact{*c}, api.NewPagination(2, 10, 15), nil
	}}

	ctx, rec := newJSONCtx(e, http.MethodGet, "/api/contact?page=2&limit=10&status=PENDING", "")
	require.NoError(t, ListHandler(svc)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, api.ListContactsQuery{Page: 2, Limit: 10, Status: "PENDING"}, gotQ)

	var body struct {
		Contacts   []map[string]any `json:"contacts"`
		Pagination api.Pagination   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, api.Pagination{Page: 2, Limit: 10, Total: 15, Pages: 2}, body.Pagination)
	require.Len(t, body.Contacts, 1)
	user := body.Contacts[0]["user"].(map[string]any)
	require.Equal(t, "Lovelace", user["lastName"])

	// no query → zero values, service applies defaults
	ctx, _ = newJSONCtx(e, http.MethodGet, "/api/contact", "")
	require.NoError(t, ListHandler(svc)(ctx))
	require.Equal(t, api.ListContactsQuery{}, gotQ)

	// non-integer paging
	ctx, _ = newJSONCtx(e, http.MethodGet, "/api/contact?page=abc&limit=x", "")
	var ve *apperr.ValidationError
	require.ErrorAs(t, ListHandler(svc)(ctx), &ve)
	require.Len(t, ve.Fields, 2)
	require.Equal(t, "page", ve.Fields[0].Field)

	svc.ListFn = func(context.Context, api.ListContactsQuery) ([]model.Contact, api.Pagination, error) {
		return nil, api.Pagination{}, errors.New("db")
	}
	ctx, _ = newJSONCtx(e, http.MethodGet, "/api/contact", "")
	requireHTTPError(t, ListHandler(svc)(ctx), http.StatusInternalServerError, "Failed to get contacts")
}

func TestUpdateStatusHandler(t *testing.T) {
	e := echo.New()
	c := sampleContact()

	ctx, _ := newStatusCtx(e, c.ID.String(), "{")
	requireHTTPError(t, UpdateStatusHandler(&FakeService{})(ctx), http.StatusBadRequest, "Invalid request body")

	var gotID, gotStatus string
	svc := &FakeService{UpdateStatusFn: func(ctx context.Context, id, status string) (*model.Contact, error) {
		gotID, gotStatus = id, status
		updated := *c
		updated.Status = model.ContactStatus(status)
		return &updated, nil
	}}
	ctx, rec := newStatusCtx(e, c.ID.String(), `{"status":"RESPONDED"}`)
	require.NoError(t, UpdateStatusHandler(svc)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, c.ID.String(), gotID)
	require.Equal(t, "RESPONDED", gotStatus)
	require.Contains(t, rec.Body.String(), `"message":"Contact status updated successfully"`)
	require.Contains(t, rec.Body.String(), `"status":"RESPONDED"`)

	svc.UpdateStatusFn = func(context.Context, string, string) (*model.Contact, error) {
		return nil, apperr.NotFound("Contact not found")
	}
	ctx, _ = newStatusCtx(e, uuid.NewString(), `{"status":"CLOSED"}`)
	require.ErrorIs(t, UpdateStatusHandler(svc)(ctx), apperr.ErrNotFound)

	svc.UpdateStatusFn = func(context.Context, string, string) (*model.Contact, error) { return nil, errors.New("db") }
	ctx, _ = newStatusCtx(e, c.ID.String(), `{"status":"CLOSED"}`)
	requireHTTPError(t, UpdateStatusHandler(svc)(ctx), http.StatusInternalServerError, "Failed to update contact status")
}
