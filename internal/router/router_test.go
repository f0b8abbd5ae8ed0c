package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/cache"
	"upperskills/internal/database"
	"upperskills/internal/handler/auth"
	"upperskills/internal/handler/contact"
	"upperskills/internal/logging"
	"upperskills/internal/middleware"
	"upperskills/internal/model"
	"upperskills/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeAuth 以固定 token 對應 claims
type fakeAuth struct {
	auth.FakeService
	tokens map[string]*service.Claims
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*service.Claims, error) {
	if cl, ok := f.tokens[token]; ok {
		return cl, nil
	}
	return nil, apperr.ErrUnauthenticated
}

type testEnv struct {
	e        *echo.Echo
	auth     *fakeAuth
	contacts *contact.FakeService
	counts   map[string]int64
}

func newTestEnv(maxRequests int) *testEnv {
	env := &testEnv{
		e: echo.New(),
		auth: &fakeAuth{tokens: map[string]*service.Claims{
			"user-token":  {UserID: uuid.New(), Role: model.RoleUser},
			"admin-token": {UserID: uuid.New(), Role: model.RoleAdmin},
		}},
		contacts: &contact.FakeService{},
		counts:   map[string]int64{},
	}
	cch := &cache.FakeCache{
		IncrFn: func(ctx context.Context, key string) *redis.IntCmd {
			env.counts[key]++
			return redis.NewIntResult(env.counts[key], nil)
		},
		ExpireFn: func(context.Context, string, time.Duration) *redis.BoolCmd { return redis.NewBoolResult(true, nil) },
	}
	env.e.HTTPErrorHandler = ErrorHandler(logging.Nop())
	Setup(env.e, Deps{
		DB:        &database.FakeDB{PingFn: func(context.Context) error { return nil }},
		Cache:     cch,
		Auth:      env.auth,
		Contacts:  env.contacts,
		RateLimit: middleware.RateLimitConfig{Max: maxRequests, Window: time.Minute},
		Log:       logging.Nop(),
	})
	return env
}

func (env *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestSetupRoutes(t *testing.T) {
	env := newTestEnv(10)

	got := map[string]struct{}{}
	for _, r := range env.e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/signup",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/me",
		http.MethodPost + " /api/auth/logout",
		http.MethodPost + " /api/contact",
		http.MethodGet + " /api/contact",
		http.MethodPut + " /api/contact/:id/status",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestContactListAuthorization(t *testing.T) {
	env := newTestEnv(10)
	env.contacts.ListFn = func(context.Context, api.ListContactsQuery) ([]model.Contact, api.Pagination, error) {
		return []model.Contact{}, api.NewPagination(1, 10, 0), nil
	}

	rec := env.do(http.MethodGet, "/api/contact", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Access token required"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/contact", "forged", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodGet, "/api/contact", "user-token", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"Insufficient permissions"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/contact", "admin-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"contacts":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`, rec.Body.String())

	rec = env.do(http.MethodPut, "/api/contact/"+uuid.NewString()+"/status", "user-token", `{"status":"CLOSED"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestErrorRendering(t *testing.T) {
	env := newTestEnv(10)
	env.auth.LoginFn = func(ctx context.Context, req api.LoginRequest) (*model.User, string, error) {
		if req.Email == "" {
			return nil, "", &apperr.ValidationError{Fields: []apperr.FieldError{
				{Field: "email", Message: "Valid email is required"},
				{Field: "password", Message: "Password is required"},
			}}
		}
		return nil, "", apperr.ErrInvalidCredentials
	}
	env.contacts.UpdateStatusFn = func(context.Context, string, string) (*model.Contact, error) {
		return nil, apperr.NotFound("Contact not found")
	}
	env.contacts.SubmitFn = func(context.Context, api.ContactRequest, *uuid.UUID) (*model.Contact, error) {
		return nil, context.DeadlineExceeded
	}

	rec := env.do(http.MethodPost, "/api/auth/login", "", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":[{"field":"email","message":"Valid email is required"},{"field":"password","message":"Password is required"}]}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/auth/login", "", `{"email":"a@b.com","password":"y"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = env.do(http.MethodPut, "/api/contact/"+uuid.NewString()+"/status", "admin-token", `{"status":"CLOSED"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Contact not found"}`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/contact", "", `{"name":"A","email":"a@b.com","message":"0123456789"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to submit contact form"}`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/nope", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestOptionalAuthOnSubmit(t *testing.T) {
	env := newTestEnv(10)
	var submitter *uuid.UUID
	env.contacts.SubmitFn = func(ctx context.Context, req api.ContactRequest, by *uuid.UUID) (*model.Contact, error) {
		submitter = by
		return &model.Contact{ID: uuid.New(), Name: req.Name, Email: req.Email, CreatedAt: time.Now()}, nil
	}
	body := `{"name":"A","email":"a@b.com","message":"0123456789"}`

	rec := env.do(http.MethodPost, "/api/contact", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Nil(t, submitter)

	rec = env.do(http.MethodPost, "/api/contact", "user-token", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, submitter)
	require.Equal(t, env.auth.tokens["user-token"].UserID, *submitter)

	// 無效 token 視為匿名
	rec = env.do(http.MethodPost, "/api/contact", "forged", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Nil(t, submitter)
}

func TestRateLimitedSignup(t *testing.T) {
	env := newTestEnv(1)
	env.auth.SignupFn = func(context.Context, api.SignupRequest) (*model.User, string, error) {
		return &model.User{ID: uuid.New(), Email: "a@b.com", Role: model.RoleUser, IsActive: true}, "tok", nil
	}
	body := `{"email":"a@b.com","password":"secret1","firstName":"A","lastName":"B"}`

	rec := env.do(http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Too many requests, please try again later", resp.Error)
}

func TestErrorHandlerCommitted(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.String(http.StatusOK, "done"))
	ErrorHandler(logging.Nop())(apperr.ErrForbidden, c)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "done", rec.Body.String())

	req = httptest.NewRequest(http.MethodHead, "/", nil)
	rec = httptest.NewRecorder()
	ErrorHandler(logging.Nop())(apperr.ErrForbidden, e.NewContext(req, rec))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Empty(t, rec.Body.String())
}
