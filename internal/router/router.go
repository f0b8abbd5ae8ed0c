// File: internal/router/router.go
package router

import (
	"upperskills/internal/cache"
	"upperskills/internal/database"
	"upperskills/internal/handler"
	"upperskills/internal/handler/auth"
	"upperskills/internal/handler/contact"
	"upperskills/internal/logging"
	"upperskills/internal/middleware"
	"upperskills/internal/model"

	"github.com/labstack/echo/v4"
)

// AuthService 同時提供認證操作與 token 驗證
type AuthService interface {
	auth.Service
	middleware.Authenticator
}

// Deps 路由需要的所有相依元件
type Deps struct {
	DB        database.DB
	Cache     cache.Cache
	Auth      AuthService
	Contacts  contact.Service
	RateLimit middleware.RateLimitConfig
	Log       logging.Logger
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/health", handler.HealthHandler(d.DB, d.Cache))

	requireAuth := middleware.RequireAuth(d.Auth)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)
	limit := func(name string) echo.MiddlewareFunc {
		cfg := d.RateLimit
		cfg.Name = name
		return middleware.RateLimit(d.Cache, cfg, d.Log)
	}

	// 註冊、登入、目前使用者、登出
	apiAuth := api.Group("/auth")
	apiAuth.POST("/signup", auth.SignupHandler(d.Auth), limit("auth"))
	apiAuth.POST("/login", auth.LoginHandler(d.Auth), limit("auth"))
	apiAuth.GET("/me", auth.MeHandler(d.Auth), requireAuth)
	apiAuth.POST("/logout", auth.LogoutHandler(d.Auth), requireAuth)

	// 聯絡表單：送出公開，列表與狀態更新限管理員
	apiContact := api.Group("/contact")
	apiContact.POST("", contact.SubmitHandler(d.Contacts), limit("contact"), middleware.OptionalAuth(d.Auth))
	apiContact.GET("", contact.ListHandler(d.Contacts), requireAuth, requireAdmin)
	apiContact.PUT("/:id/status", contact.UpdateStatusHandler(d.Contacts), requireAuth, requireAdmin)
}
