// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"upperskills/internal/api"
	"upperskills/internal/cache"
	"upperskills/internal/database"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     503 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		resp := api.HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}
		if err := db.Ping(ctx); err != nil {
			resp.Status, resp.Database = "unavailable", "database unhealthy"
		}
		if err := cch.Ping(ctx).Err(); err != nil {
			resp.Status, resp.Cache = "unavailable", "cache unhealthy"
		}
		if resp.Status != "ok" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
