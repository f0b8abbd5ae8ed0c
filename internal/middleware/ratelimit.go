// File: internal/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"upperskills/internal/cache"
	"upperskills/internal/logging"

	"github.com/labstack/echo/v4"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimitConfig 固定時間窗限流設定，Max <= 0 表示停用
type RateLimitConfig struct {
	// Name 區分不同路由群組的計數
	Name   string
	Max    int
	Window time.Duration
}

// RateLimit 以 Redis INCR 計數，Redis 失敗時放行
func RateLimit(store cache.Cache, cfg RateLimitConfig, log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if cfg.Max <= 0 || cfg.Window <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := rateLimitKeyPrefix + cfg.Name + ":" + c.RealIP()

			count, err := store.Incr(ctx, key).Result()
			if err != nil {
				log.Warn(ctx, "rate limiter unavailable", "error", err)
				return next(c)
			}
			if count == 1 {
				if err := store.Expire(ctx, key, cfg.Window).Err(); err != nil {
					log.Warn(ctx, "rate limiter expire failed", "key", key, "error", err)
				}
			}

			remaining := int64(cfg.Max) - count
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Max) {
				h.Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
