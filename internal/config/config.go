// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 服務啟動所需的全部設定，由 cmd/service 讀取環境變數後注入各元件
type Config struct {
	Addr           string
	DatabaseURL    string
	AllowedOrigins []string
	LogLevel       string
	WorkerCount    int

	Redis     Redis
	Auth      Auth
	Mail      Mail
	RateLimit RateLimit
	Reminder  Reminder
	Admin     Admin
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
	// RevokeOnLogout 啟用時登出會將 token 加入 Redis 黑名單
	RevokeOnLogout bool
}

type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Inbox 接收新聯絡表單通知的信箱
	Inbox   string
	Timeout time.Duration
}

// Enabled reports whether an SMTP host was configured.
func (m Mail) Enabled() bool { return m.Host != "" }

type RateLimit struct {
	Max    int
	Window time.Duration
}

type Reminder struct {
	Interval time.Duration
	Age      time.Duration
}

// Admin 啟動時若不存在則建立的管理員帳號，Email 為空表示不建立
type Admin struct {
	Email    string
	Password string
}

// Load 讀取環境變數並套用預設值
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        ":" + getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Mail: Mail{
			Host:     os.Getenv("EMAIL_HOST"),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
		},
		Admin: Admin{
			Email:    strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if cfg.Admin.Email != "" && len(cfg.Admin.Password) < 6 {
		return nil, fmt.Errorf("ADMIN_PASSWORD 至少需要 6 個字元")
	}

	var err error
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 2); err != nil {
		return nil, err
	}
	if cfg.WorkerCount <= 0 {
		return nil, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	if cfg.Auth.TokenTTL, err = durationEnv("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Auth.RevokeOnLogout, err = boolEnv("TOKEN_REVOCATION", false); err != nil {
		return nil, err
	}
	if cfg.Mail.Port, err = intEnv("EMAIL_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.Mail.Timeout, err = durationEnv("EMAIL_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	cfg.Mail.From = getEnv("EMAIL_FROM", cfg.Mail.Username)
	cfg.Mail.Inbox = getEnv("CONTACT_INBOX", cfg.Mail.Username)

	if cfg.RateLimit.Max, err = intEnv("RATE_LIMIT_MAX", 20); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Window, err = durationEnv("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Reminder.Interval, err = durationEnv("REMINDER_INTERVAL", 6*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Reminder.Age, err = durationEnv("REMINDER_AGE", 24*time.Hour); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = parseList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return d, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %v", key, err)
	}
	return b, nil
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
