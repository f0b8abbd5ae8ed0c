// @title        UpperSkills API
// @version      1.0
// @description  UpperSkills 後端 API：帳號註冊登入與聯絡表單
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer {token}"
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upperskills/internal/cache"
	"upperskills/internal/config"
	"upperskills/internal/database"
	"upperskills/internal/jobs"
	"upperskills/internal/logging"
	"upperskills/internal/middleware"
	"upperskills/internal/notify"
	"upperskills/internal/router"
	"upperskills/internal/service"
	"upperskills/internal/store"
	"upperskills/internal/validate"
	"upperskills/internal/worker"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "upperskills/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	mailQueueSize   = 100
	shutdownTimeout = 10 * time.Second
	bodyLimit       = "1M"
)

var (
	loadDotenv      = func() error { return godotenv.Load() }
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	newScheduler    = jobs.NewScheduler
	notifyContext   = signal.NotifyContext
	logOutput       = io.Writer(os.Stdout)
	exitFunc        = os.Exit
)

func run() error {
	// .env 不存在時直接使用環境變數
	if err := loadDotenv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("讀取 .env 失敗: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(logOutput, cfg.LogLevel)

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn(context.Background(), "關閉 Redis 連線失敗", "error", err)
		}
	}()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	st := store.New(db)
	v := validate.New()

	var revoker *service.Revoker
	if cfg.Auth.RevokeOnLogout {
		revoker = service.NewRevoker(rdb)
	}
	authSvc := service.NewAuthService(st, service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), revoker, v, log)
	if cfg.Admin.Email != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return fmt.Errorf("建立管理員失敗: %w", err)
		}
	}

	var mailer notify.Mailer = notify.LogMailer{Log: log}
	if cfg.Mail.Enabled() {
		mailer = notify.NewSMTPMailer(cfg.Mail)
	} else {
		log.Warn(ctx, "EMAIL_HOST 未設定，通知信只會寫入 log")
	}

	wp := newWorkerPool(cfg.WorkerCount, mailQueueSize, log)
	defer wp.Stop()

	contactSvc := service.NewContactService(st, mailer, wp, service.ContactOptions{
		Inbox:       cfg.Mail.Inbox,
		SendTimeout: cfg.Mail.Timeout,
	}, v, log)

	sched, err := newScheduler(log)
	if err != nil {
		return err
	}
	if cfg.Reminder.Interval > 0 && cfg.Mail.Inbox != "" {
		reminder := &jobs.Reminder{Contacts: st, Mailer: mailer, Inbox: cfg.Mail.Inbox, Age: cfg.Reminder.Age, Log: log}
		if err := sched.Every("pending-contact-reminder", cfg.Reminder.Interval, reminder.Run); err != nil {
			return err
		}
	}
	sched.Start()
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Warn(context.Background(), "停止排程失敗", "error", err)
		}
	}()

	e := newEcho(cfg, log)
	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     rdb,
		Auth:      authSvc,
		Contacts:  contactSvc,
		RateLimit: middleware.RateLimitConfig{Max: cfg.RateLimit.Max, Window: cfg.RateLimit.Window},
		Log:       log,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, cfg.Addr) }()
	log.Info(ctx, "server started", "addr", cfg.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newEcho 建立 echo 實例與共用中介層
func newEcho(cfg *config.Config, log logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = router.ErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, rv echomw.RequestLoggerValues) error {
			log.Info(c.Request().Context(), "request",
				"method", rv.Method,
				"uri", rv.URI,
				"status", rv.Status,
				"latency", rv.Latency,
				"request_id", rv.RequestID,
				"remote_ip", rv.RemoteIP,
			)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	return e
}

func main() {
	if err := run(); err != nil {
		slog.Error("service exited", "error", err)
		exitFunc(1)
	}
}
