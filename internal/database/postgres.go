// File: internal/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsTable 記錄已套用版本的資料表
const migrationsTable = "schema_migrations"

type upMigrator interface {
	Up() error
}

// 以下變數在測試中會被覆寫
var (
	pgxpoolNew     = pgxpool.New
	sqlOpenDB      = sql.Open
	postgresDriver = postgres.WithInstance
	iofsSource     = iofs.New
	newMigrate     = func(source src.Driver, driver dbdriver.Driver) (upMigrator, error) {
		return migrate.NewWithInstance("iofs", source, "postgres", driver)
	}
)

// NewPgxPool 建立 pgx 連線池，*pgxpool.Pool 直接實作 DB
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("NewPgxPool: %w", err)
	}
	return pool, nil
}

// RunMigrations 套用所有尚未執行的嵌入 migration；已是最新版本時不視為錯誤
func RunMigrations(dbURL string) error {
	// golang-migrate 需要 *sql.DB，透過 pgx stdlib driver 開啟
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("RunMigrations open: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgresDriver(sqlDB, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("RunMigrations driver: %w", err)
	}
	source, err := iofsSource(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("RunMigrations source: %w", err)
	}
	m, err := newMigrate(source, driver)
	if err != nil {
		return fmt.Errorf("RunMigrations init: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("RunMigrations up: %w", err)
	}
	return nil
}
