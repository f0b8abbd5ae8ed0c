// File: internal/database/db.go
package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 層使用的最小查詢介面，*pgxpool.Pool 與 pgxmock 皆可滿足
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// FakeDB 給 handler 與 cmd 測試用；SQL 行為以 pgxmock 測
// 查詢方法未設定時 panic，Close 未設定時不做事
type FakeDB struct {
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("FakeDB: QueryRow not stubbed")
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("FakeDB: Query not stubbed")
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("FakeDB: Exec not stubbed")
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("FakeDB: Ping not stubbed")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}

// FakeRow 是 QueryRowFn 的回傳值，Scan 交給 ScanFn
type FakeRow struct {
	ScanFn func(dest ...any) error
}

func (r FakeRow) Scan(dest ...any) error { return r.ScanFn(dest...) }

// ErrRow 回傳 Scan 一律失敗的 row，例如 pgx.ErrNoRows
func ErrRow(err error) FakeRow {
	return FakeRow{ScanFn: func(...any) error { return err }}
}
