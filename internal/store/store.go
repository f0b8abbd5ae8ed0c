// File: internal/store/store.go
package store

import (
	"errors"

	"upperskills/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無資料
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicateEmail users.email 唯一索引衝突
	ErrDuplicateEmail = errors.New("store: duplicate email")
	// ErrInvalidStatus 狀態不在 model.ContactStatuses 之中，不送進資料庫
	ErrInvalidStatus = errors.New("store: invalid contact status")
)

const uniqueViolation = "23505"

// Store 以 pgx 實作 users 與 contacts 的存取
type Store struct {
	db database.DB
}

func New(db database.DB) *Store {
	return &Store{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
