// File: internal/store/contact.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upperskills/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ContactFilter 列表查詢條件，Status 為空表示不篩選
type ContactFilter struct {
	Status model.ContactStatus
	Limit  int
	Offset int
}

func (s *Store) CreateContact(ctx context.Context, c *model.Contact) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = model.ContactPending
	}
	if !c.Status.Valid() {
		return fmt.Errorf("CreateContact: %w", ErrInvalidStatus)
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO contacts (id, name, email, message, status, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		c.ID,
		c.Name,
		c.Email,
		c.Message,
		c.Status,
		c.UserID,
	)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("CreateContact: %w", err)
	}
	return nil
}

// ListContacts 依 created_at DESC, id 排序回傳一頁資料與符合條件的總筆數
func (s *Store) ListContacts(ctx context.Context, f ContactFilter) ([]model.Contact, int, error) {
	var total int
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE ($1 = '' OR status = $1)`,
		string(f.Status),
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListContacts: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT c.id, c.name, c.email, c.message, c.status, c.user_id, c.created_at, c.updated_at,
		        u.first_name, u.last_name, u.email
		 FROM contacts c
		 LEFT JOIN users u ON u.id = c.user_id
		 WHERE ($1 = '' OR c.status = $1)
		 ORDER BY c.created_at DESC, c.id
		 LIMIT $2 OFFSET $3`,
		string(f.Status),
		f.Limit,
		f.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0, f.Limit)
	for rows.Next() {
		var (
			c                     model.Contact
			first, last, usrEmail *string
		)
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Message,
			&c.Status,
			&c.UserID,
			&c.CreatedAt,
			&c.UpdatedAt,
			&first,
			&last,
			&usrEmail,
		); err != nil {
			return nil, 0, fmt.Errorf("ListContacts: %w", err)
		}
		if c.UserID != nil && first != nil {
			c.User = &model.ContactUser{
				ID:        *c.UserID,
				FirstName: *first,
				LastName:  deref(last),
				Email:     deref(usrEmail),
			}
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListContacts: %w", err)
	}
	return contacts, total, nil
}

// UpdateContactStatus 單一 UPDATE ... RETURNING，並行更新以最後寫入為準
func (s *Store) UpdateContactStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("UpdateContactStatus: %w", ErrInvalidStatus)
	}
	c := &model.Contact{}
	err := s.db.QueryRow(ctx,
		`UPDATE contacts SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, name, email, message, status, user_id, created_at, updated_at`,
		status,
		id,
	).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Message,
		&c.Status,
		&c.UserID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UpdateContactStatus: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateContactStatus: %w", err)
	}
	return c, nil
}

// CountPendingBefore 計算建立時間早於 before 且仍為 PENDING 的訊息數
func (s *Store) CountPendingBefore(ctx context.Context, before time.Time) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM contacts WHERE status = $1 AND created_at < $2`,
		model.ContactPending,
		before,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPendingBefore: %w", err)
	}
	return n, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
