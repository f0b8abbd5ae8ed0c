// File: internal/model/contact.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus 聯絡訊息處理狀態
type ContactStatus string

const (
	ContactPending   ContactStatus = "PENDING"
	ContactReviewed  ContactStatus = "REVIEWED"
	ContactResponded ContactStatus = "RESPONDED"
	ContactClosed    ContactStatus = "CLOSED"
)

// ContactStatuses lists every accepted status in display order.
var ContactStatuses = []ContactStatus{ContactPending, ContactReviewed, ContactResponded, ContactClosed}

// Valid reports whether s is one of the four known statuses.
func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Contact struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Email     string        `db:"email" json:"email"`
	Message   string        `db:"message" json:"message"`
	Status    ContactStatus `db:"status" json:"status"`
	UserID    *uuid.UUID    `db:"user_id" json:"userId"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `db:"updated_at" json:"updatedAt"`

	// User 僅在列表查詢時填入 (LEFT JOIN users)
	User *ContactUser `db:"-" json:"user"`
}

// ContactUser 聯絡訊息所屬使用者摘要
type ContactUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}
