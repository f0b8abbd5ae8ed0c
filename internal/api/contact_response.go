// File: internal/api/contact_response.go
package api

import (
	"time"

	"upperskills/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.ContactSummary
type ContactSummary struct {
	ID        uuid.UUID `json:"id" example:"5d3c3c8e-2b1a-4c61-9a55-3c4b6f3b2f10"`
	Name      string    `json:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" example:"ada@example.com"`
	CreatedAt time.Time `json:"createdAt"`
}

// swagger:model api.SubmitContactResponse
type SubmitContactResponse struct {
	Message string         `json:"message" example:"Contact form submitted successfully"`
	Contact ContactSummary `json:"contact"`
}

// swagger:model api.ContactResponse
type ContactResponse struct {
	Message string        `json:"message" example:"Contact status updated successfully"`
	Contact model.Contact `json:"contact"`
}

// swagger:model api.Pagination
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"15"`
	Pages int `json:"pages" example:"2"`
}

// NewPagination pages = ceil(total/limit)
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// swagger:model api.ContactListResponse
type ContactListResponse struct {
	Contacts   []model.Contact `json:"contacts"`
	Pagination Pagination      `json:"pagination"`
}
