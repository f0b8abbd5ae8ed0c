// File: internal/api/contact_request.go
package api

// swagger:model api.ContactRequest
type ContactRequest struct {
	Name    string `json:"name" validate:"required" msg:"Name is required" example:"Ada Lovelace"`
	Email   string `json:"email" validate:"required,email" msg:"Valid email is required" example:"ada@example.com"`
	Message string `json:"message" validate:"min=10" msg:"Message must be at least 10 characters" example:"I'd like to know more about your courses."`
}

// swagger:model api.UpdateContactStatusRequest
type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING REVIEWED RESPONDED CLOSED" msg:"Invalid status" example:"REVIEWED"`
}

// MaxPage 讓 (page-1)*limit 不會溢位
const MaxPage = 100000

// ListContactsQuery 零值代表使用預設 (page=1, limit=10, 不篩選狀態)
type ListContactsQuery struct {
	Page   int    `json:"page" validate:"omitempty,min=1,max=100000" msg:"Page must be between 1 and 100000"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100" msg:"Limit must be between 1 and 100"`
	Status string `json:"status" validate:"omitempty,oneof=PENDING REVIEWED RESPONDED CLOSED" msg:"Invalid status"`
}
