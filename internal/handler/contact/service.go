// File: internal/handler/contact/service.go
package contact

import (
	"context"

	"upperskills/internal/api"
	"upperskills/internal/model"

	"github.com/google/uuid"
)

// Service 聯絡表單相關操作，由 service.ContactService 實作
type Service interface {
	Submit(ctx context.Context, req api.ContactRequest, submitter *uuid.UUID) (*model.Contact, error)
	List(ctx context.Context, q api.ListContactsQuery) ([]model.Contact, api.Pagination, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error)
}

type FakeService struct {
	SubmitFn       func(ctx context.Context, req api.ContactRequest, submitter *uuid.UUID) (*model.Contact, error)
	ListFn         func(ctx context.Context, q api.ListContactsQuery) ([]model.Contact, api.Pagination, error)
	UpdateStatusFn func(ctx context.Context, id string, status string) (*model.Contact, error)
}

func (f *FakeService) Submit(ctx context.Context, req api.ContactRequest, submitter *uuid.UUID) (*model.Contact, error) {
	if f.SubmitFn != nil {
		return f.SubmitFn(ctx, req, submitter)
	}
	panic("unexpected Submit")
}

func (f *FakeService) List(ctx context.Context, q api.ListContactsQuery) ([]model.Contact, api.Pagination, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, q)
	}
	panic("unexpected List")
}

func (f *FakeService) UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error) {
	if f.UpdateStatusFn != nil {
		return f.UpdateStatusFn(ctx, id, status)
	}
	panic("unexpected UpdateStatus")
}
