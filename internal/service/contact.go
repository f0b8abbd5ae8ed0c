// File: internal/service/contact.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"upperskills/internal/api"
	"upperskills/internal/apperr"
	"upperskills/internal/logging"
	"upperskills/internal/model"
	"upperskills/internal/notify"
	"upperskills/internal/store"
	"upperskills/internal/validate"
	"upperskills/internal/worker"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ContactStore 聯絡訊息資料存取，由 store.Store 實作
type ContactStore interface {
	CreateContact(ctx context.Context, c *model.Contact) error
	ListContacts(ctx context.Context, f store.ContactFilter) ([]model.Contact, int, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, status model.ContactStatus) (*model.Contact, error)
}

// ContactOptions 寄信相關設定
type ContactOptions struct {
	// Inbox 營運信箱，空字串時不寄送內部通知
	Inbox string
	// SendTimeout 單封信的逾時
	SendTimeout time.Duration
}

// ContactService 處理聯絡表單送出、列表與狀態更新
type ContactService struct {
	contacts ContactStore
	mailer   notify.Mailer
	pool     worker.Pool
	opts     ContactOptions
	validate *validate.Validator
	log      logging.Logger
}

func NewContactService(contacts ContactStore, mailer notify.Mailer, pool worker.Pool, opts ContactOptions, v *validate.Validator, log logging.Logger) *ContactService {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &ContactService{contacts: contacts, mailer: mailer, pool: pool, opts: opts, validate: v, log: log}
}

// Submit 儲存聯絡訊息後交由 worker 寄信；寄信結果不影響回傳
// submitter 為帶有效 token 送出時的使用者 ID，可為 nil
func (s *ContactService) Submit(ctx context.Context, req api.ContactRequest, submitter *uuid.UUID) (*model.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = NormalizeEmail(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	c := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  model.ContactPending,
		UserID:  submitter,
	}
	if err := s.contacts.CreateContact(ctx, c); err != nil {
		return nil, fmt.Errorf("Submit: %w", err)
	}
	s.log.Info(ctx, "contact stored", "contact_id", c.ID)

	s.notify(ctx, c)
	return c, nil
}

func (s *ContactService) notify(ctx context.Context, c *model.Contact) {
	log := s.log.With("contact_id", c.ID)

	var msgs []notify.Message
	if s.opts.Inbox != "" {
		alert, err := notify.ContactAlert(s.opts.Inbox, c)
		if err != nil {
			log.Error(ctx, "build contact alert failed", "error", err)
		} else {
			msgs = append(msgs, alert)
		}
	}
	confirm, err := notify.ContactConfirmation(c)
	if err != nil {
		log.Error(ctx, "build contact confirmation failed", "error", err)
	} else {
		msgs = append(msgs, confirm)
	}

	// 寄信脫離 request 的取消，但保留 context 內的值供 log 使用
	// 佇列滿時直接放棄該封信，不拖住回應
	base := context.WithoutCancel(ctx)
	for _, msg := range msgs {
		msg := msg
		err := s.pool.Submit(func() {
			sendCtx, cancel := context.WithTimeout(base, s.opts.SendTimeout)
			defer cancel()
			if err := s.mailer.Send(sendCtx, msg); err != nil {
				log.Error(sendCtx, "email sending failed", "subject", msg.Subject, "error", err)
			}
		})
		if err != nil {
			log.Warn(ctx, "email not queued", "subject", msg.Subject, "error", err)
		}
	}
}

// List 依建立時間新到舊分頁，可依狀態篩選
func (s *ContactService) List(ctx context.Context, q api.ListContactsQuery) ([]model.Contact, api.Pagination, error) {
	q.Status = strings.TrimSpace(q.Status)
	if err := s.validate.Validate(q); err != nil {
		return nil, api.Pagination{}, err
	}
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}

	contacts, total, err := s.contacts.ListContacts(ctx, store.ContactFilter{
		Status: model.ContactStatus(q.Status),
		Limit:  q.Limit,
		Offset: (q.Page - 1) * q.Limit,
	})
	if err != nil {
		return nil, api.Pagination{}, fmt.Errorf("List: %w", err)
	}
	return contacts, api.NewPagination(q.Page, q.Limit, total), nil
}

// UpdateStatus 狀態不合法時不會寫入；id 不存在或格式錯誤回傳 404
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status string) (*model.Contact, error) {
	req := api.UpdateContactStatusRequest{Status: strings.TrimSpace(status)}
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}

	contactID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("Contact not found")
	}

	c, err := s.contacts.UpdateContactStatus(ctx, contactID, model.ContactStatus(req.Status))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Contact not found")
		}
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}
	s.log.Info(ctx, "contact status updated", "contact_id", c.ID, "status", c.Status)
	return c, nil
}
