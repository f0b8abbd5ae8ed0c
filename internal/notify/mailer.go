// Package notify 負責寄送通知信 (聯絡表單提醒、確認信、待處理提醒)
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"upperskills/internal/config"
	"upperskills/internal/logging"

	"github.com/wneessen/go-mail"
)

// Message 一封 HTML 郵件
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer 寄信介面，呼叫端自行決定逾時
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// sender 只保留 SMTPMailer 用到的 go-mail client 方法
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// newClient 建立 SMTP client，測試可覆寫
var newClient = func(host string, opts ...mail.Option) (sender, error) {
	return mail.NewClient(host, opts...)
}

// SMTPMailer 透過 go-mail 以 SMTP 寄送
type SMTPMailer struct {
	cfg config.Mail
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.cfg.From == "" {
		return errors.New("Send: sender address not configured")
	}

	em := mail.NewMsg()
	if err := em.From(m.cfg.From); err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	if err := em.To(msg.To); err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	em.Subject(msg.Subject)
	em.SetBodyString(mail.TypeTextHTML, msg.HTML)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.cfg.Timeout))
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := newClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, em); err != nil {
		return fmt.Errorf("Send: %w", err)
	}
	return nil
}

// LogMailer 未設定 SMTP 時使用，只記錄不寄送
type LogMailer struct {
	Log logging.Logger
}

func (l LogMailer) Send(ctx context.Context, msg Message) error {
	l.Log.Info(ctx, "mail delivery disabled, message dropped", "to", msg.To, "subject", msg.Subject)
	return nil
}

// FakeMailer 記錄所有寄出的信，SendFn 可注入錯誤
type FakeMailer struct {
	mu     sync.Mutex
	Sent   []Message
	SendFn func(ctx context.Context, msg Message) error
}

func (f *FakeMailer) Send(ctx context.Context, msg Message) error {
	f.mu.Lock()
	f.Sent = append(f.Sent, msg)
	f.mu.Unlock()
	if f.SendFn != nil {
		return f.SendFn(ctx, msg)
	}
	return nil
}

// Messages 回傳目前已寄出的信件副本
func (f *FakeMailer) Messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.Sent...)
}
