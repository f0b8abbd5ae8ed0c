// File: internal/jobs/reminder.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"upperskills/internal/logging"
	"upperskills/internal/notify"
)

var timeNow = time.Now

// PendingCounter 計算逾時未處理的聯絡訊息
type PendingCounter interface {
	CountPendingBefore(ctx context.Context, before time.Time) (int, error)
}

// Reminder 定期提醒管理員仍有 PENDING 狀態的聯絡訊息
type Reminder struct {
	Contacts PendingCounter
	Mailer   notify.Mailer
	Inbox    string
	Age      time.Duration
	Log      logging.Logger
}

// Run 檢查一次；沒有逾時訊息時不寄信
func (r *Reminder) Run(ctx context.Context) error {
	count, err := r.Contacts.CountPendingBefore(ctx, timeNow().Add(-r.Age))
	if err != nil {
		return fmt.Errorf("Reminder: %w", err)
	}
	if count == 0 {
		return nil
	}
	msg, err := notify.PendingReminder(r.Inbox, count, r.Age)
	if err != nil {
		return fmt.Errorf("Reminder: %w", err)
	}
	if err := r.Mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("Reminder: %w", err)
	}
	r.Log.Info(ctx, "pending contact reminder sent", "count", count, "to", r.Inbox)
	return nil
}
