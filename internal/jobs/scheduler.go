// File: internal/jobs/scheduler.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"upperskills/internal/logging"

	"github.com/go-co-op/gocron/v2"
)

var newScheduler = func() (gocron.Scheduler, error) { return gocron.NewScheduler() }

// Scheduler 包裝 gocron，負責背景排程工作
type Scheduler struct {
	s   gocron.Scheduler
	log logging.Logger
}

func NewScheduler(log logging.Logger) (*Scheduler, error) {
	s, err := newScheduler()
	if err != nil {
		return nil, fmt.Errorf("NewScheduler: %w", err)
	}
	return &Scheduler{s: s, log: log}, nil
}

// Every 以固定間隔執行 fn；同一工作不會重疊執行
func (s *Scheduler) Every(name string, interval time.Duration, fn func(ctx context.Context) error) error {
	task := func() {
		if err := fn(context.Background()); err != nil {
			s.log.Error(context.Background(), "job failed", "job", name, "error", err)
		}
	}
	_, err := s.s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("Every %s: %w", name, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.s.Start()
}

// Stop 停止排程並等待執行中的工作結束
func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}
