// Package scheduler runs the daily background jobs: pre-building the queue
// shortly after UTC midnight and sending the optional reminder.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/echoslice/internal/logger"
	"github.com/example/echoslice/internal/queue"
)

// prebuildAt is when the daily queue is built ahead of the first request.
// Kept a few minutes past midnight so a clock slightly behind UTC does not
// build yesterday's queue again.
const prebuildAt = "00:05"

// Notifier delivers the daily reminder. Nil notifiers are allowed.
type Notifier interface {
	SendDailySummary(count int) error
}

// Scheduler owns the gocron instance and the jobs on it.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *queue.Service
	notifier  Notifier
	log       *logger.Logger
}

// New creates a scheduler. notifier may be nil to skip reminders.
func New(service *queue.Service, notifier Notifier, log *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		notifier:  notifier,
		log:       log,
	}
}

// Start registers the jobs and runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At(prebuildAt).Do(s.prebuildToday)
	s.scheduler.StartAsync()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// prebuildToday builds the queue for the new day so the first request of the
// morning returns instantly, then notifies if anything is waiting.
func (s *Scheduler) prebuildToday() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	items, err := s.service.GetToday(ctx)
	if err != nil {
		s.log.Errorw("failed to prebuild today queue", "error", err)
		return
	}
	s.log.Infow("prebuilt today queue", "entries", len(items))

	if s.notifier == nil || len(items) == 0 {
		return
	}
	if err := s.notifier.SendDailySummary(len(items)); err != nil {
		s.log.Errorw("failed to send daily reminder", "error", err)
	}
}
