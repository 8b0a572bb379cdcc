// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/atrium-inc/atrium/internal/shared/biztime"
	"github.com/atrium-inc/atrium/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2 behind a single
// scheduler instance.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterSLAOverdueJob registers the periodic SLA overdue sweep. Singleton
// mode prevents overlapping sweeps when one run exceeds the interval.
func (m *SchedulerManager) RegisterSLAOverdueJob(job BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			defer cancel()

			start := biztime.NowUTC()
			count, err := job.Execute(ctx)
			if err != nil {
				m.logger.Errorw("sla overdue sweep failed",
					"error", err,
					"duration", time.Since(start))
				return
			}

			if count > 0 {
				m.logger.Infow("sla overdue sweep completed",
					"overdue_tickets", count,
					"duration", time.Since(start))
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("sla", "overdue"),
		gocron.WithName("sla-overdue-sweep"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered sla overdue job", "interval", interval)
	return nil
}

// Start begins executing all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		m.logger.Warnw("scheduler already started")
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Stop gracefully shuts down the scheduler, waiting for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler shutdown failed", "error", err)
		return err
	}

	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
