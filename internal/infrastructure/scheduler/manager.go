// Package scheduler runs the unattended renewal reminder job using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"

	notificationdto "github.com/corpit/licensedesk/internal/application/notification/dto"
	notificationUsecases "github.com/corpit/licensedesk/internal/application/notification/usecases"
	"github.com/corpit/licensedesk/internal/shared/biztime"
	"github.com/corpit/licensedesk/internal/shared/logger"
)

// ReminderRunner is satisfied by the run-reminders use case.
type ReminderRunner interface {
	Execute(ctx context.Context, cmd notificationUsecases.RunRemindersCommand) (*notificationdto.SendRemindersResponse, error)
}

const reminderJobTimeout = 30 * time.Minute

// SchedulerManager owns the gocron scheduler and its registered jobs.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager evaluates cron expressions in the business timezone.
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

// RegisterReminderJob runs the reminder sweep on a standard five-field cron spec.
func (m *SchedulerManager) RegisterReminderJob(spec string, runner ReminderRunner) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}

	_, err := m.scheduler.NewJob(
		gocron.CronJob(spec, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), reminderJobTimeout)
			defer cancel()
			m.runReminders(ctx, runner)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "reminders"),
		gocron.WithName("renewal-reminders"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder job", "spec", spec)
	return nil
}

func (m *SchedulerManager) runReminders(ctx context.Context, runner ReminderRunner) {
	m.logger.Debugw("reminder run started")

	startTime := biztime.NowUTC()
	result, err := runner.Execute(ctx, notificationUsecases.RunRemindersCommand{})
	if err != nil {
		m.logger.Errorw("reminder run failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("reminder run completed",
		"total", result.Total,
		"sent", result.Sent,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"duration", time.Since(startTime),
	)
}

// Start starts the scheduler. Calling it twice is a no-op.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// Run starts the scheduler and blocks until ctx is cancelled.
func (m *SchedulerManager) Run(ctx context.Context) error {
	m.Start()
	<-ctx.Done()
	return m.Stop()
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}

// NextRun reports when spec next fires after from, in the business timezone.
func NextRun(spec string, from time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return schedule.Next(from.In(biztime.Location())), nil
}
