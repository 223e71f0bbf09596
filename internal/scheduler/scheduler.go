// Package scheduler runs the jobs package on cron schedules.
package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/jobs"
	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron   *cron.Cron
	jobs   *jobs.JobRunner
	logger *slog.Logger
}

// specParser accepts both five-field specs and six-field specs with a leading seconds field.
var specParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// NewScheduler creates a scheduler and registers every job whose schedule is configured.
// An invalid schedule is an error.
func NewScheduler(jobRunner *jobs.JobRunner, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC), cron.WithParser(specParser)),
		jobs:   jobRunner,
		logger: logger.With(slog.String("component", "scheduler")),
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config()

	if cfg.RenewalReminderCron != "" {
		if _, err := s.cron.AddFunc(cfg.RenewalReminderCron, s.jobs.SendRenewalReminders); err != nil {
			return fmt.Errorf("invalid RENEWAL_REMINDER_CRON %q: %w", cfg.RenewalReminderCron, err)
		}
		s.logger.Info("Registered job", slog.String("job", jobs.RenewalReminderJob), slog.String("schedule", cfg.RenewalReminderCron))
	}

	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Starting cron scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any job is registered
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
