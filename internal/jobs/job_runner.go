// Package jobs holds the work run on a schedule rather than per request.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/metrics"
	"github.com/SscSPs/erp_backoffice/internal/middleware"
	"github.com/SscSPs/erp_backoffice/internal/platform/config"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	renewals portssvc.RenewalSvcFacade
	dispatch portssvc.DispatchSvc
	config   *config.Config
	logger   *slog.Logger
	clock    func() time.Time
}

// Option customises a JobRunner.
type Option func(*JobRunner)

// WithClock overrides the time source used to compute due-date windows.
func WithClock(clock func() time.Time) Option {
	return func(jr *JobRunner) { jr.clock = clock }
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *portssvc.ServiceContainer, cfg *config.Config, logger *slog.Logger, opts ...Option) *JobRunner {
	if logger == nil {
		logger = slog.Default()
	}
	jr := &JobRunner{
		renewals: services.Renewal,
		dispatch: services.Dispatch,
		config:   cfg,
		logger:   logger.With(slog.String("component", "jobs")),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(jr)
	}
	return jr
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and records the outcome.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) (err error) {
	logger := jr.logger.With(slog.String("job", jobName))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", slog.Any("panic", r))
			metrics.ScheduledJobRuns.WithLabelValues(jobName, "panic").Inc()
			err = fmt.Errorf("job %s panicked: %v", jobName, r)
		}
	}()

	logger.Info("Starting job")
	start := jr.clock()
	ctx := middleware.WithLogger(context.Background(), logger)
	if err = jobFunc(ctx); err != nil {
		logger.Error("Job failed", slog.String("error", err.Error()))
		metrics.ScheduledJobRuns.WithLabelValues(jobName, "failure").Inc()
		return err
	}
	metrics.ScheduledJobRuns.WithLabelValues(jobName, "success").Inc()
	logger.Info("Job completed", slog.Duration("elapsed", jr.clock().Sub(start)))
	return nil
}
