package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// RenewalReminderJob is the job name used in logs and metrics.
const RenewalReminderJob = "renewal_reminders"

// ReminderStats summarises one reminder run.
type ReminderStats struct {
	Due     int
	Sent    int
	Skipped int
	Failed  int
}

// SendRenewalReminders is the cron entry point.
func (jr *JobRunner) SendRenewalReminders() {
	_, _ = jr.RunRenewalReminders()
}

// RunRenewalReminders dispatches a reminder for every PENDING renewal due within the configured
// number of days. One failed reminder does not stop the others.
func (jr *JobRunner) RunRenewalReminders() (ReminderStats, error) {
	var stats ReminderStats
	err := jr.runWithRecovery(RenewalReminderJob, func(ctx context.Context) error {
		var err error
		stats, err = jr.remindDueRenewals(ctx)
		return err
	})
	return stats, err
}

func (jr *JobRunner) remindDueRenewals(ctx context.Context) (ReminderStats, error) {
	var stats ReminderStats
	today := jr.clock().UTC()
	from := today.Format(domain.DateLayout)
	to := today.AddDate(0, 0, jr.config.RenewalReminderDays).Format(domain.DateLayout)

	due, err := jr.renewals.ListPendingDue(ctx, from, to)
	if err != nil {
		return stats, fmt.Errorf("failed to list renewals due between %s and %s: %w", from, to, err)
	}
	stats.Due = len(due)

	for _, r := range due {
		logger := jr.logger.With(slog.String("renewal_id", r.ID), slog.String("due_date", r.DueDate))
		_, err := jr.dispatch.Dispatch(ctx, domain.KindRenewal, r.ID)
		switch {
		case err == nil:
			stats.Sent++
			logger.Debug("Renewal reminder sent")
		case errors.Is(err, apperrors.ErrAlreadySent), errors.Is(err, apperrors.ErrConflict):
			stats.Skipped++
			logger.Info("Renewal reminder skipped", slog.String("reason", err.Error()))
		default:
			stats.Failed++
			logger.Error("Failed to send renewal reminder", slog.String("error", err.Error()))
		}
	}

	jr.logger.Info("Renewal reminders processed",
		slog.Int("due", stats.Due),
		slog.Int("sent", stats.Sent),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed))
	return stats, nil
}
