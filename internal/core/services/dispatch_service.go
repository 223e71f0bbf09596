package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/dispatch"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/core/ports"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/metrics"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
)

// DefaultDispatchTimeout bounds one call to the messaging provider.
const DefaultDispatchTimeout = 10 * time.Second

// notificationSource adapts one record collection to the dispatcher.
type notificationSource interface {
	portsrepo.StatusTransitioner
	// load returns the record's notification and the scope (day, period or month) its
	// refreshed view covers.
	load(ctx context.Context, id string) (domain.Notification, string, error)
	refresh(ctx context.Context, scope string) ([]domain.EntityBalance, error)
}

type dispatchService struct {
	BaseService
	sender  ports.MessageSender
	timeout time.Duration
	sources map[domain.NotificationKind]notificationSource
}

// NewDispatchService creates the notification dispatcher for every notifiable collection.
// A zero timeout falls back to DefaultDispatchTimeout.
func NewDispatchService(repos portsrepo.RepositoryProvider, sender ports.MessageSender, timeout time.Duration, options ...ServiceOption) portssvc.DispatchSvc {
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}
	base := newBaseService(options...)
	svc := &dispatchService{
		BaseService: base,
		sender:      sender,
		timeout:     timeout,
	}
	svc.sources = map[domain.NotificationKind]notificationSource{
		domain.KindTransaction: transactionSource{repo: repos.TransactionRepo},
		domain.KindSalary: salarySource{
			repo:  repos.SalaryRepo,
			today: func() string { return svc.Now().Format(domain.DateLayout) },
			summary: &salaryService{
				BaseService:  base,
				repo:         repos.SalaryRepo,
				transactions: repos.TransactionRepo,
			},
		},
		domain.KindRenewal: renewalSource{repo: repos.RenewalRepo},
	}
	return svc
}

var _ portssvc.DispatchSvc = (*dispatchService)(nil)

func (s *dispatchService) Dispatch(ctx context.Context, kind domain.NotificationKind, id string) (*dto.DispatchResult, error) {
	src, ok := s.sources[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown notification kind %q", apperrors.ErrValidation, kind)
	}

	n, scope, err := src.load(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load record for dispatch", slog.String("kind", string(kind)), slog.String("id", id))
		}
		return nil, err
	}

	result := &dto.DispatchResult{
		Kind:     string(kind),
		RecordID: id,
		Status:   string(n.Status),
	}
	// The refreshed view is attached on every path past the lookup.
	defer func() {
		result.Balances = s.refresh(ctx, src, kind, scope)
	}()

	if n.Status == domain.StatusSent {
		metrics.Dispatches.WithLabelValues(string(kind), "already_sent").Inc()
		result.Error = apperrors.ErrAlreadySent.Error()
		return result, apperrors.ErrAlreadySent
	}
	if strings.TrimSpace(n.Message.Phone) == "" {
		err := fmt.Errorf("%w: phone is required to send a notification", apperrors.ErrValidation)
		result.Error = err.Error()
		return result, err
	}

	saga := dispatch.NewSaga(
		func(ctx context.Context) error {
			return src.TransitionStatus(ctx, id, domain.StatusPending, domain.StatusSent)
		},
		func(ctx context.Context) error {
			return src.TransitionStatus(ctx, id, domain.StatusSent, domain.StatusPending)
		},
	)

	if err := saga.Begin(ctx); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			metrics.Dispatches.WithLabelValues(string(kind), "conflict").Inc()
			s.LogWarn(ctx, err, "Record changed before dispatch", slog.String("id", id))
		} else {
			s.LogError(ctx, err, "Failed to mark record as sent", slog.String("id", id))
		}
		result.Error = err.Error()
		return result, err
	}

	raw, sendErr := s.send(ctx, kind, n.Message)
	if sendErr != nil {
		metrics.Dispatches.WithLabelValues(string(kind), "failed").Inc()
		cause := fmt.Errorf("%w: %w", apperrors.ErrDispatchFailed, sendErr)

		// The request context may already be past its deadline; the rollback must still land.
		if cErr := saga.Compensate(context.WithoutCancel(ctx)); cErr != nil {
			s.LogError(ctx, cErr, "Failed to roll back status after dispatch failure", slog.String("id", id))
			cause = errors.Join(cause, fmt.Errorf("rollback failed: %w", cErr))
			result.Status = string(domain.StatusSent)
		} else {
			result.Status = string(domain.StatusPending)
		}
		s.LogWarn(ctx, sendErr, "Notification not accepted", slog.String("kind", string(kind)), slog.String("id", id))
		result.Error = cause.Error()
		return result, cause
	}

	if err := saga.Confirm(); err != nil {
		return result, err
	}
	metrics.Dispatches.WithLabelValues(string(kind), "sent").Inc()
	s.LogInfo(ctx, "Notification sent",
		slog.String("kind", string(kind)),
		slog.String("id", id),
		slog.String("provider_response", raw))

	result.Status = string(domain.StatusSent)
	result.Sent = true
	return result, nil
}

func (s *dispatchService) send(ctx context.Context, kind domain.NotificationKind, msg domain.Message) (string, error) {
	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.sender.Send(sendCtx, msg)
	metrics.GatewayLatency.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	return raw, err
}

func (s *dispatchService) refresh(ctx context.Context, src notificationSource, kind domain.NotificationKind, scope string) []domain.EntityBalance {
	balances, err := src.refresh(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh view after dispatch", slog.String("kind", string(kind)), slog.String("scope", scope))
		return []domain.EntityBalance{}
	}
	return balances
}

type transactionSource struct {
	repo portsrepo.TransactionRepositoryFacade
}

func (t transactionSource) load(ctx context.Context, id string) (domain.Notification, string, error) {
	rec, err := t.repo.FindTransactionByID(ctx, id)
	if err != nil {
		return domain.Notification{}, "", err
	}
	return rec.Notification(), rec.OccurredOn, nil
}

func (t transactionSource) refresh(ctx context.Context, day string) ([]domain.EntityBalance, error) {
	records, err := t.repo.ListTransactions(ctx, portsrepo.TransactionFilter{Date: day})
	if err != nil {
		return nil, err
	}
	return aggregateTransactions(records), nil
}

func (t transactionSource) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	return t.repo.TransitionStatus(ctx, id, from, to)
}

type salarySource struct {
	repo    portsrepo.SalaryRepositoryFacade
	today   func() string
	summary *salaryService
}

func (s salarySource) load(ctx context.Context, id string) (domain.Notification, string, error) {
	rec, err := s.repo.FindSalaryByID(ctx, id)
	if err != nil {
		return domain.Notification{}, "", err
	}
	return rec.Notification(s.today()), rec.PeriodKey, nil
}

func (s salarySource) refresh(ctx context.Context, period string) ([]domain.EntityBalance, error) {
	return s.summary.PeriodSummary(ctx, period)
}

func (s salarySource) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	return s.repo.TransitionStatus(ctx, id, from, to)
}

type renewalSource struct {
	repo portsrepo.RenewalRepositoryFacade
}

func (r renewalSource) load(ctx context.Context, id string) (domain.Notification, string, error) {
	rec, err := r.repo.FindRenewalByID(ctx, id)
	if err != nil {
		return domain.Notification{}, "", err
	}
	month := rec.DueDate
	if len(month) >= len(domain.PeriodLayout) {
		month = month[:len(domain.PeriodLayout)]
	}
	return rec.Notification(), month, nil
}

func (r renewalSource) refresh(ctx context.Context, month string) ([]domain.EntityBalance, error) {
	from, to := domain.PeriodBounds(month)
	list, err := r.repo.ListRenewals(ctx, portsrepo.RenewalFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	entries := make([]domain.BalanceEntry, 0, len(list))
	for _, rn := range list {
		entries = append(entries, accounting.RenewalEntry(rn))
	}
	return accounting.SortedBalances(accounting.Aggregate(entries)), nil
}

func (r renewalSource) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	return r.repo.TransitionStatus(ctx, id, from, to)
}
