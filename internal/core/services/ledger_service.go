package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	repo           portsrepo.TransactionRepositoryFacade
	counterparties portssvc.CounterpartyReaderSvc
}

// NewLedgerService creates a new ledger service. Receivers of directory-backed types are
// resolved through counterparties.
func NewLedgerService(repo portsrepo.TransactionRepositoryFacade, counterparties portssvc.CounterpartyReaderSvc, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:    newBaseService(options...),
		repo:           repo,
		counterparties: counterparties,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error) {
	now := s.Now()
	record := domain.TransactionRecord{
		ID:          s.NewID(),
		EntityID:    strings.TrimSpace(req.EntityID),
		EntityType:  req.EntityType,
		EntityName:  strings.TrimSpace(req.EntityName),
		Sender:      strings.TrimSpace(req.Sender),
		PaymentType: req.PaymentType,
		Amount:      req.Amount,
		Reason:      strings.TrimSpace(req.Reason),
		Phone:       strings.TrimSpace(req.Phone),
		OccurredOn:  strings.TrimSpace(req.OccurredOn),
		Status:      domain.StatusPending,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.resolveReceiver(ctx, &record); err != nil {
		s.LogWarn(ctx, err, "Receiver could not be resolved")
		return nil, err
	}
	if err := record.Validate(); err != nil {
		s.LogWarn(ctx, err, "Invalid transaction")
		return nil, err
	}

	if err := s.repo.SaveTransaction(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("id", record.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("id", record.ID),
		slog.String("entity_type", string(record.EntityType)),
		slog.String("payment_type", string(record.PaymentType)),
		slog.String("amount", record.Amount.String()))
	return &record, nil
}

// resolveReceiver fills the entity ID and phone of a directory-backed receiver. An advance
// (a payment to an employee or mediator) needs the receiver to exist.
func (s *ledgerService) resolveReceiver(ctx context.Context, record *domain.TransactionRecord) error {
	if !record.EntityType.HasDirectory() || s.counterparties == nil {
		return nil
	}

	c, err := s.counterparties.ResolveCounterparty(ctx, record.EntityType, record.EntityID, record.EntityName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if record.IsAdvance() {
				return fmt.Errorf("%w: %s %q not found", apperrors.ErrNotFound, strings.ToLower(string(record.EntityType)), firstNonEmpty(record.EntityID, record.EntityName))
			}
			return nil
		}
		return err
	}

	if record.EntityID == "" {
		record.EntityID = c.EntityID
	}
	if record.EntityName == "" {
		record.EntityName = c.Name
	}
	if record.Phone == "" {
		record.Phone = c.Phone
	}
	return nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	record, err := s.repo.FindTransactionByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("id", id))
		}
		return nil, err
	}
	return record, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.TransactionRecord, error) {
	filter := portsrepo.TransactionFilter{
		EntityID:   strings.TrimSpace(params.EntityID),
		EntityType: domain.EntityType(params.EntityType),
		Status:     domain.Status(params.Status),
	}

	switch {
	case params.Date != "":
		if err := domain.ValidateDate(params.Date); err != nil {
			return nil, err
		}
		filter.Date = params.Date
	case params.From != "" || params.To != "":
		from, to, err := validateRange(params.From, params.To)
		if err != nil {
			return nil, err
		}
		filter.From, filter.To = from, to
	default:
		filter.Date = s.Now().Format(domain.DateLayout)
	}

	records, err := s.repo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return records, nil
}

func (s *ledgerService) ListBalances(ctx context.Context, params dto.ListBalancesParams) ([]domain.EntityBalance, error) {
	from, to, err := validateRange(params.From, params.To)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListTransactions(ctx, portsrepo.TransactionFilter{
		From:       from,
		To:         to,
		EntityType: domain.EntityType(params.EntityType),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balances")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return aggregateTransactions(records), nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error) {
	current, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkExpectedVersion(req.Version, current.Version); err != nil {
		return nil, err
	}

	updated := *current
	if req.EntityID != nil {
		updated.EntityID = strings.TrimSpace(*req.EntityID)
	}
	if req.EntityType != nil {
		updated.EntityType = *req.EntityType
	}
	if req.EntityName != nil {
		updated.EntityName = strings.TrimSpace(*req.EntityName)
	}
	if req.Sender != nil {
		updated.Sender = strings.TrimSpace(*req.Sender)
	}
	if req.PaymentType != nil {
		updated.PaymentType = *req.PaymentType
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Reason != nil {
		updated.Reason = strings.TrimSpace(*req.Reason)
	}
	if req.Phone != nil {
		updated.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.OccurredOn != nil {
		updated.OccurredOn = strings.TrimSpace(*req.OccurredOn)
	}
	if err := updated.Validate(); err != nil {
		s.LogWarn(ctx, err, "Invalid transaction update", slog.String("id", id))
		return nil, err
	}

	updated.LastUpdatedAt = s.Now()
	updated.Version = current.Version + 1
	if err := s.repo.UpdateTransaction(ctx, updated, current.Version); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("id", id))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("id", id))
	return nil
}

// aggregateTransactions folds ledger lines into sorted per-entity balances, counting
// advance payments towards TotalAdvance.
func aggregateTransactions(records []domain.TransactionRecord) []domain.EntityBalance {
	entries := make([]domain.BalanceEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, accounting.TransactionEntry(r, true))
	}
	return accounting.SortedBalances(accounting.Aggregate(entries))
}

// validateRange checks optional YYYY-MM-DD bounds and their order.
func validateRange(from, to string) (string, string, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from != "" {
		if err := domain.ValidateDate(from); err != nil {
			return "", "", err
		}
	}
	if to != "" {
		if err := domain.ValidateDate(to); err != nil {
			return "", "", err
		}
	}
	if from != "" && to != "" && from > to {
		return "", "", fmt.Errorf("%w: from %s is after to %s", apperrors.ErrValidation, from, to)
	}
	return from, to, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
