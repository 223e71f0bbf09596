package firestore

import (
	"cmp"
	"context"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
)

// TransactionRepository stores ledger records.
type TransactionRepository struct {
	baseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func setTransactionID(m *models.Transaction, id string) { m.ID = id }

func byDateThenCreated(a, b models.Transaction) int {
	return cmp.Or(cmp.Compare(a.OccurredOn, b.OccurredOn), a.CreatedAt.Compare(b.CreatedAt))
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, record domain.TransactionRecord) error {
	return r.create(ctx, record.ID, mapping.ToModelTransaction(record))
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	m, err := getDoc(ctx, &r.baseRepository, id, setTransactionID)
	if err != nil {
		return nil, err
	}
	rec := mapping.ToDomainTransaction(m)
	return &rec, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	q := r.col().Query
	if filter.Date != "" {
		q = q.Where("occurredOn", "==", filter.Date)
	}
	if filter.From != "" {
		q = q.Where("occurredOn", ">=", filter.From)
	}
	if filter.To != "" {
		q = q.Where("occurredOn", "<=", filter.To)
	}
	if filter.EntityID != "" {
		q = q.Where("entityId", "==", filter.EntityID)
	}
	if filter.EntityType != "" {
		q = q.Where("entityType", "==", string(filter.EntityType))
	}
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}

	out, err := collect(q.Documents(ctx), setTransactionID, byDateThenCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(out), nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, record domain.TransactionRecord, expectedVersion int64) error {
	return r.replace(ctx, record.ID, expectedVersion, mapping.ToModelTransaction(record))
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
