package sqlite

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
)

const transactionColumns = `id, entity_id, entity_type, entity_name, sender, payment_type, amount,
	reason, phone, occurred_on, status, version, created_at, last_updated_at`

// TransactionRepository stores ledger records.
type TransactionRepository struct {
	baseRepository
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func scanTransaction(row scanner) (models.Transaction, error) {
	var (
		m                models.Transaction
		created, updated string
	)
	err := row.Scan(
		&m.ID, &m.EntityID, &m.EntityType, &m.EntityName, &m.Sender, &m.PaymentType, &m.Amount,
		&m.Reason, &m.Phone, &m.OccurredOn, &m.Status, &m.Version, &created, &updated,
	)
	if err != nil {
		return m, err
	}
	if m.CreatedAt, err = parseTime(created); err != nil {
		return m, err
	}
	m.LastUpdatedAt, err = parseTime(updated)
	return m, err
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, record domain.TransactionRecord) error {
	m := mapping.ToModelTransaction(record)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.EntityID, m.EntityType, m.EntityName, m.Sender, m.PaymentType, m.Amount,
		m.Reason, m.Phone, m.OccurredOn, m.Status, m.Version, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.ID, err)
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	m, err := scanTransaction(r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction %s", id)
	}
	rec := mapping.ToDomainTransaction(m)
	return &rec, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	var w where
	if filter.Date != "" {
		w.add("occurred_on = ?", filter.Date)
	}
	if filter.From != "" {
		w.add("occurred_on >= ?", filter.From)
	}
	if filter.To != "" {
		w.add("occurred_on <= ?", filter.To)
	}
	if filter.EntityID != "" {
		w.add("entity_id = ?", filter.EntityID)
	}
	if filter.EntityType != "" {
		w.add("entity_type = ?", string(filter.EntityType))
	}
	if filter.Status != "" {
		w.add("status = ?", string(filter.Status))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions`+w.String()+` ORDER BY occurred_on, created_at`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(out), nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, record domain.TransactionRecord, expectedVersion int64) error {
	m := mapping.ToModelTransaction(record)
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions SET entity_id = ?, entity_type = ?, entity_name = ?, sender = ?, payment_type = ?,
			amount = ?, reason = ?, phone = ?, occurred_on = ?, status = ?, version = ?, last_updated_at = ?
		WHERE id = ? AND version = ?`,
		m.EntityID, m.EntityType, m.EntityName, m.Sender, m.PaymentType,
		m.Amount, m.Reason, m.Phone, m.OccurredOn, m.Status, m.Version, formatTime(m.LastUpdatedAt),
		m.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.ID, err)
	}
	return r.checkWrite(ctx, res, m.ID)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
