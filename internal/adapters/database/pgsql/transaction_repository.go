package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, entity_id, entity_type, entity_name, sender, payment_type, amount::text,
	reason, phone, occurred_on, status, version, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool, table: "transactions"},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID, &m.EntityID, &m.EntityType, &m.EntityName, &m.Sender, &m.PaymentType, &m.Amount,
		&m.Reason, &m.Phone, &m.OccurredOn, &m.Status, &m.Version, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

// SaveTransaction inserts a new ledger record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, record domain.TransactionRecord) error {
	m := mapping.ToModelTransaction(record)
	query := `
		INSERT INTO transactions (id, entity_id, entity_type, entity_name, sender, payment_type, amount,
			reason, phone, occurred_on, status, version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.EntityID, m.EntityType, m.EntityName, m.Sender, m.PaymentType, m.Amount,
		m.Reason, m.Phone, m.OccurredOn, m.Status, m.Version, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.ID, err)
	}
	return nil
}

// FindTransactionByID retrieves a ledger record by ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id string) (*domain.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", id, err)
	}
	rec := mapping.ToDomainTransaction(m)
	return &rec, nil
}

// ListTransactions retrieves ledger records matching the filter.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	var w where
	if filter.Date != "" {
		w.add("occurred_on = $%d", filter.Date)
	}
	if filter.From != "" {
		w.add("occurred_on >= $%d", filter.From)
	}
	if filter.To != "" {
		w.add("occurred_on <= $%d", filter.To)
	}
	if filter.EntityID != "" {
		w.add("entity_id = $%d", filter.EntityID)
	}
	if filter.EntityType != "" {
		w.add("entity_type = $%d", string(filter.EntityType))
	}
	if filter.Status != "" {
		w.add("status = $%d", string(filter.Status))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions` + w.String() + ` ORDER BY occurred_on, created_at;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelRecords), nil
}

// UpdateTransaction overwrites a record when its stored version matches.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, record domain.TransactionRecord, expectedVersion int64) error {
	m := mapping.ToModelTransaction(record)
	query := `
		UPDATE transactions SET entity_id = $2, entity_type = $3, entity_name = $4, sender = $5,
			payment_type = $6, amount = $7, reason = $8, phone = $9, occurred_on = $10, status = $11,
			version = $12, last_updated_at = $13
		WHERE id = $1 AND version = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.EntityID, m.EntityType, m.EntityName, m.Sender,
		m.PaymentType, m.Amount, m.Reason, m.Phone, m.OccurredOn, m.Status,
		m.Version, m.LastUpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, m.ID)
	}
	return nil
}

// DeleteTransaction removes a ledger record.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
