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

const counterpartyColumns = `id, entity_id, entity_type, name, phone, address, base_salary::text,
	bank_account, ifsc, national_id, version, created_at, last_updated_at`

type PgxCounterpartyRepository struct {
	BaseRepository
}

func newPgxCounterpartyRepository(pool *pgxpool.Pool) portsrepo.CounterpartyRepositoryFacade {
	return &PgxCounterpartyRepository{
		BaseRepository: BaseRepository{Pool: pool, table: "counterparties"},
	}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

func scanCounterparty(row pgx.Row) (models.Counterparty, error) {
	var m models.Counterparty
	err := row.Scan(
		&m.ID, &m.EntityID, &m.EntityType, &m.Name, &m.Phone, &m.Address, &m.BaseSalary,
		&m.BankAccount, &m.IFSC, &m.NationalID, &m.Version, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

// SaveCounterparty inserts a directory entry.
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		INSERT INTO counterparties (id, entity_id, entity_type, name, phone, address, base_salary,
			bank_account, ifsc, national_id, version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.EntityID, m.EntityType, m.Name, m.Phone, m.Address, m.BaseSalary,
		m.BankAccount, m.IFSC, m.NationalID, m.Version, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save counterparty %s: %w", m.EntityID, err)
	}
	return nil
}

// FindCounterpartyByID retrieves a directory entry by ID.
func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, id string) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE id = $1;`
	m, err := scanCounterparty(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find counterparty %s: %w", id, err)
	}
	c := mapping.ToDomainCounterparty(m)
	return &c, nil
}

// ListCounterparties retrieves directory entries matching the filter.
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, filter portsrepo.CounterpartyFilter) ([]domain.Counterparty, error) {
	var w where
	if filter.EntityType != "" {
		w.add("entity_type = $%d", string(filter.EntityType))
	}
	if filter.EntityID != "" {
		w.add("entity_id = $%d", filter.EntityID)
	}
	if filter.Name != "" {
		w.add("name = $%d", filter.Name)
	}

	query := `SELECT ` + counterpartyColumns + ` FROM counterparties` + w.String() + ` ORDER BY name, entity_id;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparties: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Counterparty, error) {
		return scanCounterparty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan counterparties: %w", err)
	}
	return mapping.ToDomainCounterpartySlice(modelEntries), nil
}

// UpdateCounterparty overwrites an entry when its stored version matches.
func (r *PgxCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty, expectedVersion int64) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		UPDATE counterparties SET entity_id = $2, entity_type = $3, name = $4, phone = $5, address = $6,
			base_salary = $7, bank_account = $8, ifsc = $9, national_id = $10, version = $11, last_updated_at = $12
		WHERE id = $1 AND version = $13;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.EntityID, m.EntityType, m.Name, m.Phone, m.Address,
		m.BaseSalary, m.BankAccount, m.IFSC, m.NationalID, m.Version, m.LastUpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update counterparty %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, m.ID)
	}
	return nil
}

// DeleteCounterpartiesByEntityID removes every entry of a type sharing the business key.
func (r *PgxCounterpartyRepository) DeleteCounterpartiesByEntityID(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM counterparties WHERE entity_type = $1 AND entity_id = $2;`, string(entityType), entityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete counterparties %s/%s: %w", entityType, entityID, err)
	}
	return int(tag.RowsAffected()), nil
}
