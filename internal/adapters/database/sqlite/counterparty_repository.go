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

const counterpartyColumns = `id, entity_id, entity_type, name, phone, address, base_salary,
	bank_account, ifsc, national_id, version, created_at, last_updated_at`

// CounterpartyRepository stores directory entries.
type CounterpartyRepository struct {
	baseRepository
}

var _ portsrepo.CounterpartyRepositoryFacade = (*CounterpartyRepository)(nil)

func scanCounterparty(row scanner) (models.Counterparty, error) {
	var (
		m                models.Counterparty
		created, updated string
	)
	err := row.Scan(
		&m.ID, &m.EntityID, &m.EntityType, &m.Name, &m.Phone, &m.Address, &m.BaseSalary,
		&m.BankAccount, &m.IFSC, &m.NationalID, &m.Version, &created, &updated,
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

func (r *CounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO counterparties (`+counterpartyColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.EntityID, m.EntityType, m.Name, m.Phone, m.Address, m.BaseSalary,
		m.BankAccount, m.IFSC, m.NationalID, m.Version, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save counterparty %s: %w", m.EntityID, err)
	}
	return nil
}

func (r *CounterpartyRepository) FindCounterpartyByID(ctx context.Context, id string) (*domain.Counterparty, error) {
	m, err := scanCounterparty(r.db.QueryRowContext(ctx, `SELECT `+counterpartyColumns+` FROM counterparties WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to find counterparty %s", id)
	}
	c := mapping.ToDomainCounterparty(m)
	return &c, nil
}

func (r *CounterpartyRepository) ListCounterparties(ctx context.Context, filter portsrepo.CounterpartyFilter) ([]domain.Counterparty, error) {
	var w where
	if filter.EntityType != "" {
		w.add("entity_type = ?", string(filter.EntityType))
	}
	if filter.EntityID != "" {
		w.add("entity_id = ?", filter.EntityID)
	}
	if filter.Name != "" {
		w.add("name = ?", filter.Name)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+counterpartyColumns+` FROM counterparties`+w.String()+` ORDER BY name, entity_id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparties: %w", err)
	}
	defer rows.Close()

	var out []models.Counterparty
	for rows.Next() {
		m, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan counterparty: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate counterparties: %w", err)
	}
	return mapping.ToDomainCounterpartySlice(out), nil
}

func (r *CounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty, expectedVersion int64) error {
	m := mapping.ToModelCounterparty(counterparty)
	res, err := r.db.ExecContext(ctx, `
		UPDATE counterparties SET entity_id = ?, entity_type = ?, name = ?, phone = ?, address = ?,
			base_salary = ?, bank_account = ?, ifsc = ?, national_id = ?, version = ?, last_updated_at = ?
		WHERE id = ? AND version = ?`,
		m.EntityID, m.EntityType, m.Name, m.Phone, m.Address,
		m.BaseSalary, m.BankAccount, m.IFSC, m.NationalID, m.Version, formatTime(m.LastUpdatedAt),
		m.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update counterparty %s: %w", m.ID, err)
	}
	return r.checkWrite(ctx, res, m.ID)
}

func (r *CounterpartyRepository) DeleteCounterpartiesByEntityID(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM counterparties WHERE entity_type = ? AND entity_id = ?`, string(entityType), entityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete counterparties %s/%s: %w", entityType, entityID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(n), nil
}
