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

const renewalColumns = `id, name, phone, vehicle_number, renewal_type, amount, due_date, status,
	version, created_at, last_updated_at`

// RenewalRepository stores renewal reminders.
type RenewalRepository struct {
	baseRepository
}

var _ portsrepo.RenewalRepositoryFacade = (*RenewalRepository)(nil)

func scanRenewal(row scanner) (models.Renewal, error) {
	var (
		m                models.Renewal
		created, updated string
	)
	err := row.Scan(
		&m.ID, &m.Name, &m.Phone, &m.VehicleNumber, &m.RenewalType, &m.Amount, &m.DueDate, &m.Status,
		&m.Version, &created, &updated,
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

func (r *RenewalRepository) SaveRenewal(ctx context.Context, renewal domain.Renewal) error {
	m := mapping.ToModelRenewal(renewal)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO renewals (`+renewalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Phone, m.VehicleNumber, m.RenewalType, m.Amount, m.DueDate, m.Status,
		m.Version, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save renewal %s: %w", m.ID, err)
	}
	return nil
}

func (r *RenewalRepository) FindRenewalByID(ctx context.Context, id string) (*domain.Renewal, error) {
	m, err := scanRenewal(r.db.QueryRowContext(ctx, `SELECT `+renewalColumns+` FROM renewals WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to find renewal %s", id)
	}
	renewal := mapping.ToDomainRenewal(m)
	return &renewal, nil
}

func (r *RenewalRepository) ListRenewals(ctx context.Context, filter portsrepo.RenewalFilter) ([]domain.Renewal, error) {
	var w where
	if filter.From != "" {
		w.add("due_date >= ?", filter.From)
	}
	if filter.To != "" {
		w.add("due_date <= ?", filter.To)
	}
	if filter.Status != "" {
		w.add("status = ?", string(filter.Status))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+renewalColumns+` FROM renewals`+w.String()+` ORDER BY due_date, name`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query renewals: %w", err)
	}
	defer rows.Close()

	var out []models.Renewal
	for rows.Next() {
		m, err := scanRenewal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan renewal: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate renewals: %w", err)
	}
	return mapping.ToDomainRenewalSlice(out), nil
}

func (r *RenewalRepository) UpdateRenewal(ctx context.Context, renewal domain.Renewal, expectedVersion int64) error {
	m := mapping.ToModelRenewal(renewal)
	res, err := r.db.ExecContext(ctx, `
		UPDATE renewals SET name = ?, phone = ?, vehicle_number = ?, renewal_type = ?, amount = ?,
			due_date = ?, status = ?, version = ?, last_updated_at = ?
		WHERE id = ? AND version = ?`,
		m.Name, m.Phone, m.VehicleNumber, m.RenewalType, m.Amount,
		m.DueDate, m.Status, m.Version, formatTime(m.LastUpdatedAt), m.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update renewal %s: %w", m.ID, err)
	}
	return r.checkWrite(ctx, res, m.ID)
}

func (r *RenewalRepository) DeleteRenewal(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
