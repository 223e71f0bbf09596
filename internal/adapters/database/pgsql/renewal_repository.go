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

const renewalColumns = `id, name, phone, vehicle_number, renewal_type, amount::text, due_date, status,
	version, created_at, last_updated_at`

type PgxRenewalRepository struct {
	BaseRepository
}

func newPgxRenewalRepository(pool *pgxpool.Pool) portsrepo.RenewalRepositoryFacade {
	return &PgxRenewalRepository{
		BaseRepository: BaseRepository{Pool: pool, table: "renewals"},
	}
}

var _ portsrepo.RenewalRepositoryFacade = (*PgxRenewalRepository)(nil)

func scanRenewal(row pgx.Row) (models.Renewal, error) {
	var m models.Renewal
	err := row.Scan(
		&m.ID, &m.Name, &m.Phone, &m.VehicleNumber, &m.RenewalType, &m.Amount, &m.DueDate, &m.Status,
		&m.Version, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxRenewalRepository) SaveRenewal(ctx context.Context, renewal domain.Renewal) error {
	m := mapping.ToModelRenewal(renewal)
	query := `
		INSERT INTO renewals (id, name, phone, vehicle_number, renewal_type, amount, due_date, status,
			version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.Name, m.Phone, m.VehicleNumber, m.RenewalType, m.Amount, m.DueDate, m.Status,
		m.Version, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save renewal %s: %w", m.ID, err)
	}
	return nil
}

func (r *PgxRenewalRepository) FindRenewalByID(ctx context.Context, id string) (*domain.Renewal, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewals WHERE id = $1;`
	m, err := scanRenewal(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find renewal %s: %w", id, err)
	}
	renewal := mapping.ToDomainRenewal(m)
	return &renewal, nil
}

func (r *PgxRenewalRepository) ListRenewals(ctx context.Context, filter portsrepo.RenewalFilter) ([]domain.Renewal, error) {
	var w where
	if filter.From != "" {
		w.add("due_date >= $%d", filter.From)
	}
	if filter.To != "" {
		w.add("due_date <= $%d", filter.To)
	}
	if filter.Status != "" {
		w.add("status = $%d", string(filter.Status))
	}

	query := `SELECT ` + renewalColumns + ` FROM renewals` + w.String() + ` ORDER BY due_date, name;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query renewals: %w", err)
	}
	defer rows.Close()

	modelRenewals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Renewal, error) {
		return scanRenewal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan renewals: %w", err)
	}
	return mapping.ToDomainRenewalSlice(modelRenewals), nil
}

func (r *PgxRenewalRepository) UpdateRenewal(ctx context.Context, renewal domain.Renewal, expectedVersion int64) error {
	m := mapping.ToModelRenewal(renewal)
	query := `
		UPDATE renewals SET name = $2, phone = $3, vehicle_number = $4, renewal_type = $5, amount = $6,
			due_date = $7, status = $8, version = $9, last_updated_at = $10
		WHERE id = $1 AND version = $11;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.Name, m.Phone, m.VehicleNumber, m.RenewalType, m.Amount,
		m.DueDate, m.Status, m.Version, m.LastUpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update renewal %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, m.ID)
	}
	return nil
}

func (r *PgxRenewalRepository) DeleteRenewal(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
