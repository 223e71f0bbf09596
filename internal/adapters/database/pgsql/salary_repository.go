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

const salaryColumns = `id, employee_id, name, phone, base_salary::text, working_days::text,
	previous_advance::text, current_advance::text, paid_salary::text, period_key, status,
	version, created_at, last_updated_at`

type PgxSalaryRepository struct {
	BaseRepository
}

func newPgxSalaryRepository(pool *pgxpool.Pool) portsrepo.SalaryRepositoryFacade {
	return &PgxSalaryRepository{
		BaseRepository: BaseRepository{Pool: pool, table: "salaries"},
	}
}

var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

func scanSalary(row pgx.Row) (models.Salary, error) {
	var m models.Salary
	err := row.Scan(
		&m.ID, &m.EmployeeID, &m.Name, &m.Phone, &m.BaseSalary, &m.WorkingDays,
		&m.PreviousAdvance, &m.CurrentAdvance, &m.PaidSalary, &m.PeriodKey, &m.Status,
		&m.Version, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

// SaveSalary inserts a salary row. The (employee_id, period_key) constraint rejects duplicates.
func (r *PgxSalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	m := mapping.ToModelSalary(salary)
	query := `
		INSERT INTO salaries (id, employee_id, name, phone, base_salary, working_days, previous_advance,
			current_advance, paid_salary, period_key, status, version, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.EmployeeID, m.Name, m.Phone, m.BaseSalary, m.WorkingDays, m.PreviousAdvance,
		m.CurrentAdvance, m.PaidSalary, m.PeriodKey, m.Status, m.Version, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save salary for %s/%s: %w", m.EmployeeID, m.PeriodKey, err)
	}
	return nil
}

func (r *PgxSalaryRepository) findOne(ctx context.Context, query string, args ...any) (*domain.SalaryRecord, error) {
	m, err := scanSalary(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find salary: %w", err)
	}
	s := mapping.ToDomainSalary(m)
	return &s, nil
}

// FindSalaryByID retrieves a salary row by ID.
func (r *PgxSalaryRepository) FindSalaryByID(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	return r.findOne(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE id = $1;`, id)
}

// FindSalaryByEmployeePeriod retrieves the row for one employee and period.
func (r *PgxSalaryRepository) FindSalaryByEmployeePeriod(ctx context.Context, employeeID, period string) (*domain.SalaryRecord, error) {
	return r.findOne(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE employee_id = $1 AND period_key = $2;`, employeeID, period)
}

// ListSalaries retrieves salary rows matching the filter.
func (r *PgxSalaryRepository) ListSalaries(ctx context.Context, filter portsrepo.SalaryFilter) ([]domain.SalaryRecord, error) {
	var w where
	if filter.Period != "" {
		w.add("period_key = $%d", filter.Period)
	}
	if filter.EmployeeID != "" {
		w.add("employee_id = $%d", filter.EmployeeID)
	}
	if filter.Status != "" {
		w.add("status = $%d", string(filter.Status))
	}

	query := `SELECT ` + salaryColumns + ` FROM salaries` + w.String() + ` ORDER BY name, employee_id;`
	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	modelSalaries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Salary, error) {
		return scanSalary(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan salaries: %w", err)
	}
	return mapping.ToDomainSalarySlice(modelSalaries), nil
}

// UpdateSalary overwrites a salary row when its stored version matches.
func (r *PgxSalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord, expectedVersion int64) error {
	m := mapping.ToModelSalary(salary)
	query := `
		UPDATE salaries SET employee_id = $2, name = $3, phone = $4, base_salary = $5, working_days = $6,
			previous_advance = $7, current_advance = $8, paid_salary = $9, period_key = $10, status = $11,
			version = $12, last_updated_at = $13
		WHERE id = $1 AND version = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ID, m.EmployeeID, m.Name, m.Phone, m.BaseSalary, m.WorkingDays,
		m.PreviousAdvance, m.CurrentAdvance, m.PaidSalary, m.PeriodKey, m.Status,
		m.Version, m.LastUpdatedAt, expectedVersion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update salary %s: %w", m.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, m.ID)
	}
	return nil
}

// DeleteSalary removes a salary row.
func (r *PgxSalaryRepository) DeleteSalary(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
