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

const salaryColumns = `id, employee_id, name, phone, base_salary, working_days, previous_advance,
	current_advance, paid_salary, period_key, status, version, created_at, last_updated_at`

// SalaryRepository stores salary rows.
type SalaryRepository struct {
	baseRepository
}

var _ portsrepo.SalaryRepositoryFacade = (*SalaryRepository)(nil)

func scanSalary(row scanner) (models.Salary, error) {
	var (
		m                models.Salary
		created, updated string
	)
	err := row.Scan(
		&m.ID, &m.EmployeeID, &m.Name, &m.Phone, &m.BaseSalary, &m.WorkingDays, &m.PreviousAdvance,
		&m.CurrentAdvance, &m.PaidSalary, &m.PeriodKey, &m.Status, &m.Version, &created, &updated,
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

func (r *SalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	m := mapping.ToModelSalary(salary)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO salaries (`+salaryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.EmployeeID, m.Name, m.Phone, m.BaseSalary, m.WorkingDays, m.PreviousAdvance,
		m.CurrentAdvance, m.PaidSalary, m.PeriodKey, m.Status, m.Version, formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save salary for %s/%s: %w", m.EmployeeID, m.PeriodKey, err)
	}
	return nil
}

func (r *SalaryRepository) FindSalaryByID(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	m, err := scanSalary(r.db.QueryRowContext(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "failed to find salary %s", id)
	}
	s := mapping.ToDomainSalary(m)
	return &s, nil
}

func (r *SalaryRepository) FindSalaryByEmployeePeriod(ctx context.Context, employeeID, period string) (*domain.SalaryRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+salaryColumns+` FROM salaries WHERE employee_id = ? AND period_key = ?`, employeeID, period)
	m, err := scanSalary(row)
	if err != nil {
		return nil, notFoundOr(err, "failed to find salary for %s/%s", employeeID, period)
	}
	s := mapping.ToDomainSalary(m)
	return &s, nil
}

func (r *SalaryRepository) ListSalaries(ctx context.Context, filter portsrepo.SalaryFilter) ([]domain.SalaryRecord, error) {
	var w where
	if filter.Period != "" {
		w.add("period_key = ?", filter.Period)
	}
	if filter.EmployeeID != "" {
		w.add("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		w.add("status = ?", string(filter.Status))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+salaryColumns+` FROM salaries`+w.String()+` ORDER BY name, employee_id`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	defer rows.Close()

	var out []models.Salary
	for rows.Next() {
		m, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salaries: %w", err)
	}
	return mapping.ToDomainSalarySlice(out), nil
}

func (r *SalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord, expectedVersion int64) error {
	m := mapping.ToModelSalary(salary)
	res, err := r.db.ExecContext(ctx, `
		UPDATE salaries SET employee_id = ?, name = ?, phone = ?, base_salary = ?, working_days = ?,
			previous_advance = ?, current_advance = ?, paid_salary = ?, period_key = ?, status = ?,
			version = ?, last_updated_at = ?
		WHERE id = ? AND version = ?`,
		m.EmployeeID, m.Name, m.Phone, m.BaseSalary, m.WorkingDays,
		m.PreviousAdvance, m.CurrentAdvance, m.PaidSalary, m.PeriodKey, m.Status,
		m.Version, formatTime(m.LastUpdatedAt), m.ID, expectedVersion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update salary %s: %w", m.ID, err)
	}
	return r.checkWrite(ctx, res, m.ID)
}

func (r *SalaryRepository) DeleteSalary(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
