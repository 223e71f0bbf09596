package firestore

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
	"google.golang.org/api/iterator"
)

// SalaryRepository stores salary rows.
type SalaryRepository struct {
	baseRepository
}

var _ portsrepo.SalaryRepositoryFacade = (*SalaryRepository)(nil)

func setSalaryID(m *models.Salary, id string) { m.ID = id }

func byNameThenEmployee(a, b models.Salary) int {
	return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.EmployeeID, b.EmployeeID))
}

func (r *SalaryRepository) employeePeriod(employeeID, period string) firestore.Query {
	return r.col().Where("employeeId", "==", employeeID).Where("periodKey", "==", period).Limit(1)
}

// SaveSalary checks for an existing employee+period row and creates the new one atomically.
func (r *SalaryRepository) SaveSalary(ctx context.Context, salary domain.SalaryRecord) error {
	m := mapping.ToModelSalary(salary)
	ref := r.col().Doc(m.ID)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		iter := tx.Documents(r.employeePeriod(m.EmployeeID, m.PeriodKey))
		defer iter.Stop()
		if _, err := iter.Next(); err == nil {
			return apperrors.ErrDuplicate
		} else if !errors.Is(err, iterator.Done) {
			return err
		}
		return tx.Create(ref, m)
	})
	return r.wrap(err, "save", m.ID)
}

func (r *SalaryRepository) FindSalaryByID(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	m, err := getDoc(ctx, &r.baseRepository, id, setSalaryID)
	if err != nil {
		return nil, err
	}
	s := mapping.ToDomainSalary(m)
	return &s, nil
}

func (r *SalaryRepository) FindSalaryByEmployeePeriod(ctx context.Context, employeeID, period string) (*domain.SalaryRecord, error) {
	out, err := collect(r.employeePeriod(employeeID, period).Documents(ctx), setSalaryID, byNameThenEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to find salary for %s/%s: %w", employeeID, period, err)
	}
	if len(out) == 0 {
		return nil, apperrors.ErrNotFound
	}
	s := mapping.ToDomainSalary(out[0])
	return &s, nil
}

func (r *SalaryRepository) ListSalaries(ctx context.Context, filter portsrepo.SalaryFilter) ([]domain.SalaryRecord, error) {
	q := r.col().Query
	if filter.Period != "" {
		q = q.Where("periodKey", "==", filter.Period)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employeeId", "==", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}

	out, err := collect(q.Documents(ctx), setSalaryID, byNameThenEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to query salaries: %w", err)
	}
	return mapping.ToDomainSalarySlice(out), nil
}

func (r *SalaryRepository) UpdateSalary(ctx context.Context, salary domain.SalaryRecord, expectedVersion int64) error {
	return r.replace(ctx, salary.ID, expectedVersion, mapping.ToModelSalary(salary))
}

func (r *SalaryRepository) DeleteSalary(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
