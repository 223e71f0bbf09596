package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// SalaryFilter selects salary rows. Empty fields do not filter.
type SalaryFilter struct {
	Period     string
	EmployeeID string
	Status     domain.Status
}

// SalaryReader defines read operations for salary rows
type SalaryReader interface {
	// FindSalaryByID retrieves a salary row by its unique identifier.
	FindSalaryByID(ctx context.Context, id string) (*domain.SalaryRecord, error)

	// FindSalaryByEmployeePeriod retrieves the row for one employee and period.
	FindSalaryByEmployeePeriod(ctx context.Context, employeeID, period string) (*domain.SalaryRecord, error)

	// ListSalaries retrieves rows matching the filter ordered by name.
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]domain.SalaryRecord, error)
}

// SalaryWriter defines write operations for salary rows
type SalaryWriter interface {
	// SaveSalary persists a new row. A second row for the same employee and period
	// returns apperrors.ErrDuplicate.
	SaveSalary(ctx context.Context, salary domain.SalaryRecord) error

	// UpdateSalary overwrites every editable field when the stored version equals expectedVersion.
	UpdateSalary(ctx context.Context, salary domain.SalaryRecord, expectedVersion int64) error

	// DeleteSalary removes a row.
	DeleteSalary(ctx context.Context, id string) error
}

// SalaryRepositoryFacade combines all salary repository interfaces
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
	StatusTransitioner
}
