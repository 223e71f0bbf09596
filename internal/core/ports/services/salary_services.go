package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// SalaryReaderSvc defines read operations for payroll
type SalaryReaderSvc interface {
	GetSalary(ctx context.Context, id string) (*domain.SalaryRecord, error)
	ListSalaries(ctx context.Context, params dto.ListSalariesParams) ([]domain.SalaryRecord, error)

	// PeriodSummary aggregates a period's salary rows with the advances paid out during it.
	PeriodSummary(ctx context.Context, period string) ([]domain.EntityBalance, error)
}

// SalaryWriterSvc defines write operations for payroll
type SalaryWriterSvc interface {
	CreateSalary(ctx context.Context, req dto.CreateSalaryRequest) (*domain.SalaryRecord, error)
	UpdateSalary(ctx context.Context, id string, req dto.UpdateSalaryRequest) (*domain.SalaryRecord, error)
	DeleteSalary(ctx context.Context, id string) error

	// RecalculatePeriod recomputes PaidSalary for every row of the period and returns how many changed.
	RecalculatePeriod(ctx context.Context, period string) (int, error)
}

// SalarySvcFacade combines all payroll service interfaces
type SalarySvcFacade interface {
	SalaryReaderSvc
	SalaryWriterSvc
}
