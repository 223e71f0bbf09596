package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/metrics"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
	"github.com/SscSPs/erp_backoffice/internal/utils/csvimport"
)

type importService struct {
	BaseService
	salaries       *salaryService
	counterparties *counterpartyService
}

// NewImportService creates the CSV import service. Both variants are insert-only.
func NewImportService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.ImportSvc {
	base := newBaseService(options...)
	return &importService{
		BaseService:    base,
		salaries:       &salaryService{BaseService: base, repo: repos.SalaryRepo, transactions: repos.TransactionRepo},
		counterparties: &counterpartyService{BaseService: base, repo: repos.CounterpartyRepo},
	}
}

var _ portssvc.ImportSvc = (*importService)(nil)

func (s *importService) ImportSalaries(ctx context.Context, period string, r io.Reader) (*dto.ImportResult, error) {
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}
	rows, err := csvimport.ParseRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	result := &dto.ImportResult{Skipped: []dto.ImportRowError{}}
	for i, row := range rows {
		salary, err := csvimport.SalaryFromRow(row, period)
		if err == nil {
			err = s.insertSalary(ctx, salary)
		}
		if err != nil {
			if !isRowError(err) {
				result.Status = fmt.Sprintf("Import stopped at row %d after %d row(s) were saved.", i+1, result.Inserted)
				s.record("salary", result)
				return result, err
			}
			s.LogDebug(ctx, "CSV row skipped", slog.Int("row", i+1), slog.String("reason", err.Error()))
			result.Skipped = append(result.Skipped, dto.ImportRowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	if result.Inserted > 0 {
		result.Status = fmt.Sprintf("%d employee(s) uploaded and salaries calculated successfully.", result.Inserted)
	} else {
		result.Status = "No valid rows found in CSV. Please check the format."
	}
	s.record("salary", result)
	s.LogInfo(ctx, "Salary CSV imported", slog.String("period", period), slog.Int("inserted", result.Inserted), slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *importService) insertSalary(ctx context.Context, salary domain.SalaryRecord) error {
	now := s.Now()
	salary.ID = s.NewID()
	salary.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1}
	accounting.ApplySalary(&salary)
	if err := salary.Validate(); err != nil {
		return err
	}
	return s.salaries.insert(ctx, salary)
}

func (s *importService) ImportEmployees(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, err := csvimport.ParseRows(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	result := &dto.ImportResult{Skipped: []dto.ImportRowError{}}
	for i, row := range rows {
		employee, err := csvimport.EmployeeFromRow(row)
		if err == nil {
			err = s.insertEmployee(ctx, employee)
		}
		if err != nil {
			if !isRowError(err) {
				result.Status = fmt.Sprintf("Import stopped at row %d after %d employee(s) were saved.", i+1, result.Inserted)
				s.record("employee", result)
				return result, err
			}
			s.LogDebug(ctx, "CSV row skipped", slog.Int("row", i+1), slog.String("reason", err.Error()))
			result.Skipped = append(result.Skipped, dto.ImportRowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		result.Inserted++
	}

	if result.Inserted > 0 {
		result.Status = fmt.Sprintf("Successfully uploaded %d employee(s)", result.Inserted)
	} else {
		result.Status = "No new employees were uploaded. They might already exist."
	}
	s.record("employee", result)
	s.LogInfo(ctx, "Employee CSV imported", slog.Int("inserted", result.Inserted), slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

func (s *importService) insertEmployee(ctx context.Context, c domain.Counterparty) error {
	now := s.Now()
	c.ID = s.NewID()
	c.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.counterparties.ensureUnique(ctx, c.EntityType, c.EntityID); err != nil {
		return err
	}
	if err := s.counterparties.repo.SaveCounterparty(ctx, c); err != nil {
		return fmt.Errorf("failed to save employee %s: %w", c.EntityID, err)
	}
	return nil
}

func (s *importService) record(kind string, result *dto.ImportResult) {
	metrics.ImportedRows.WithLabelValues(kind, "inserted").Add(float64(result.Inserted))
	metrics.ImportedRows.WithLabelValues(kind, "skipped").Add(float64(len(result.Skipped)))
}

// isRowError reports whether err only disqualifies the current row.
func isRowError(err error) bool {
	return errors.Is(err, csvimport.ErrRowInvalid) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrDuplicate)
}
