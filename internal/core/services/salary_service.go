package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
	"github.com/SscSPs/erp_backoffice/internal/utils/accounting"
)

// salaryService implements the SalarySvcFacade interface
type salaryService struct {
	BaseService
	repo         portsrepo.SalaryRepositoryFacade
	transactions portsrepo.TransactionReader
}

// NewSalaryService creates a new payroll service. Ledger advances paid during a period are read
// from transactions when summarising it.
func NewSalaryService(repo portsrepo.SalaryRepositoryFacade, transactions portsrepo.TransactionReader, options ...ServiceOption) portssvc.SalarySvcFacade {
	return &salaryService{
		BaseService:  newBaseService(options...),
		repo:         repo,
		transactions: transactions,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

func (s *salaryService) CreateSalary(ctx context.Context, req dto.CreateSalaryRequest) (*domain.SalaryRecord, error) {
	period := strings.TrimSpace(req.PeriodKey)
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}

	now := s.Now()
	salary := domain.SalaryRecord{
		ID:              s.NewID(),
		EmployeeID:      strings.TrimSpace(req.EmployeeID),
		Name:            strings.TrimSpace(req.Name),
		Phone:           strings.TrimSpace(req.Phone),
		BaseSalary:      req.BaseSalary,
		WorkingDays:     req.WorkingDays,
		PreviousAdvance: req.PreviousAdvance,
		CurrentAdvance:  req.CurrentAdvance,
		PeriodKey:       period,
		Status:          domain.StatusPending,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	accounting.ApplySalary(&salary)
	if err := salary.Validate(); err != nil {
		s.LogWarn(ctx, err, "Invalid salary row")
		return nil, err
	}

	if err := s.insert(ctx, salary); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Salary row created",
		slog.String("id", salary.ID),
		slog.String("employee_id", salary.EmployeeID),
		slog.String("period", period),
		slog.String("paid_salary", salary.PaidSalary.String()))
	return &salary, nil
}

// insert saves a new row unless the employee already has one for the period.
func (s *salaryService) insert(ctx context.Context, salary domain.SalaryRecord) error {
	existing, err := s.repo.FindSalaryByEmployeePeriod(ctx, salary.EmployeeID, salary.PeriodKey)
	switch {
	case err == nil && existing != nil:
		return fmt.Errorf("%w: salary for employee %s in %s", apperrors.ErrDuplicate, salary.EmployeeID, salary.PeriodKey)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("failed to check existing salary: %w", err)
	}

	if err := s.repo.SaveSalary(ctx, salary); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save salary", slog.String("employee_id", salary.EmployeeID))
		}
		return fmt.Errorf("failed to save salary: %w", err)
	}
	return nil
}

func (s *salaryService) GetSalary(ctx context.Context, id string) (*domain.SalaryRecord, error) {
	salary, err := s.repo.FindSalaryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find salary", slog.String("id", id))
		}
		return nil, err
	}
	return salary, nil
}

func (s *salaryService) ListSalaries(ctx context.Context, params dto.ListSalariesParams) ([]domain.SalaryRecord, error) {
	period := strings.TrimSpace(params.Period)
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}
	list, err := s.repo.ListSalaries(ctx, portsrepo.SalaryFilter{Period: period})
	if err != nil {
		s.LogError(ctx, err, "Failed to list salaries", slog.String("period", period))
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	if search == "" {
		return list, nil
	}
	filtered := make([]domain.SalaryRecord, 0, len(list))
	for _, sal := range list {
		if strings.Contains(strings.ToLower(sal.Name), search) || strings.Contains(sal.Phone, search) {
			filtered = append(filtered, sal)
		}
	}
	return filtered, nil
}

func (s *salaryService) PeriodSummary(ctx context.Context, period string) ([]domain.EntityBalance, error) {
	if err := domain.ValidatePeriod(period); err != nil {
		return nil, err
	}
	salaries, err := s.repo.ListSalaries(ctx, portsrepo.SalaryFilter{Period: period})
	if err != nil {
		return nil, fmt.Errorf("failed to list salaries: %w", err)
	}

	entries := make([]domain.BalanceEntry, 0, len(salaries))
	for _, sal := range salaries {
		entries = append(entries, accounting.SalaryEntry(sal))
	}

	if s.transactions != nil {
		from, to := domain.PeriodBounds(period)
		advances, err := s.transactions.ListTransactions(ctx, portsrepo.TransactionFilter{
			From:       from,
			To:         to,
			EntityType: domain.EntityEmployee,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list advances: %w", err)
		}
		for _, t := range advances {
			if t.IsAdvance() {
				entries = append(entries, accounting.TransactionEntry(t, true))
			}
		}
	}

	return accounting.SortedBalances(accounting.Aggregate(entries)), nil
}

func (s *salaryService) UpdateSalary(ctx context.Context, id string, req dto.UpdateSalaryRequest) (*domain.SalaryRecord, error) {
	current, err := s.GetSalary(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkExpectedVersion(req.Version, current.Version); err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		updated.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.BaseSalary != nil {
		updated.BaseSalary = *req.BaseSalary
	}
	if req.WorkingDays != nil {
		updated.WorkingDays = *req.WorkingDays
	}
	if req.PreviousAdvance != nil {
		updated.PreviousAdvance = *req.PreviousAdvance
	}
	if req.CurrentAdvance != nil {
		updated.CurrentAdvance = *req.CurrentAdvance
	}
	accounting.ApplySalary(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = s.Now()
	updated.Version = current.Version + 1
	if err := s.repo.UpdateSalary(ctx, updated, current.Version); err != nil {
		s.LogError(ctx, err, "Failed to update salary", slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

func (s *salaryService) DeleteSalary(ctx context.Context, id string) error {
	if err := s.repo.DeleteSalary(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete salary", slog.String("id", id))
		}
		return err
	}
	return nil
}

func (s *salaryService) RecalculatePeriod(ctx context.Context, period string) (int, error) {
	if err := domain.ValidatePeriod(period); err != nil {
		return 0, err
	}
	salaries, err := s.repo.ListSalaries(ctx, portsrepo.SalaryFilter{Period: period})
	if err != nil {
		return 0, fmt.Errorf("failed to list salaries: %w", err)
	}

	updated := 0
	for _, sal := range salaries {
		next := sal
		accounting.ApplySalary(&next)
		if next.PaidSalary.Equal(sal.PaidSalary) {
			continue
		}
		next.LastUpdatedAt = s.Now()
		next.Version = sal.Version + 1
		if err := s.repo.UpdateSalary(ctx, next, sal.Version); err != nil {
			s.LogError(ctx, err, "Failed to recalculate salary", slog.String("id", sal.ID))
			return updated, fmt.Errorf("failed to update salary %s: %w", sal.ID, err)
		}
		updated++
	}

	s.LogInfo(ctx, "Salaries recalculated", slog.String("period", period), slog.Int("updated", updated), slog.Int("total", len(salaries)))
	return updated, nil
}
