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
)

type renewalService struct {
	BaseService
	repo portsrepo.RenewalRepositoryFacade
}

// NewRenewalService creates a new renewal service.
func NewRenewalService(repo portsrepo.RenewalRepositoryFacade, options ...ServiceOption) portssvc.RenewalSvcFacade {
	return &renewalService{
		BaseService: newBaseService(options...),
		repo:        repo,
	}
}

var _ portssvc.RenewalSvcFacade = (*renewalService)(nil)

func (s *renewalService) CreateRenewal(ctx context.Context, req dto.CreateRenewalRequest) (*domain.Renewal, error) {
	now := s.Now()
	r := domain.Renewal{
		ID:            s.NewID(),
		Name:          strings.TrimSpace(req.Name),
		Phone:         strings.TrimSpace(req.Phone),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(req.VehicleNumber)),
		RenewalType:   strings.TrimSpace(req.RenewalType),
		Amount:        req.Amount,
		DueDate:       strings.TrimSpace(req.DueDate),
		Status:        domain.StatusPending,
		AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := r.Validate(); err != nil {
		s.LogWarn(ctx, err, "Invalid renewal")
		return nil, err
	}
	if err := s.repo.SaveRenewal(ctx, r); err != nil {
		s.LogError(ctx, err, "Failed to save renewal")
		return nil, fmt.Errorf("failed to save renewal: %w", err)
	}
	s.LogInfo(ctx, "Renewal created", slog.String("id", r.ID), slog.String("due_date", r.DueDate))
	return &r, nil
}

func (s *renewalService) GetRenewal(ctx context.Context, id string) (*domain.Renewal, error) {
	r, err := s.repo.FindRenewalByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find renewal", slog.String("id", id))
		}
		return nil, err
	}
	return r, nil
}

func (s *renewalService) UpdateRenewal(ctx context.Context, id string, req dto.UpdateRenewalRequest) (*domain.Renewal, error) {
	current, err := s.GetRenewal(ctx, id)
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
	if req.VehicleNumber != nil {
		updated.VehicleNumber = strings.ToUpper(strings.TrimSpace(*req.VehicleNumber))
	}
	if req.RenewalType != nil {
		updated.RenewalType = strings.TrimSpace(*req.RenewalType)
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.DueDate != nil {
		updated.DueDate = strings.TrimSpace(*req.DueDate)
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = s.Now()
	updated.Version = current.Version + 1
	if err := s.repo.UpdateRenewal(ctx, updated, current.Version); err != nil {
		s.LogError(ctx, err, "Failed to update renewal", slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

func (s *renewalService) DeleteRenewal(ctx context.Context, id string) error {
	if err := s.repo.DeleteRenewal(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete renewal", slog.String("id", id))
		}
		return err
	}
	return nil
}

func (s *renewalService) ListRenewalsByMonth(ctx context.Context, year, month int) ([]domain.Renewal, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: invalid month %d/%d", apperrors.ErrValidation, month, year)
	}
	from, to := domain.PeriodBounds(fmt.Sprintf("%04d-%02d", year, month))
	list, err := s.repo.ListRenewals(ctx, portsrepo.RenewalFilter{From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to list renewals")
		return nil, fmt.Errorf("failed to list renewals: %w", err)
	}
	return list, nil
}

func (s *renewalService) ListPendingDue(ctx context.Context, from, to string) ([]domain.Renewal, error) {
	from, to, err := validateRange(from, to)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.ListRenewals(ctx, portsrepo.RenewalFilter{From: from, To: to, Status: domain.StatusPending})
	if err != nil {
		return nil, fmt.Errorf("failed to list due renewals: %w", err)
	}
	return list, nil
}
