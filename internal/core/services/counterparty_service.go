package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// counterpartyService implements the CounterpartySvcFacade interface. One service covers
// employees, mediators and suppliers.
type counterpartyService struct {
	BaseService
	repo portsrepo.CounterpartyRepositoryFacade
}

// NewCounterpartyService creates a new directory service.
func NewCounterpartyService(repo portsrepo.CounterpartyRepositoryFacade, options ...ServiceOption) portssvc.CounterpartySvcFacade {
	return &counterpartyService{
		BaseService: newBaseService(options...),
		repo:        repo,
	}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error) {
	now := s.Now()
	c := domain.Counterparty{
		ID:          s.NewID(),
		EntityID:    strings.TrimSpace(req.EntityID),
		EntityType:  req.EntityType,
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     req.Address,
		BaseSalary:  req.BaseSalary,
		BankAccount: req.BankAccount,
		IFSC:        req.IFSC,
		NationalID:  req.NationalID,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := c.Validate(); err != nil {
		s.LogWarn(ctx, err, "Invalid counterparty")
		return nil, err
	}

	if err := s.ensureUnique(ctx, c.EntityType, c.EntityID); err != nil {
		return nil, err
	}

	if err := s.repo.SaveCounterparty(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.String("entity_id", c.EntityID))
		return nil, fmt.Errorf("failed to save counterparty: %w", err)
	}

	s.LogInfo(ctx, "Counterparty created", slog.String("id", c.ID), slog.String("entity_type", string(c.EntityType)))
	return &c, nil
}

func (s *counterpartyService) ensureUnique(ctx context.Context, entityType domain.EntityType, entityID string) error {
	existing, err := s.repo.ListCounterparties(ctx, portsrepo.CounterpartyFilter{EntityType: entityType, EntityID: entityID})
	if err != nil {
		return fmt.Errorf("failed to check for existing %s %s: %w", entityType, entityID, err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s with ID %s", apperrors.ErrDuplicate, strings.ToLower(string(entityType)), entityID)
	}
	return nil
}

func (s *counterpartyService) GetCounterparty(ctx context.Context, id string) (*domain.Counterparty, error) {
	c, err := s.repo.FindCounterpartyByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find counterparty", slog.String("id", id))
		}
		return nil, err
	}
	return c, nil
}

func (s *counterpartyService) ListCounterparties(ctx context.Context, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error) {
	list, err := s.repo.ListCounterparties(ctx, portsrepo.CounterpartyFilter{EntityType: domain.EntityType(params.EntityType)})
	if err != nil {
		s.LogError(ctx, err, "Failed to list counterparties")
		return nil, fmt.Errorf("failed to list counterparties: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(params.Search))
	if search == "" {
		return list, nil
	}
	filtered := make([]domain.Counterparty, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(c.Phone, search) ||
			strings.Contains(strings.ToLower(c.EntityID), search) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (s *counterpartyService) ResolveCounterparty(ctx context.Context, entityType domain.EntityType, entityID, name string) (*domain.Counterparty, error) {
	filter := portsrepo.CounterpartyFilter{EntityType: entityType}
	entityID, name = strings.TrimSpace(entityID), strings.TrimSpace(name)
	switch {
	case entityID != "":
		filter.EntityID = entityID
	case name != "":
		filter.Name = name
	default:
		return nil, fmt.Errorf("%w: receiver is required", apperrors.ErrValidation)
	}

	list, err := s.repo.ListCounterparties(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", strings.ToLower(string(entityType)), err)
	}
	if len(list) == 0 {
		return nil, apperrors.ErrNotFound
	}
	// Several documents may share an entity ID; the most recently updated one describes it best.
	sort.SliceStable(list, func(i, j int) bool { return list[i].LastUpdatedAt.After(list[j].LastUpdatedAt) })
	return &list[0], nil
}

func (s *counterpartyService) UpdateCounterparty(ctx context.Context, id string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error) {
	current, err := s.GetCounterparty(ctx, id)
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
	if req.Address != nil {
		updated.Address = *req.Address
	}
	if req.BaseSalary != nil {
		updated.BaseSalary = *req.BaseSalary
	}
	if req.BankAccount != nil {
		updated.BankAccount = *req.BankAccount
	}
	if req.IFSC != nil {
		updated.IFSC = *req.IFSC
	}
	if req.NationalID != nil {
		updated.NationalID = *req.NationalID
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.LastUpdatedAt = s.Now()
	updated.Version = current.Version + 1
	if err := s.repo.UpdateCounterparty(ctx, updated, current.Version); err != nil {
		s.LogError(ctx, err, "Failed to update counterparty", slog.String("id", id))
		return nil, err
	}
	return &updated, nil
}

func (s *counterpartyService) DeleteCounterparty(ctx context.Context, id string) (int, error) {
	current, err := s.GetCounterparty(ctx, id)
	if err != nil {
		return 0, err
	}
	n, err := s.repo.DeleteCounterpartiesByEntityID(ctx, current.EntityType, current.EntityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete counterparty", slog.String("entity_id", current.EntityID))
		return 0, err
	}
	s.LogInfo(ctx, "Counterparty deleted", slog.String("entity_id", current.EntityID), slog.Int("documents", n))
	return n, nil
}
