package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// RenewalSvcFacade defines operations on vehicle and document renewals
type RenewalSvcFacade interface {
	CreateRenewal(ctx context.Context, req dto.CreateRenewalRequest) (*domain.Renewal, error)
	GetRenewal(ctx context.Context, id string) (*domain.Renewal, error)
	UpdateRenewal(ctx context.Context, id string, req dto.UpdateRenewalRequest) (*domain.Renewal, error)
	DeleteRenewal(ctx context.Context, id string) error

	// ListRenewalsByMonth returns renewals falling due in the given calendar month.
	ListRenewalsByMonth(ctx context.Context, year, month int) ([]domain.Renewal, error)

	// ListPendingDue returns PENDING renewals due between from and to inclusive (YYYY-MM-DD).
	ListPendingDue(ctx context.Context, from, to string) ([]domain.Renewal, error)
}
