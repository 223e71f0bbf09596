package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// RenewalFilter selects renewals whose DueDate falls inside [From, To].
type RenewalFilter struct {
	From   string
	To     string
	Status domain.Status
}

// RenewalReader defines read operations for renewals
type RenewalReader interface {
	FindRenewalByID(ctx context.Context, id string) (*domain.Renewal, error)
	ListRenewals(ctx context.Context, filter RenewalFilter) ([]domain.Renewal, error)
}

// RenewalWriter defines write operations for renewals
type RenewalWriter interface {
	SaveRenewal(ctx context.Context, renewal domain.Renewal) error
	UpdateRenewal(ctx context.Context, renewal domain.Renewal, expectedVersion int64) error
	DeleteRenewal(ctx context.Context, id string) error
}

// RenewalRepositoryFacade combines all renewal repository interfaces
type RenewalRepositoryFacade interface {
	RenewalReader
	RenewalWriter
	StatusTransitioner
}
