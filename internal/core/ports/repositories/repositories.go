package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// RepositoryProvider holds all repository interfaces needed by services.
// Every store adapter (postgres, sqlite, firestore) returns one of these.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepositoryFacade
	SalaryRepo       SalaryRepositoryFacade
	CounterpartyRepo CounterpartyRepositoryFacade
	RenewalRepo      RenewalRepositoryFacade
}

// StatusTransitioner performs the conditional status write used by the dispatcher.
type StatusTransitioner interface {
	// TransitionStatus moves record id from one status to another and bumps its version.
	// It returns apperrors.ErrConflict when the stored status is not from, and
	// apperrors.ErrNotFound when the record does not exist.
	TransitionStatus(ctx context.Context, id string, from, to domain.Status) error
}
