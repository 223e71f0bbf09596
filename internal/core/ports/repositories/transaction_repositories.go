package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// TransactionFilter selects ledger records. Empty fields do not filter.
// Date is an exact match; From and To bound OccurredOn inclusively.
type TransactionFilter struct {
	Date       string
	From       string
	To         string
	EntityID   string
	EntityType domain.EntityType
	Status     domain.Status
}

// TransactionReader defines read operations for ledger records
type TransactionReader interface {
	// FindTransactionByID retrieves a specific record by its unique identifier.
	FindTransactionByID(ctx context.Context, id string) (*domain.TransactionRecord, error)

	// ListTransactions retrieves records matching the filter ordered by date, then creation time.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.TransactionRecord, error)
}

// TransactionWriter defines write operations for ledger records
type TransactionWriter interface {
	// SaveTransaction persists a new record.
	SaveTransaction(ctx context.Context, record domain.TransactionRecord) error

	// UpdateTransaction overwrites every editable field when the stored version equals expectedVersion.
	// The stored version becomes record.Version.
	UpdateTransaction(ctx context.Context, record domain.TransactionRecord, expectedVersion int64) error

	// DeleteTransaction removes a record.
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	StatusTransitioner
}
