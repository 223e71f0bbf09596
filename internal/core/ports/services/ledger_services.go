package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger records
type LedgerReaderSvc interface {
	// GetTransaction retrieves one ledger line.
	GetTransaction(ctx context.Context, id string) (*domain.TransactionRecord, error)

	// ListTransactions returns a day (Date) or an inclusive range (From/To) of ledger lines.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.TransactionRecord, error)

	// ListBalances aggregates the ledger lines of a range into per-entity balances.
	ListBalances(ctx context.Context, params dto.ListBalancesParams) ([]domain.EntityBalance, error)
}

// LedgerWriterSvc defines write operations for ledger records
type LedgerWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.TransactionRecord, error)
	UpdateTransaction(ctx context.Context, id string, req dto.UpdateTransactionRequest) (*domain.TransactionRecord, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
