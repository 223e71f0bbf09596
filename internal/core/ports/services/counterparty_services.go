package services

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// CounterpartyReaderSvc defines read operations for the counterparty directory
type CounterpartyReaderSvc interface {
	GetCounterparty(ctx context.Context, id string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, params dto.ListCounterpartiesParams) ([]domain.Counterparty, error)

	// ResolveCounterparty finds the directory entry a ledger line refers to, by entity ID when
	// given and by exact name otherwise.
	ResolveCounterparty(ctx context.Context, entityType domain.EntityType, entityID, name string) (*domain.Counterparty, error)
}

// CounterpartyWriterSvc defines write operations for the counterparty directory
type CounterpartyWriterSvc interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest) (*domain.Counterparty, error)
	UpdateCounterparty(ctx context.Context, id string, req dto.UpdateCounterpartyRequest) (*domain.Counterparty, error)

	// DeleteCounterparty removes the entry and every other entry sharing its entity ID.
	DeleteCounterparty(ctx context.Context, id string) (int, error)
}

// CounterpartySvcFacade combines all directory service interfaces
type CounterpartySvcFacade interface {
	CounterpartyReaderSvc
	CounterpartyWriterSvc
}
