package repositories

import (
	"context"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
)

// CounterpartyFilter selects directory entries. Name is an exact match.
type CounterpartyFilter struct {
	EntityType domain.EntityType
	EntityID   string
	Name       string
}

// CounterpartyReader defines read operations for the counterparty directory
type CounterpartyReader interface {
	// FindCounterpartyByID retrieves an entry by its unique identifier.
	FindCounterpartyByID(ctx context.Context, id string) (*domain.Counterparty, error)

	// ListCounterparties retrieves entries matching the filter ordered by name.
	ListCounterparties(ctx context.Context, filter CounterpartyFilter) ([]domain.Counterparty, error)
}

// CounterpartyWriter defines write operations for the counterparty directory
type CounterpartyWriter interface {
	// SaveCounterparty persists a new entry.
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error

	// UpdateCounterparty overwrites every editable field when the stored version equals expectedVersion.
	UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty, expectedVersion int64) error

	// DeleteCounterpartiesByEntityID removes every entry of the given type sharing entityID
	// and returns how many were removed.
	DeleteCounterpartiesByEntityID(ctx context.Context, entityType domain.EntityType, entityID string) (int, error)
}

// CounterpartyRepositoryFacade combines all directory repository interfaces
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter
}
