package firestore

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
	"google.golang.org/api/iterator"
)

// CounterpartyRepository stores directory entries.
type CounterpartyRepository struct {
	baseRepository
}

var _ portsrepo.CounterpartyRepositoryFacade = (*CounterpartyRepository)(nil)

func setCounterpartyID(m *models.Counterparty, id string) { m.ID = id }

func byNameThenEntity(a, b models.Counterparty) int {
	return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.EntityID, b.EntityID))
}

func (r *CounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	return r.create(ctx, counterparty.ID, mapping.ToModelCounterparty(counterparty))
}

func (r *CounterpartyRepository) FindCounterpartyByID(ctx context.Context, id string) (*domain.Counterparty, error) {
	m, err := getDoc(ctx, &r.baseRepository, id, setCounterpartyID)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCounterparty(m)
	return &c, nil
}

func (r *CounterpartyRepository) ListCounterparties(ctx context.Context, filter portsrepo.CounterpartyFilter) ([]domain.Counterparty, error) {
	q := r.col().Query
	if filter.EntityType != "" {
		q = q.Where("entityType", "==", string(filter.EntityType))
	}
	if filter.EntityID != "" {
		q = q.Where("entityId", "==", filter.EntityID)
	}
	if filter.Name != "" {
		q = q.Where("name", "==", filter.Name)
	}

	out, err := collect(q.Documents(ctx), setCounterpartyID, byNameThenEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to query counterparties: %w", err)
	}
	return mapping.ToDomainCounterpartySlice(out), nil
}

func (r *CounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty, expectedVersion int64) error {
	return r.replace(ctx, counterparty.ID, expectedVersion, mapping.ToModelCounterparty(counterparty))
}

// DeleteCounterpartiesByEntityID removes every matching document in one transaction.
func (r *CounterpartyRepository) DeleteCounterpartiesByEntityID(ctx context.Context, entityType domain.EntityType, entityID string) (int, error) {
	q := r.col().Where("entityType", "==", string(entityType)).Where("entityId", "==", entityID)
	var removed int
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		removed = 0
		iter := tx.Documents(q)
		defer iter.Stop()
		var refs []*firestore.DocumentRef
		for {
			snap, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				return err
			}
			refs = append(refs, snap.Ref)
		}
		for _, ref := range refs {
			if err := tx.Delete(ref); err != nil {
				return err
			}
		}
		removed = len(refs)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete counterparties %s/%s: %w", entityType, entityID, err)
	}
	return removed, nil
}
