package firestore

import (
	"cmp"
	"context"
	"fmt"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backoffice/internal/models"
	"github.com/SscSPs/erp_backoffice/internal/utils/mapping"
)

// RenewalRepository stores renewal reminders.
type RenewalRepository struct {
	baseRepository
}

var _ portsrepo.RenewalRepositoryFacade = (*RenewalRepository)(nil)

func setRenewalID(m *models.Renewal, id string) { m.ID = id }

func byDueDateThenName(a, b models.Renewal) int {
	return cmp.Or(cmp.Compare(a.DueDate, b.DueDate), cmp.Compare(a.Name, b.Name))
}

func (r *RenewalRepository) SaveRenewal(ctx context.Context, renewal domain.Renewal) error {
	return r.create(ctx, renewal.ID, mapping.ToModelRenewal(renewal))
}

func (r *RenewalRepository) FindRenewalByID(ctx context.Context, id string) (*domain.Renewal, error) {
	m, err := getDoc(ctx, &r.baseRepository, id, setRenewalID)
	if err != nil {
		return nil, err
	}
	renewal := mapping.ToDomainRenewal(m)
	return &renewal, nil
}

func (r *RenewalRepository) ListRenewals(ctx context.Context, filter portsrepo.RenewalFilter) ([]domain.Renewal, error) {
	q := r.col().Query
	if filter.From != "" {
		q = q.Where("dueDate", ">=", filter.From)
	}
	if filter.To != "" {
		q = q.Where("dueDate", "<=", filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status", "==", string(filter.Status))
	}

	out, err := collect(q.Documents(ctx), setRenewalID, byDueDateThenName)
	if err != nil {
		return nil, fmt.Errorf("failed to query renewals: %w", err)
	}
	return mapping.ToDomainRenewalSlice(out), nil
}

func (r *RenewalRepository) UpdateRenewal(ctx context.Context, renewal domain.Renewal, expectedVersion int64) error {
	return r.replace(ctx, renewal.ID, expectedVersion, mapping.ToModelRenewal(renewal))
}

func (r *RenewalRepository) DeleteRenewal(ctx context.Context, id string) error {
	return r.deleteByID(ctx, id)
}
