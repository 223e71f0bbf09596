// Package firestore keeps each record type in its own Firestore collection, keyed by record ID.
package firestore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	transactionsCollection   = "transactions"
	salariesCollection       = "salaries"
	counterpartiesCollection = "counterparties"
	renewalsCollection       = "renewals"
)

type baseRepository struct {
	client     *firestore.Client
	collection string
}

func (r *baseRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// create writes a new document and fails if the ID is taken.
func (r *baseRepository) create(ctx context.Context, id string, doc any) error {
	if _, err := r.col().Doc(id).Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save %s %s: %w", r.collection, id, err)
	}
	return nil
}

// replace overwrites a document inside a transaction when its stored version matches.
func (r *baseRepository) replace(ctx context.Context, id string, expectedVersion int64, doc any) error {
	ref := r.col().Doc(id)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrNotFound
			}
			return err
		}
		version, err := snap.DataAt("version")
		if err != nil {
			return err
		}
		if v, ok := version.(int64); !ok || v != expectedVersion {
			return apperrors.ErrConflict
		}
		return tx.Set(ref, doc)
	})
	return r.wrap(err, "update", id)
}

// TransitionStatus moves a record from one status to another when it is still in from.
func (r *baseRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	ref := r.col().Doc(id)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrNotFound
			}
			return err
		}
		current, err := snap.DataAt("status")
		if err != nil {
			return err
		}
		if current != string(from) {
			return apperrors.ErrConflict
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(to)},
			{Path: "version", Value: firestore.Increment(1)},
			{Path: "lastUpdatedAt", Value: time.Now().UTC()},
		})
	})
	return r.wrap(err, "transition", id)
}

func (r *baseRepository) deleteByID(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete %s %s: %w", r.collection, id, err)
	}
	return nil
}

func (r *baseRepository) wrap(err error, op, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return err
	default:
		return fmt.Errorf("failed to %s %s %s: %w", op, r.collection, id, err)
	}
}

// getDoc loads one document into M and hands back its ID through setID.
func getDoc[M any](ctx context.Context, r *baseRepository, id string, setID func(*M, string)) (M, error) {
	var m M
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return m, apperrors.ErrNotFound
		}
		return m, fmt.Errorf("failed to find %s %s: %w", r.collection, id, err)
	}
	if err := snap.DataTo(&m); err != nil {
		return m, fmt.Errorf("failed to decode %s %s: %w", r.collection, id, err)
	}
	setID(&m, snap.Ref.ID)
	return m, nil
}

// collect drains an iterator into Ms, sorted with cmp. Ordering is done here so that
// equality filters never need a composite index.
func collect[M any](iter *firestore.DocumentIterator, setID func(*M, string), cmp func(a, b M) int) ([]M, error) {
	defer iter.Stop()
	var out []M
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var m M
		if err := snap.DataTo(&m); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", snap.Ref.ID, err)
		}
		setID(&m, snap.Ref.ID)
		out = append(out, m)
	}
	slices.SortStableFunc(out, cmp)
	return out, nil
}
