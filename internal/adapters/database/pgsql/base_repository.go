package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool  *pgxpool.Pool
	table string
}

// missedWrite explains why a guarded write touched no rows.
func (r *BaseRepository) missedWrite(ctx context.Context, id string) error {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, r.table)
	if err := r.Pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check %s %s: %w", r.table, id, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

// TransitionStatus moves a record from one status to another when it is still in from.
func (r *BaseRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $3, version = version + 1, last_updated_at = $4
		WHERE id = $1 AND status = $2;
	`, r.table)
	tag, err := r.Pool.Exec(ctx, query, id, string(from), string(to), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to move %s %s to %s: %w", r.table, id, to, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missedWrite(ctx, id)
	}
	return nil
}

// deleteByID removes one row by primary key.
func (r *BaseRepository) deleteByID(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1;`, r.table)
	tag, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// where accumulates positional filter clauses.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, value any) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	s := " WHERE " + w.clauses[0]
	for _, c := range w.clauses[1:] {
		s += " AND " + c
	}
	return s
}
