// Package sqlite stores records in a single SQLite file through database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Timestamps are stored as RFC 3339 text so they sort and round-trip exactly.
const timeLayout = time.RFC3339Nano

type baseRepository struct {
	db    *sql.DB
	table string
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// missedWrite explains why a guarded write touched no rows.
func (r *baseRepository) missedWrite(ctx context.Context, id string) error {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE id = ?`, r.table)
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		return fmt.Errorf("failed to check %s %s: %w", r.table, id, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

func (r *baseRepository) checkWrite(ctx context.Context, res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return r.missedWrite(ctx, id)
	}
	return nil
}

// TransitionStatus moves a record from one status to another when it is still in from.
func (r *baseRepository) TransitionStatus(ctx context.Context, id string, from, to domain.Status) error {
	query := fmt.Sprintf(`UPDATE %s SET status = ?, version = version + 1, last_updated_at = ? WHERE id = ? AND status = ?`, r.table)
	res, err := r.db.ExecContext(ctx, query, string(to), formatTime(time.Now()), id, string(from))
	if err != nil {
		return fmt.Errorf("failed to move %s %s to %s: %w", r.table, id, to, err)
	}
	return r.checkWrite(ctx, res, id)
}

func (r *baseRepository) deleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, r.table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
		(code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), "UNIQUE"))
}

type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, value any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, value)
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func notFoundOr(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
