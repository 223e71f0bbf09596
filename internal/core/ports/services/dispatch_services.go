package services

import (
	"context"
	"io"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/dto"
)

// DispatchSvc sends a notification for one record and records the outcome.
type DispatchSvc interface {
	// Dispatch returns a result carrying the refreshed view whenever the record was found,
	// including alongside ErrAlreadySent, ErrConflict and ErrDispatchFailed.
	Dispatch(ctx context.Context, kind domain.NotificationKind, id string) (*dto.DispatchResult, error)
}

// ImportSvc loads header-less CSV files.
type ImportSvc interface {
	// ImportSalaries inserts one salary row per CSV row for period. Existing employee+period
	// rows are skipped.
	ImportSalaries(ctx context.Context, period string, r io.Reader) (*dto.ImportResult, error)

	// ImportEmployees inserts employees missing from the directory. Existing IDs are skipped.
	ImportEmployees(ctx context.Context, r io.Reader) (*dto.ImportResult, error)
}
