package dto

import "github.com/SscSPs/erp_backoffice/internal/core/domain"

// ListBalancesParams selects the ledger range to aggregate.
type ListBalancesParams struct {
	From       string `form:"from"`
	To         string `form:"to"`
	EntityType string `form:"entityType" binding:"omitempty,oneof=EMPLOYEE MEDIATOR SUPPLIER"`
}

// ListBalancesResponse is the aggregated per-entity view.
type ListBalancesResponse struct {
	Balances []domain.EntityBalance `json:"balances"`
}

// DispatchResult reports the outcome of a notification together with the refreshed view
// of the record's day (transactions), period (salaries) or month (renewals).
type DispatchResult struct {
	Kind     string                 `json:"kind"`
	RecordID string                 `json:"recordId"`
	Status   string                 `json:"status"`
	Sent     bool                   `json:"sent"`
	Error    string                 `json:"error,omitempty"`
	Balances []domain.EntityBalance `json:"balances"`
}

// ImportResult reports a CSV import. Rows written before a failure stay written.
type ImportResult struct {
	Inserted int              `json:"inserted"`
	Skipped  []ImportRowError `json:"skipped"`
	Status   string           `json:"status"`
}

// ImportRowError is a skipped CSV row. Row is 1-based.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// RelayResponse is the JSON body of the SMS relay endpoint.
type RelayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    string `json:"data,omitempty"`
}
