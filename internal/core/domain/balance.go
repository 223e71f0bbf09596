package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceEntry is one row fed to the ledger aggregator. Transactions and salary rows are both
// normalised into entries before folding.
type BalanceEntry struct {
	EntityID    string
	EntityType  EntityType
	DisplayName string
	Phone       string
	Address     string
	BaseSalary  *decimal.Decimal // nil when the row carries no salary information
	Amount      decimal.Decimal  // contributes to Balance
	Advance     decimal.Decimal  // contributes to TotalAdvance
	WorkingDays decimal.Decimal  // contributes to TotalWorkingDays
	CreatedAt   time.Time
}

// EntityBalance is the derived per-counterparty summary. It is never stored.
type EntityBalance struct {
	EntityID         string          `json:"entityId"`
	EntityType       EntityType      `json:"entityType"`
	DisplayName      string          `json:"displayName"`
	Balance          decimal.Decimal `json:"balance"`
	TotalAdvance     decimal.Decimal `json:"totalAdvance"`
	TotalWorkingDays decimal.Decimal `json:"totalWorkingDays"`
	BaseSalary       decimal.Decimal `json:"baseSalary"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	EntryCount       int             `json:"entryCount"`
}
