package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	// Version is incremented on every persisted write and guards updates against lost writes.
	Version int64 `json:"version"`
}

// Status is the notification status shared by every notifiable record.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusSent    Status = "SENT"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusSent
}

// CanTransitionTo reports whether a record may move from s to next.
// The only legal moves are PENDING -> SENT and SENT -> PENDING (rollback).
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusSent
	case StatusSent:
		return next == StatusPending
	default:
		return false
	}
}

// EntityType identifies the kind of counterparty on a record.
type EntityType string

const (
	EntityEmployee EntityType = "EMPLOYEE"
	EntityMediator EntityType = "MEDIATOR"
	EntitySupplier EntityType = "SUPPLIER"
	EntityOther    EntityType = "OTHER"
)

// IsValid reports whether t is a known entity type.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityEmployee, EntityMediator, EntitySupplier, EntityOther:
		return true
	}
	return false
}

// HasDirectory reports whether counterparties of this type are kept in the directory.
func (t EntityType) HasDirectory() bool {
	return t.IsValid() && t != EntityOther
}

// DateLayout is the calendar date format used for every date-like field.
const DateLayout = "2006-01-02"

// PeriodLayout is the salary period key format.
const PeriodLayout = "2006-01"

// PeriodBounds returns the inclusive YYYY-MM-DD range covering a YYYY-MM period.
// Dates are compared as strings, so "-31" safely closes every month.
func PeriodBounds(period string) (from, to string) {
	return period + "-01", period + "-31"
}
