// Package models holds the persisted shapes of records. Amounts are stored as decimal strings
// so no store rounds them through float64.
package models

import "time"

// AuditFields are carried by every stored record.
type AuditFields struct {
	CreatedAt     time.Time `firestore:"createdAt"`
	LastUpdatedAt time.Time `firestore:"lastUpdatedAt"`
	Version       int64     `firestore:"version"`
}
