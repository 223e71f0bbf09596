package domain

import "github.com/shopspring/decimal"

// NotificationKind names the collection a notifiable record lives in.
type NotificationKind string

const (
	KindTransaction NotificationKind = "TRANSACTION"
	KindSalary      NotificationKind = "SALARY"
	KindRenewal     NotificationKind = "RENEWAL"
)

// IsValid reports whether k is a known notification kind.
func (k NotificationKind) IsValid() bool {
	switch k {
	case KindTransaction, KindSalary, KindRenewal:
		return true
	}
	return false
}

// Message is the payload handed to the messaging gateway.
type Message struct {
	Phone  string          `json:"phone"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

// Notification is the dispatcher's view of a notifiable record.
type Notification struct {
	Kind     NotificationKind `json:"kind"`
	RecordID string           `json:"recordId"`
	Status   Status           `json:"status"`
	Version  int64            `json:"version"`
	Message  Message          `json:"message"`
}
