package domain

import "github.com/shopspring/decimal"

// PaymentType indicates the direction of a ledger line.
type PaymentType string

const (
	PaymentTypePayment       PaymentType = "PAYMENT"
	PaymentTypeReceipt       PaymentType = "RECEIPT"
	PaymentTypeMiscellaneous PaymentType = "MISCELLANEOUS"
)

// TransactionRecord is one payment, receipt or advance between the business and a counterparty.
type TransactionRecord struct {
	ID          string          `json:"id"`
	EntityID    string          `json:"entityId"` // Blank for ad-hoc OTHER receivers
	EntityType  EntityType      `json:"entityType" validate:"required,oneof=EMPLOYEE MEDIATOR SUPPLIER OTHER"`
	EntityName  string          `json:"entityName" validate:"required_unless=EntityType OTHER"`
	Sender      string          `json:"sender" validate:"required"`
	PaymentType PaymentType     `json:"paymentType" validate:"required,oneof=PAYMENT RECEIPT MISCELLANEOUS"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Reason      string          `json:"reason" validate:"required"`
	Phone       string          `json:"phone"`
	OccurredOn  string          `json:"occurredOn" validate:"required,datetime=2006-01-02"`
	Status      Status          `json:"status" validate:"required,oneof=PENDING SENT"`
	AuditFields
}

// Validate checks the record's required fields and enum values.
func (t TransactionRecord) Validate() error {
	return Validate(t)
}

// IsAdvance reports whether the record is an advance paid out to an employee or mediator.
// Advances feed the salary-flow totals; every other record only moves the running balance.
func (t TransactionRecord) IsAdvance() bool {
	return t.PaymentType == PaymentTypePayment &&
		(t.EntityType == EntityEmployee || t.EntityType == EntityMediator)
}

// Notification projects the record into the fields the dispatcher needs.
func (t TransactionRecord) Notification() Notification {
	return Notification{
		Kind:     KindTransaction,
		RecordID: t.ID,
		Status:   t.Status,
		Version:  t.Version,
		Message: Message{
			Phone:  t.Phone,
			Name:   t.EntityName,
			Amount: t.Amount,
			Date:   t.OccurredOn,
		},
	}
}
