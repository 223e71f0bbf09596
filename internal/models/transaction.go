package models

// Transaction is a stored ledger line.
type Transaction struct {
	ID          string `firestore:"-"`
	EntityID    string `firestore:"entityId"`
	EntityType  string `firestore:"entityType"`
	EntityName  string `firestore:"entityName"`
	Sender      string `firestore:"sender"`
	PaymentType string `firestore:"paymentType"`
	Amount      string `firestore:"amount"`
	Reason      string `firestore:"reason"`
	Phone       string `firestore:"phone"`
	OccurredOn  string `firestore:"occurredOn"` // YYYY-MM-DD, compared as a string
	Status      string `firestore:"status"`
	AuditFields
}
