package models

// Counterparty is a stored directory entry.
type Counterparty struct {
	ID          string `firestore:"-"`
	EntityID    string `firestore:"entityId"`
	EntityType  string `firestore:"entityType"`
	Name        string `firestore:"name"`
	Phone       string `firestore:"phone"`
	Address     string `firestore:"address"`
	BaseSalary  string `firestore:"baseSalary"`
	BankAccount string `firestore:"bankAccount"`
	IFSC        string `firestore:"ifsc"`
	NationalID  string `firestore:"nationalId"`
	AuditFields
}
