package models

// Renewal is a stored renewal reminder.
type Renewal struct {
	ID            string `firestore:"-"`
	Name          string `firestore:"name"`
	Phone         string `firestore:"phone"`
	VehicleNumber string `firestore:"vehicleNumber"`
	RenewalType   string `firestore:"renewalType"`
	Amount        string `firestore:"amount"`
	DueDate       string `firestore:"dueDate"`
	Status        string `firestore:"status"`
	AuditFields
}
