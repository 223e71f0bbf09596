package models

// Salary is a stored payroll row.
type Salary struct {
	ID              string `firestore:"-"`
	EmployeeID      string `firestore:"employeeId"`
	Name            string `firestore:"name"`
	Phone           string `firestore:"phone"`
	BaseSalary      string `firestore:"baseSalary"`
	WorkingDays     string `firestore:"workingDays"`
	PreviousAdvance string `firestore:"previousAdvance"`
	CurrentAdvance  string `firestore:"currentAdvance"`
	PaidSalary      string `firestore:"paidSalary"`
	PeriodKey       string `firestore:"periodKey"`
	Status          string `firestore:"status"`
	AuditFields
}
