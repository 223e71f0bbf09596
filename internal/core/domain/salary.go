package domain

import "github.com/shopspring/decimal"

// SalaryDayDivisor is the fixed day count a monthly base salary is divided by to obtain the
// per-day rate. It does not follow the calendar length of the month.
const SalaryDayDivisor = 30

// SalaryRecord is one employee's pay computation for one period.
type SalaryRecord struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employeeId" validate:"required"`
	Name            string          `json:"name" validate:"required"`
	Phone           string          `json:"phone" validate:"required"`
	BaseSalary      decimal.Decimal `json:"baseSalary" validate:"gte=0"`
	WorkingDays     decimal.Decimal `json:"workingDays" validate:"gte=0"`
	PreviousAdvance decimal.Decimal `json:"previousAdvance" validate:"gte=0"`
	CurrentAdvance  decimal.Decimal `json:"currentAdvance" validate:"gte=0"`
	PaidSalary      decimal.Decimal `json:"paidSalary"`
	PeriodKey       string          `json:"periodKey" validate:"required,datetime=2006-01"`
	Status          Status          `json:"status" validate:"required,oneof=PENDING SENT"`
	AuditFields
}

// Validate checks the record's required fields.
func (s SalaryRecord) Validate() error {
	return Validate(s)
}

// TotalAdvance is the sum of advances deducted from this period's pay.
func (s SalaryRecord) TotalAdvance() decimal.Decimal {
	return s.PreviousAdvance.Add(s.CurrentAdvance)
}

// Notification projects the salary payout into the fields the dispatcher needs.
// The message date is the dispatch day, supplied by the caller.
func (s SalaryRecord) Notification(today string) Notification {
	return Notification{
		Kind:     KindSalary,
		RecordID: s.ID,
		Status:   s.Status,
		Version:  s.Version,
		Message: Message{
			Phone:  s.Phone,
			Name:   s.Name,
			Amount: s.PaidSalary,
			Date:   today,
		},
	}
}
