package domain

import "github.com/shopspring/decimal"

// Counterparty is a directory entry for an employee, mediator or supplier.
// EntityID is the business key (e.g. the employee code) shared with ledger and salary records.
type Counterparty struct {
	ID          string          `json:"id"`
	EntityID    string          `json:"entityId" validate:"required"`
	EntityType  EntityType      `json:"entityType" validate:"required,oneof=EMPLOYEE MEDIATOR SUPPLIER"`
	Name        string          `json:"name" validate:"required"`
	Phone       string          `json:"phone" validate:"required"`
	Address     string          `json:"address"`
	BaseSalary  decimal.Decimal `json:"baseSalary" validate:"gte=0"`
	BankAccount string          `json:"bankAccount"`
	IFSC        string          `json:"ifsc"`
	NationalID  string          `json:"nationalId"`
	AuditFields
}

// Validate checks the entry's required fields.
func (c Counterparty) Validate() error {
	return Validate(c)
}
