package mapping

import (
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/models"
)

// ToModelSalary converts a domain SalaryRecord to a model Salary
func ToModelSalary(d domain.SalaryRecord) models.Salary {
	return models.Salary{
		ID:              d.ID,
		EmployeeID:      d.EmployeeID,
		Name:            d.Name,
		Phone:           d.Phone,
		BaseSalary:      d.BaseSalary.String(),
		WorkingDays:     d.WorkingDays.String(),
		PreviousAdvance: d.PreviousAdvance.String(),
		CurrentAdvance:  d.CurrentAdvance.String(),
		PaidSalary:      d.PaidSalary.String(),
		PeriodKey:       d.PeriodKey,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSalary converts a model Salary to a domain SalaryRecord
func ToDomainSalary(m models.Salary) domain.SalaryRecord {
	return domain.SalaryRecord{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		Name:            m.Name,
		Phone:           m.Phone,
		BaseSalary:      toDecimal(m.BaseSalary),
		WorkingDays:     toDecimal(m.WorkingDays),
		PreviousAdvance: toDecimal(m.PreviousAdvance),
		CurrentAdvance:  toDecimal(m.CurrentAdvance),
		PaidSalary:      toDecimal(m.PaidSalary),
		PeriodKey:       m.PeriodKey,
		Status:          domain.Status(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSalarySlice converts a slice of model Salaries to domain records
func ToDomainSalarySlice(ms []models.Salary) []domain.SalaryRecord {
	ds := make([]domain.SalaryRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalary(m)
	}
	return ds
}
