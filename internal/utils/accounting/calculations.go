package accounting

import (
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

var salaryDivisor = decimal.NewFromInt(domain.SalaryDayDivisor)

// EarnedSalary returns the pro-rata salary for the days worked.
// Example: base 3000, 15 days -> 1500. The multiplication happens before the division
// so whole-rupee salaries stay exact.
func EarnedSalary(baseSalary, workingDays decimal.Decimal) decimal.Decimal {
	return baseSalary.Mul(workingDays).Div(salaryDivisor).Round(2)
}

// CalculatePaidSalary returns max(0, earned - (previousAdvance + currentAdvance)).
func CalculatePaidSalary(baseSalary, workingDays, previousAdvance, currentAdvance decimal.Decimal) decimal.Decimal {
	paid := EarnedSalary(baseSalary, workingDays).Sub(previousAdvance.Add(currentAdvance))
	if paid.IsNegative() {
		return decimal.Zero
	}
	return paid
}

// ApplySalary recomputes PaidSalary on the record in place.
func ApplySalary(s *domain.SalaryRecord) {
	s.PaidSalary = CalculatePaidSalary(s.BaseSalary, s.WorkingDays, s.PreviousAdvance, s.CurrentAdvance)
}
