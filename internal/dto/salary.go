package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalaryRequest defines one employee's inputs for a period. PaidSalary is always derived.
type CreateSalaryRequest struct {
	EmployeeID      string          `json:"employeeId" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Phone           string          `json:"phone" binding:"required"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	WorkingDays     decimal.Decimal `json:"workingDays"`
	PreviousAdvance decimal.Decimal `json:"previousAdvance"`
	CurrentAdvance  decimal.Decimal `json:"currentAdvance"`
	PeriodKey       string          `json:"periodKey"`
}

// UpdateSalaryRequest carries the salary inputs to change. Nil fields keep their value.
type UpdateSalaryRequest struct {
	Name            *string          `json:"name"`
	Phone           *string          `json:"phone"`
	BaseSalary      *decimal.Decimal `json:"baseSalary"`
	WorkingDays     *decimal.Decimal `json:"workingDays"`
	PreviousAdvance *decimal.Decimal `json:"previousAdvance"`
	CurrentAdvance  *decimal.Decimal `json:"currentAdvance"`
	Version         *int64           `json:"version"`
}

// ListSalariesParams selects one period's rows, optionally narrowed by a name or phone search.
type ListSalariesParams struct {
	Period string `form:"period"`
	Search string `form:"search"`
}

// RecalculateRequest names the period to recompute.
type RecalculateRequest struct {
	Period string `json:"period"`
}

// RecalculateResponse reports how many rows changed.
type RecalculateResponse struct {
	Period  string `json:"period"`
	Updated int    `json:"updated"`
}

// SalaryResponse defines the data returned for a salary row.
type SalaryResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employeeId"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	BaseSalary      decimal.Decimal `json:"baseSalary"`
	WorkingDays     decimal.Decimal `json:"workingDays"`
	PreviousAdvance decimal.Decimal `json:"previousAdvance"`
	CurrentAdvance  decimal.Decimal `json:"currentAdvance"`
	PaidSalary      decimal.Decimal `json:"paidSalary"`
	PeriodKey       string          `json:"periodKey"`
	Status          string          `json:"status"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListSalariesResponse is one period's payroll with the total payout.
type ListSalariesResponse struct {
	Period    string           `json:"period"`
	Salaries  []SalaryResponse `json:"salaries"`
	TotalPaid decimal.Decimal  `json:"totalPaid"`
}

// ToSalaryResponse converts a domain.SalaryRecord to SalaryResponse DTO.
func ToSalaryResponse(s *domain.SalaryRecord) SalaryResponse {
	return SalaryResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		Name:            s.Name,
		Phone:           s.Phone,
		BaseSalary:      s.BaseSalary,
		WorkingDays:     s.WorkingDays,
		PreviousAdvance: s.PreviousAdvance,
		CurrentAdvance:  s.CurrentAdvance,
		PaidSalary:      s.PaidSalary,
		PeriodKey:       s.PeriodKey,
		Status:          string(s.Status),
		Version:         s.Version,
		CreatedAt:       s.CreatedAt,
		LastUpdatedAt:   s.LastUpdatedAt,
	}
}

// ToListSalariesResponse converts a period's rows and sums the payout.
func ToListSalariesResponse(period string, salaries []domain.SalaryRecord) ListSalariesResponse {
	res := ListSalariesResponse{
		Period:    period,
		Salaries:  make([]SalaryResponse, len(salaries)),
		TotalPaid: decimal.Zero,
	}
	for i := range salaries {
		res.Salaries[i] = ToSalaryResponse(&salaries[i])
		res.TotalPaid = res.TotalPaid.Add(salaries[i].PaidSalary)
	}
	return res
}
