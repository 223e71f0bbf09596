package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRenewalRequest defines a vehicle or document renewal.
type CreateRenewalRequest struct {
	Name          string          `json:"name" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	VehicleNumber string          `json:"vehicleNumber"`
	RenewalType   string          `json:"renewalType" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"dueDate" binding:"required"`
}

// UpdateRenewalRequest carries the renewal fields to change. Nil fields keep their value.
type UpdateRenewalRequest struct {
	Name          *string          `json:"name"`
	Phone         *string          `json:"phone"`
	VehicleNumber *string          `json:"vehicleNumber"`
	RenewalType   *string          `json:"renewalType"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *string          `json:"dueDate"`
	Version       *int64           `json:"version"`
}

// ListRenewalsParams selects one calendar month.
type ListRenewalsParams struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
}

// RenewalResponse defines the data returned for a renewal.
type RenewalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	VehicleNumber string          `json:"vehicleNumber"`
	RenewalType   string          `json:"renewalType"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"dueDate"`
	Status        string          `json:"status"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToRenewalResponse converts a domain.Renewal to RenewalResponse DTO.
func ToRenewalResponse(r *domain.Renewal) RenewalResponse {
	return RenewalResponse{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		VehicleNumber: r.VehicleNumber,
		RenewalType:   r.RenewalType,
		Amount:        r.Amount,
		DueDate:       r.DueDate,
		Status:        string(r.Status),
		Version:       r.Version,
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToRenewalResponses converts a slice of renewals.
func ToRenewalResponses(rs []domain.Renewal) []RenewalResponse {
	res := make([]RenewalResponse, len(rs))
	for i := range rs {
		res[i] = ToRenewalResponse(&rs[i])
	}
	return res
}
