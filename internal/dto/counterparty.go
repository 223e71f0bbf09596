package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCounterpartyRequest defines the data needed to add an employee, mediator or supplier.
type CreateCounterpartyRequest struct {
	EntityID    string            `json:"entityId" binding:"required"`
	EntityType  domain.EntityType `json:"entityType" binding:"required,oneof=EMPLOYEE MEDIATOR SUPPLIER"`
	Name        string            `json:"name" binding:"required"`
	Phone       string            `json:"phone" binding:"required"`
	Address     string            `json:"address"`
	BaseSalary  decimal.Decimal   `json:"baseSalary"`
	BankAccount string            `json:"bankAccount"`
	IFSC        string            `json:"ifsc"`
	NationalID  string            `json:"nationalId"`
}

// UpdateCounterpartyRequest carries the directory fields to change. Nil fields keep their value.
type UpdateCounterpartyRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Address     *string          `json:"address"`
	BaseSalary  *decimal.Decimal `json:"baseSalary"`
	BankAccount *string          `json:"bankAccount"`
	IFSC        *string          `json:"ifsc"`
	NationalID  *string          `json:"nationalId"`
	Version     *int64           `json:"version"`
}

// ListCounterpartiesParams filters the directory.
type ListCounterpartiesParams struct {
	EntityType string `form:"entityType" binding:"omitempty,oneof=EMPLOYEE MEDIATOR SUPPLIER"`
	Search     string `form:"search"`
}

// CounterpartyResponse defines the data returned for a directory entry.
type CounterpartyResponse struct {
	ID            string          `json:"id"`
	EntityID      string          `json:"entityId"`
	EntityType    string          `json:"entityType"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	BankAccount   string          `json:"bankAccount"`
	IFSC          string          `json:"ifsc"`
	NationalID    string          `json:"nationalId"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCounterpartyResponse converts a domain.Counterparty to CounterpartyResponse DTO.
func ToCounterpartyResponse(c *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		ID:            c.ID,
		EntityID:      c.EntityID,
		EntityType:    string(c.EntityType),
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		BaseSalary:    c.BaseSalary,
		BankAccount:   c.BankAccount,
		IFSC:          c.IFSC,
		NationalID:    c.NationalID,
		Version:       c.Version,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToCounterpartyResponses converts a slice of directory entries.
func ToCounterpartyResponses(cs []domain.Counterparty) []CounterpartyResponse {
	res := make([]CounterpartyResponse, len(cs))
	for i := range cs {
		res[i] = ToCounterpartyResponse(&cs[i])
	}
	return res
}
