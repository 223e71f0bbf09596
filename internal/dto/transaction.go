package dto

import (
	"time"

	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a payment, receipt or advance.
// Amount and date are checked against the domain rules in the service.
type CreateTransactionRequest struct {
	EntityID    string             `json:"entityId"`
	EntityType  domain.EntityType  `json:"entityType" binding:"required,oneof=EMPLOYEE MEDIATOR SUPPLIER OTHER"`
	EntityName  string             `json:"entityName"`
	Sender      string             `json:"sender" binding:"required"`
	PaymentType domain.PaymentType `json:"paymentType" binding:"required,oneof=PAYMENT RECEIPT MISCELLANEOUS"`
	Amount      decimal.Decimal    `json:"amount"`
	Reason      string             `json:"reason" binding:"required"`
	Phone       string             `json:"phone"`
	OccurredOn  string             `json:"occurredOn" binding:"required"`
}

// UpdateTransactionRequest carries the fields to change. Nil fields keep their value.
// Version, when set, must match the stored version.
type UpdateTransactionRequest struct {
	EntityID    *string             `json:"entityId"`
	EntityType  *domain.EntityType  `json:"entityType"`
	EntityName  *string             `json:"entityName"`
	Sender      *string             `json:"sender"`
	PaymentType *domain.PaymentType `json:"paymentType"`
	Amount      *decimal.Decimal    `json:"amount"`
	Reason      *string             `json:"reason"`
	Phone       *string             `json:"phone"`
	OccurredOn  *string             `json:"occurredOn"`
	Version     *int64              `json:"version"`
}

// ListTransactionsParams selects the ledger lines to list. Either Date or From/To.
type ListTransactionsParams struct {
	Date       string `form:"date"`
	From       string `form:"from"`
	To         string `form:"to"`
	EntityID   string `form:"entityId"`
	EntityType string `form:"entityType" binding:"omitempty,oneof=EMPLOYEE MEDIATOR SUPPLIER OTHER"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING SENT"`
}

// TransactionResponse defines the data returned for a ledger line.
type TransactionResponse struct {
	ID            string          `json:"id"`
	EntityID      string          `json:"entityId"`
	EntityType    string          `json:"entityType"`
	EntityName    string          `json:"entityName"`
	Sender        string          `json:"sender"`
	PaymentType   string          `json:"paymentType"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	Phone         string          `json:"phone"`
	OccurredOn    string          `json:"occurredOn"`
	Status        string          `json:"status"`
	Version       int64           `json:"version"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse is the day or range view of the ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        decimal.Decimal       `json:"total"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain.TransactionRecord to TransactionResponse DTO.
func ToTransactionResponse(t *domain.TransactionRecord) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		EntityID:      t.EntityID,
		EntityType:    string(t.EntityType),
		EntityName:    t.EntityName,
		Sender:        t.Sender,
		PaymentType:   string(t.PaymentType),
		Amount:        t.Amount,
		Reason:        t.Reason,
		Phone:         t.Phone,
		OccurredOn:    t.OccurredOn,
		Status:        string(t.Status),
		Version:       t.Version,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts ledger lines and sums their amounts.
func ToListTransactionsResponse(records []domain.TransactionRecord) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(records)),
		Total:        decimal.Zero,
		Count:        len(records),
	}
	for i := range records {
		res.Transactions[i] = ToTransactionResponse(&records[i])
		res.Total = res.Total.Add(records[i].Amount)
	}
	return res
}
