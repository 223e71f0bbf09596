package mapping

import (
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/models"
)

// ToModelTransaction converts a domain TransactionRecord to a model Transaction
func ToModelTransaction(d domain.TransactionRecord) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		EntityID:    d.EntityID,
		EntityType:  string(d.EntityType),
		EntityName:  d.EntityName,
		Sender:      d.Sender,
		PaymentType: string(d.PaymentType),
		Amount:      d.Amount.String(),
		Reason:      d.Reason,
		Phone:       d.Phone,
		OccurredOn:  d.OccurredOn,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain TransactionRecord
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:          m.ID,
		EntityID:    m.EntityID,
		EntityType:  domain.EntityType(m.EntityType),
		EntityName:  m.EntityName,
		Sender:      m.Sender,
		PaymentType: domain.PaymentType(m.PaymentType),
		Amount:      toDecimal(m.Amount),
		Reason:      m.Reason,
		Phone:       m.Phone,
		OccurredOn:  m.OccurredOn,
		Status:      domain.Status(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain records
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
