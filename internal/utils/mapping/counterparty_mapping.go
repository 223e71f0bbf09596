package mapping

import (
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/models"
)

// ToModelCounterparty converts a domain Counterparty to a model Counterparty
func ToModelCounterparty(d domain.Counterparty) models.Counterparty {
	return models.Counterparty{
		ID:          d.ID,
		EntityID:    d.EntityID,
		EntityType:  string(d.EntityType),
		Name:        d.Name,
		Phone:       d.Phone,
		Address:     d.Address,
		BaseSalary:  d.BaseSalary.String(),
		BankAccount: d.BankAccount,
		IFSC:        d.IFSC,
		NationalID:  d.NationalID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCounterparty converts a model Counterparty to a domain Counterparty
func ToDomainCounterparty(m models.Counterparty) domain.Counterparty {
	return domain.Counterparty{
		ID:          m.ID,
		EntityID:    m.EntityID,
		EntityType:  domain.EntityType(m.EntityType),
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		BaseSalary:  toDecimal(m.BaseSalary),
		BankAccount: m.BankAccount,
		IFSC:        m.IFSC,
		NationalID:  m.NationalID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCounterpartySlice converts a slice of model Counterparties to domain entries
func ToDomainCounterpartySlice(ms []models.Counterparty) []domain.Counterparty {
	ds := make([]domain.Counterparty, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCounterparty(m)
	}
	return ds
}
