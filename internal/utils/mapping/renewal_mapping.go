package mapping

import (
	"github.com/SscSPs/erp_backoffice/internal/core/domain"
	"github.com/SscSPs/erp_backoffice/internal/models"
)

// ToModelRenewal converts a domain Renewal to a model Renewal
func ToModelRenewal(d domain.Renewal) models.Renewal {
	return models.Renewal{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		VehicleNumber: d.VehicleNumber,
		RenewalType:   d.RenewalType,
		Amount:        d.Amount.String(),
		DueDate:       d.DueDate,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRenewal converts a model Renewal to a domain Renewal
func ToDomainRenewal(m models.Renewal) domain.Renewal {
	return domain.Renewal{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         m.Phone,
		VehicleNumber: m.VehicleNumber,
		RenewalType:   m.RenewalType,
		Amount:        toDecimal(m.Amount),
		DueDate:       m.DueDate,
		Status:        domain.Status(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRenewalSlice converts a slice of model Renewals to domain renewals
func ToDomainRenewalSlice(ms []models.Renewal) []domain.Renewal {
	ds := make([]domain.Renewal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRenewal(m)
	}
	return ds
}
