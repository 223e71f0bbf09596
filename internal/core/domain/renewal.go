package domain

import "github.com/shopspring/decimal"

// Renewal is a recurring vehicle or document renewal that falls due on DueDate.
type Renewal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Phone         string          `json:"phone" validate:"required"`
	VehicleNumber string          `json:"vehicleNumber"`
	RenewalType   string          `json:"renewalType" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"gte=0"`
	DueDate       string          `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status        Status          `json:"status" validate:"required,oneof=PENDING SENT"`
	AuditFields
}

// Validate checks the renewal's required fields.
func (r Renewal) Validate() error {
	return Validate(r)
}

// Notification projects the renewal into a reminder for its owner.
func (r Renewal) Notification() Notification {
	return Notification{
		Kind:     KindRenewal,
		RecordID: r.ID,
		Status:   r.Status,
		Version:  r.Version,
		Message: Message{
			Phone:  r.Phone,
			Name:   r.Name,
			Amount: r.Amount,
			Date:   r.DueDate,
		},
	}
}
