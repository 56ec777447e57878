package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/doemais/donation-engine/pkg/utils"
)

const (
	DonationStatusActive    = "active"
	DonationStatusCompleted = "completed"
	DonationStatusCancelled = "cancelled"
)

// Donation represents a single pledge, one-time or recurring.
// TotalValue is the value of the first installment; recurring donations may
// carry a distinct RecurringFutureValue for installments 2..N.
type Donation struct {
	ID                   uuid.UUID        `json:"id" db:"id"`
	DonationID           string           `json:"donation_id" db:"donation_id"`
	DonorID              string           `json:"donor_id" db:"donor_id"`
	TotalValue           decimal.Decimal  `json:"total_value" db:"total_value"`
	RecurringFutureValue *decimal.Decimal `json:"recurring_future_value,omitempty" db:"recurring_future_value"`
	DonationDate         time.Time        `json:"donation_date" db:"donation_date"`
	IsRecurring          bool             `json:"is_recurring" db:"is_recurring"`
	InstallmentCount     int              `json:"installment_count" db:"installment_count"`
	Status               string           `json:"status" db:"status"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at" db:"updated_at"`
}

// FutureValue returns the value of installments 2..N: the dedicated
// recurring value when set, otherwise an even split of TotalValue across
// all installments (legacy rows created before the field existed).
func (d *Donation) FutureValue() decimal.Decimal {
	if d.RecurringFutureValue != nil {
		return *d.RecurringFutureValue
	}
	return utils.InstallmentValue(d.TotalValue, d.InstallmentCount)
}

// DTOs for requests and responses

type CreateDonationRequest struct {
	DonationID           string           `json:"donation_id" validate:"required"`
	DonorID              string           `json:"donor_id" validate:"required"`
	TotalValue           decimal.Decimal  `json:"total_value" validate:"required"`
	RecurringFutureValue *decimal.Decimal `json:"recurring_future_value,omitempty"`
	DonationDate         time.Time        `json:"donation_date" validate:"required"`
	IsRecurring          bool             `json:"is_recurring"`
	InstallmentCount     int              `json:"installment_count" validate:"omitempty,gte=1"`
	FirstInstallmentPaid bool             `json:"first_installment_paid"`
}

type CreateDonationResponse struct {
	Donation *Donation               `json:"donation"`
	Schedule []*ScheduledInstallment `json:"schedule"`
}

type RegisterPaymentRequest struct {
	Value             decimal.Decimal `json:"value" validate:"required"`
	PaymentDate       time.Time       `json:"payment_date" validate:"required"`
	InstallmentNumber int             `json:"installment_number" validate:"omitempty,gte=1"`
}

type CarneResponse struct {
	DonationID   string                   `json:"donation_id"`
	Installments []*ReconciledInstallment `json:"installments"`
	Totals       *Totals                  `json:"totals"`
}

type TotalsResponse struct {
	DonationID string  `json:"donation_id"`
	Totals     *Totals `json:"totals"`
}
