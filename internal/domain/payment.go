package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRecord is one entry of a donation's payment history. The log is
// append-only: entries are written when a payment is registered and never
// updated afterwards. Status is stored as free text ("Pago", "PAGO", ...)
// by older writers; normalize it before branching on it.
type PaymentRecord struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	DonationID  string          `json:"donation_id" db:"donation_id"`
	PaymentDate time.Time       `json:"payment_date" db:"payment_date"`
	Value       decimal.Decimal `json:"value" db:"value"`
	Status      string          `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
