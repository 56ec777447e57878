package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	InstallmentStatusPending = "Pendente"
	InstallmentStatusPaid    = "Pago"
	InstallmentStatusOverdue = "Atrasado"
)

// ScheduledInstallment is a pre-materialized future obligation of a
// recurring donation. Rows are created in bulk at donation creation (one
// per installment 2..N) and have their status flipped in place when a
// payment against that installment is registered.
type ScheduledInstallment struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	DonationID        string          `json:"donation_id" db:"donation_id"`
	InstallmentNumber int             `json:"installment_number" db:"installment_number"`
	DueDate           time.Time       `json:"due_date" db:"due_date"`
	Value             decimal.Decimal `json:"value" db:"value"`
	Status            string          `json:"status" db:"status"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// InstallmentStatus is the closed status set the reconciler works with.
// Raw store statuses ("Pago", "PAGO", "Pendente", ...) are normalized into
// it at the ingestion boundary and never inspected as strings past that.
type InstallmentStatus string

const (
	StatusPaid    InstallmentStatus = "PAID"
	StatusPending InstallmentStatus = "PENDING"
)

// NormalizeStatus maps a raw, case-varying store status to the closed set.
// Anything not recognizably "paid" is treated as pending.
func NormalizeStatus(raw string) InstallmentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pago", "paga", "paid":
		return StatusPaid
	default:
		return StatusPending
	}
}

// ReconciledInstallment is the reconciler's output unit: one densely
// numbered slot of the carnê, merged from the payment history and the
// scheduled-installment table. Not persisted.
type ReconciledInstallment struct {
	Number   int               `json:"number"`
	DueDate  time.Time         `json:"due_date"`
	Value    decimal.Decimal   `json:"value"`
	Status   InstallmentStatus `json:"status"`
	PaidDate *time.Time        `json:"paid_date,omitempty"`
	SourceID string            `json:"source_id,omitempty"`
	IsFuture bool              `json:"is_future"`
}

// Totals summarizes a reconciled carnê.
type Totals struct {
	PaidCount    int             `json:"paid_count"`
	PendingCount int             `json:"pending_count"`
	PaidTotal    decimal.Decimal `json:"paid_total"`
	PendingTotal decimal.Decimal `json:"pending_total"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}
