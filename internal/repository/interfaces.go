package repository

import (
	"context"
	"time"

	"github.com/doemais/donation-engine/internal/domain"

	"github.com/shopspring/decimal"
)

// DonationRepository defines the interface for donation data operations
type DonationRepository interface {
	// Create creates a new donation
	Create(ctx context.Context, donation *domain.Donation) error

	// GetByDonationID retrieves a donation by its donation ID
	GetByDonationID(ctx context.Context, donationID string) (*domain.Donation, error)

	// Update updates a donation
	Update(ctx context.Context, donation *domain.Donation) error

	// CreateSchedule creates scheduled installment rows in bulk
	CreateSchedule(ctx context.Context, installments []*domain.ScheduledInstallment) error

	// GetScheduleByDonationID retrieves the scheduled installments of a donation,
	// ordered by installment number
	GetScheduleByDonationID(ctx context.Context, donationID string) ([]*domain.ScheduledInstallment, error)

	// UpdateInstallmentStatus updates the status of one scheduled installment
	UpdateInstallmentStatus(ctx context.Context, donationID string, installmentNumber int, status string) error

	// GetOverdueInstallments gets pending installments past their due date,
	// across all donations
	GetOverdueInstallments(ctx context.Context, currentDate time.Time) ([]*domain.ScheduledInstallment, error)

	// GetUpcomingInstallments gets pending installments due within the window
	GetUpcomingInstallments(ctx context.Context, from time.Time, to time.Time) ([]*domain.ScheduledInstallment, error)
}

// PaymentRepository defines the interface for payment-history operations
type PaymentRepository interface {
	// Create appends a payment record to the history
	Create(ctx context.Context, payment *domain.PaymentRecord) error

	// GetByDonationID retrieves all payment records for a donation,
	// ordered by payment date
	GetByDonationID(ctx context.Context, donationID string) ([]*domain.PaymentRecord, error)

	// GetTotalPaid calculates the total value paid against a donation
	GetTotalPaid(ctx context.Context, donationID string) (decimal.Decimal, error)
}
