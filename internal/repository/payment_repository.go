package repository

import (
	"context"

	"github.com/doemais/donation-engine/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.PaymentRecord) error {
	query := `
		INSERT INTO historico_pagamentos (id, donation_id, payment_date, value, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.DonationID,
		payment.PaymentDate,
		payment.Value,
		payment.Status,
		payment.CreatedAt,
	)

	return err
}

func (r *paymentRepository) GetByDonationID(ctx context.Context, donationID string) ([]*domain.PaymentRecord, error) {
	query := `
		SELECT id, donation_id, payment_date, value, status, created_at
		FROM historico_pagamentos
		WHERE donation_id = $1
		ORDER BY payment_date
	`

	var payments []*domain.PaymentRecord
	err := r.db.SelectContext(ctx, &payments, query, donationID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *paymentRepository) GetTotalPaid(ctx context.Context, donationID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM historico_pagamentos
		WHERE donation_id = $1 AND LOWER(status) IN ('pago', 'paga', 'paid')
	`

	var total decimal.Decimal
	err := r.db.GetContext(ctx, &total, query, donationID)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
