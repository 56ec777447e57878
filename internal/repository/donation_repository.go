package repository

import (
	"context"
	"time"

	"github.com/doemais/donation-engine/internal/domain"

	"github.com/jmoiron/sqlx"
)

type donationRepository struct {
	db *sqlx.DB
}

func NewDonationRepository(db *sqlx.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `
		INSERT INTO donations (id, donation_id, donor_id, total_value, recurring_future_value, donation_date, is_recurring, installment_count, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		donation.ID,
		donation.DonationID,
		donation.DonorID,
		donation.TotalValue,
		donation.RecurringFutureValue,
		donation.DonationDate,
		donation.IsRecurring,
		donation.InstallmentCount,
		donation.Status,
		donation.CreatedAt,
		donation.UpdatedAt,
	)

	return err
}

func (r *donationRepository) GetByDonationID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `
		SELECT id, donation_id, donor_id, total_value, recurring_future_value, donation_date, is_recurring, installment_count, status, created_at, updated_at
		FROM donations
		WHERE donation_id = $1
	`

	var donation domain.Donation
	err := r.db.GetContext(ctx, &donation, query, donationID)
	if err != nil {
		return nil, err
	}

	return &donation, nil
}

func (r *donationRepository) Update(ctx context.Context, donation *domain.Donation) error {
	query := `
		UPDATE donations
		SET total_value = $2, recurring_future_value = $3, is_recurring = $4, installment_count = $5, status = $6, updated_at = $7
		WHERE donation_id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		donation.DonationID,
		donation.TotalValue,
		donation.RecurringFutureValue,
		donation.IsRecurring,
		donation.InstallmentCount,
		donation.Status,
		time.Now(),
	)

	return err
}

func (r *donationRepository) CreateSchedule(ctx context.Context, installments []*domain.ScheduledInstallment) error {
	query := `
		INSERT INTO parcelas_futuras (id, donation_id, installment_number, due_date, value, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, installment := range installments {
		_, err = tx.ExecContext(ctx, query,
			installment.ID,
			installment.DonationID,
			installment.InstallmentNumber,
			installment.DueDate,
			installment.Value,
			installment.Status,
			installment.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *donationRepository) GetScheduleByDonationID(ctx context.Context, donationID string) ([]*domain.ScheduledInstallment, error) {
	query := `
		SELECT id, donation_id, installment_number, due_date, value, status, created_at
		FROM parcelas_futuras
		WHERE donation_id = $1
		ORDER BY installment_number
	`

	var installments []*domain.ScheduledInstallment
	err := r.db.SelectContext(ctx, &installments, query, donationID)
	if err != nil {
		return nil, err
	}

	return installments, nil
}

func (r *donationRepository) UpdateInstallmentStatus(ctx context.Context, donationID string, installmentNumber int, status string) error {
	query := `
		UPDATE parcelas_futuras
		SET status = $3
		WHERE donation_id = $1 AND installment_number = $2
	`

	_, err := r.db.ExecContext(ctx, query, donationID, installmentNumber, status)
	return err
}

func (r *donationRepository) GetOverdueInstallments(ctx context.Context, currentDate time.Time) ([]*domain.ScheduledInstallment, error) {
	query := `
		SELECT id, donation_id, installment_number, due_date, value, status, created_at
		FROM parcelas_futuras
		WHERE status = 'Pendente' AND due_date < $1
		ORDER BY donation_id, installment_number
	`

	var installments []*domain.ScheduledInstallment
	err := r.db.SelectContext(ctx, &installments, query, currentDate)
	if err != nil {
		return nil, err
	}

	return installments, nil
}

func (r *donationRepository) GetUpcomingInstallments(ctx context.Context, from time.Time, to time.Time) ([]*domain.ScheduledInstallment, error) {
	query := `
		SELECT id, donation_id, installment_number, due_date, value, status, created_at
		FROM parcelas_futuras
		WHERE status = 'Pendente' AND due_date >= $1 AND due_date <= $2
		ORDER BY due_date, donation_id
	`

	var installments []*domain.ScheduledInstallment
	err := r.db.SelectContext(ctx, &installments, query, from, to)
	if err != nil {
		return nil, err
	}

	return installments, nil
}
