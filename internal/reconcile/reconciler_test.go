package reconcile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doemais/donation-engine/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestReconcile_NonRecurringNoPayments(t *testing.T) {
	donation := &domain.Donation{
		DonationID:   "DON-1",
		TotalValue:   decimal.NewFromFloat(100.00),
		DonationDate: date(2025, time.January, 10),
		IsRecurring:  false,
	}

	result, err := New(60).Reconcile(donation, nil, nil)
	require.NoError(t, err)

	require.Len(t, result.Installments, 1)
	inst := result.Installments[0]
	assert.Equal(t, 1, inst.Number)
	assert.Equal(t, domain.StatusPending, inst.Status)
	assert.True(t, inst.Value.Equal(decimal.NewFromFloat(100.00)))
	assert.Nil(t, inst.PaidDate)
	assert.False(t, inst.IsFuture)

	assert.Equal(t, 0, result.Totals.PaidCount)
	assert.Equal(t, 1, result.Totals.PendingCount)
	assert.True(t, result.Totals.GrandTotal.Equal(decimal.NewFromFloat(100.00)))
}

func TestReconcile_RecurringWithScheduleAndHistory(t *testing.T) {
	donation := &domain.Donation{
		DonationID:           "DON-2",
		TotalValue:           decimal.NewFromFloat(100.00),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(25.00)),
		DonationDate:         date(2025, time.January, 10),
		IsRecurring:          true,
		InstallmentCount:     5,
	}

	payments := []*domain.PaymentRecord{
		{
			ID:          uuid.New(),
			DonationID:  "DON-2",
			PaymentDate: date(2025, time.January, 10),
			Value:       decimal.NewFromFloat(100.00),
			Status:      "Pago",
		},
	}

	schedule := []*domain.ScheduledInstallment{
		{ID: uuid.New(), DonationID: "DON-2", InstallmentNumber: 2, DueDate: date(2025, time.February, 10), Value: decimal.NewFromFloat(25.00), Status: "Pendente"},
		{ID: uuid.New(), DonationID: "DON-2", InstallmentNumber: 3, DueDate: date(2025, time.March, 10), Value: decimal.NewFromFloat(25.00), Status: "Pago"},
		{ID: uuid.New(), DonationID: "DON-2", InstallmentNumber: 4, DueDate: date(2025, time.April, 10), Value: decimal.NewFromFloat(25.00), Status: "Pendente"},
		{ID: uuid.New(), DonationID: "DON-2", InstallmentNumber: 5, DueDate: date(2025, time.May, 10), Value: decimal.NewFromFloat(25.00), Status: "Pendente"},
	}

	result, err := New(60).Reconcile(donation, payments, schedule)
	require.NoError(t, err)
	require.Len(t, result.Installments, 5)

	first := result.Installments[0]
	assert.Equal(t, domain.StatusPaid, first.Status)
	assert.True(t, first.Value.Equal(decimal.NewFromFloat(100.00)))
	require.NotNil(t, first.PaidDate)
	assert.Equal(t, date(2025, time.January, 10), *first.PaidDate)

	wantStatus := []domain.InstallmentStatus{
		domain.StatusPaid,
		domain.StatusPending,
		domain.StatusPaid,
		domain.StatusPending,
		domain.StatusPending,
	}
	for i, inst := range result.Installments {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, wantStatus[i], inst.Status, "installment %d", i+1)
		if i > 0 {
			assert.True(t, inst.Value.Equal(decimal.NewFromFloat(25.00)))
			assert.True(t, inst.IsFuture)
			assert.False(t, inst.DueDate.Before(result.Installments[i-1].DueDate),
				"due dates must be non-decreasing")
		}
	}

	assert.Equal(t, 2, result.Totals.PaidCount)
	assert.Equal(t, 3, result.Totals.PendingCount)
	assert.True(t, result.Totals.PaidTotal.Equal(decimal.NewFromFloat(125.00)))
	assert.True(t, result.Totals.PendingTotal.Equal(decimal.NewFromFloat(75.00)))
	assert.True(t, result.Totals.GrandTotal.Equal(decimal.NewFromFloat(200.00)))
}

func TestReconcile_PaidScheduleRowWithoutPayment(t *testing.T) {
	// Installment 3 is marked paid but the payment history has nothing near
	// its due date. That is a data defect to tolerate: the row stays PAID
	// with no paid date, and a warning is emitted.
	donation := &domain.Donation{
		DonationID:           "DON-3",
		TotalValue:           decimal.NewFromFloat(50.00),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(50.00)),
		DonationDate:         date(2025, time.January, 1),
		IsRecurring:          true,
		InstallmentCount:     3,
	}

	schedule := []*domain.ScheduledInstallment{
		{ID: uuid.New(), DonationID: "DON-3", InstallmentNumber: 2, DueDate: date(2025, time.February, 1), Value: decimal.NewFromFloat(50.00), Status: "Pendente"},
		{ID: uuid.New(), DonationID: "DON-3", InstallmentNumber: 3, DueDate: date(2025, time.March, 1), Value: decimal.NewFromFloat(50.00), Status: "PAGO"},
	}

	result, err := New(60).Reconcile(donation, nil, schedule)
	require.NoError(t, err)
	require.Len(t, result.Installments, 3)

	third := result.Installments[2]
	assert.Equal(t, domain.StatusPaid, third.Status)
	assert.Nil(t, third.PaidDate)
	assert.NotEmpty(t, result.Warnings)
}

func TestReconcile_MissingScheduleRowFallsBackToMatching(t *testing.T) {
	// Only installment 2 has a schedule row; installment 3 must still get a
	// status, derived from the payment history.
	donation := &domain.Donation{
		DonationID:           "DON-4",
		TotalValue:           decimal.NewFromFloat(30.00),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(30.00)),
		DonationDate:         date(2025, time.January, 15),
		IsRecurring:          true,
		InstallmentCount:     3,
	}

	payments := []*domain.PaymentRecord{
		{ID: uuid.New(), DonationID: "DON-4", PaymentDate: date(2025, time.January, 15), Value: decimal.NewFromFloat(30.00), Status: "Pago"},
		{ID: uuid.New(), DonationID: "DON-4", PaymentDate: date(2025, time.March, 18), Value: decimal.NewFromFloat(30.00), Status: "PAGO"},
	}

	schedule := []*domain.ScheduledInstallment{
		{ID: uuid.New(), DonationID: "DON-4", InstallmentNumber: 2, DueDate: date(2025, time.February, 15), Value: decimal.NewFromFloat(30.00), Status: "Pendente"},
	}

	result, err := New(60).Reconcile(donation, payments, schedule)
	require.NoError(t, err)
	require.Len(t, result.Installments, 3)

	third := result.Installments[2]
	assert.Equal(t, domain.StatusPaid, third.Status)
	require.NotNil(t, third.PaidDate)
	assert.Equal(t, date(2025, time.March, 18), *third.PaidDate)
	assert.False(t, third.IsFuture)
}

func TestReconcile_LegacyEvenSplitFallback(t *testing.T) {
	// No recurring value recorded: installments 2..N fall back to an even
	// split of the total.
	donation := &domain.Donation{
		DonationID:       "DON-5",
		TotalValue:       decimal.NewFromFloat(100.00),
		DonationDate:     date(2025, time.June, 1),
		IsRecurring:      true,
		InstallmentCount: 4,
	}

	result, err := New(60).Reconcile(donation, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Installments, 4)

	for _, inst := range result.Installments[1:] {
		assert.True(t, inst.Value.Equal(decimal.NewFromFloat(25.00)))
	}
}

func TestReconcile_InstallmentCountNormalized(t *testing.T) {
	donation := &domain.Donation{
		DonationID:       "DON-6",
		TotalValue:       decimal.NewFromFloat(10.00),
		DonationDate:     date(2025, time.May, 5),
		IsRecurring:      true,
		InstallmentCount: 0,
	}

	result, err := New(60).Reconcile(donation, nil, nil)
	require.NoError(t, err)
	assert.Len(t, result.Installments, 1)
	assert.NotEmpty(t, result.Warnings)
}

func TestReconcile_NegativeValueRejected(t *testing.T) {
	donation := &domain.Donation{
		DonationID:   "DON-7",
		TotalValue:   decimal.NewFromFloat(-5.00),
		DonationDate: date(2025, time.May, 5),
	}

	_, err := New(60).Reconcile(donation, nil, nil)
	assert.Error(t, err)
}

func TestReconcile_Idempotent(t *testing.T) {
	donation := &domain.Donation{
		DonationID:           "DON-8",
		TotalValue:           decimal.NewFromFloat(100.00),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(25.00)),
		DonationDate:         date(2025, time.January, 10),
		IsRecurring:          true,
		InstallmentCount:     5,
	}
	payments := []*domain.PaymentRecord{
		{ID: uuid.New(), DonationID: "DON-8", PaymentDate: date(2025, time.January, 12), Value: decimal.NewFromFloat(100.00), Status: "Pago"},
		{ID: uuid.New(), DonationID: "DON-8", PaymentDate: date(2025, time.February, 11), Value: decimal.NewFromFloat(25.00), Status: "Pago"},
	}

	reconciler := New(60)
	first, err := reconciler.Reconcile(donation, payments, nil)
	require.NoError(t, err)
	second, err := reconciler.Reconcile(donation, payments, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcile_PaymentNeverMatchedTwice(t *testing.T) {
	// A single payment sits between two due dates; only one installment may
	// claim it.
	donation := &domain.Donation{
		DonationID:           "DON-9",
		TotalValue:           decimal.NewFromFloat(20.00),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(20.00)),
		DonationDate:         date(2025, time.January, 1),
		IsRecurring:          true,
		InstallmentCount:     3,
	}
	payments := []*domain.PaymentRecord{
		{ID: uuid.New(), DonationID: "DON-9", PaymentDate: date(2025, time.January, 20), Value: decimal.NewFromFloat(20.00), Status: "Pago"},
	}

	result, err := New(60).Reconcile(donation, payments, nil)
	require.NoError(t, err)

	paid := 0
	for _, inst := range result.Installments {
		if inst.Status == domain.StatusPaid {
			paid++
		}
	}
	assert.Equal(t, 1, paid)
	assert.Equal(t, 1, result.Totals.PaidCount)
	assert.Equal(t, 2, result.Totals.PendingCount)
}

func TestReconcile_TotalsInvariants(t *testing.T) {
	donation := &domain.Donation{
		DonationID:           "DON-10",
		TotalValue:           decimal.NewFromFloat(12.34),
		RecurringFutureValue: decPtr(decimal.NewFromFloat(12.34)),
		DonationDate:         date(2025, time.March, 31),
		IsRecurring:          true,
		InstallmentCount:     7,
	}
	payments := []*domain.PaymentRecord{
		{ID: uuid.New(), DonationID: "DON-10", PaymentDate: date(2025, time.March, 31), Value: decimal.NewFromFloat(12.34), Status: "Pago"},
		{ID: uuid.New(), DonationID: "DON-10", PaymentDate: date(2025, time.May, 2), Value: decimal.NewFromFloat(12.34), Status: "PAGO"},
	}

	result, err := New(60).Reconcile(donation, payments, nil)
	require.NoError(t, err)

	totals := result.Totals
	assert.Equal(t, len(result.Installments), totals.PaidCount+totals.PendingCount)
	assert.True(t, totals.GrandTotal.Equal(totals.PaidTotal.Add(totals.PendingTotal)),
		"grand total must equal paid + pending exactly")
	for i := 1; i < len(result.Installments); i++ {
		assert.False(t, result.Installments[i].DueDate.Before(result.Installments[i-1].DueDate))
	}
}
