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

func paymentOn(t time.Time) *domain.PaymentRecord {
	return &domain.PaymentRecord{
		ID:          uuid.New(),
		PaymentDate: t,
		Value:       decimal.NewFromFloat(25.00),
		Status:      "Pago",
	}
}

func TestMatchPool_ToleranceBoundary(t *testing.T) {
	dueDate := date(2025, time.March, 1)
	paymentDate := date(2025, time.March, 25) // 24 days apart

	tests := []struct {
		name          string
		toleranceDays int
		wantMatch     bool
	}{
		{name: "within 60 day tolerance", toleranceDays: 60, wantMatch: true},
		{name: "outside 10 day tolerance", toleranceDays: 10, wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := newMatchPool([]*domain.PaymentRecord{paymentOn(paymentDate)}, tt.toleranceDays)
			_, ok := pool.Take(dueDate)
			assert.Equal(t, tt.wantMatch, ok)
		})
	}
}

func TestMatchPool_PicksClosest(t *testing.T) {
	near := paymentOn(date(2025, time.March, 3))
	far := paymentOn(date(2025, time.March, 20))

	pool := newMatchPool([]*domain.PaymentRecord{far, near}, 60)
	matched, ok := pool.Take(date(2025, time.March, 1))
	require.True(t, ok)
	assert.Equal(t, near.ID, matched.ID)
}

func TestMatchPool_TieBreaksOnEarlierPayment(t *testing.T) {
	before := paymentOn(date(2025, time.February, 24)) // 5 days before
	after := paymentOn(date(2025, time.March, 6))      // 5 days after

	pool := newMatchPool([]*domain.PaymentRecord{after, before}, 60)
	matched, ok := pool.Take(date(2025, time.March, 1))
	require.True(t, ok)
	assert.Equal(t, before.ID, matched.ID)
}

func TestMatchPool_EntryMatchedOnce(t *testing.T) {
	only := paymentOn(date(2025, time.March, 1))

	pool := newMatchPool([]*domain.PaymentRecord{only}, 60)

	_, ok := pool.Take(date(2025, time.March, 1))
	require.True(t, ok)

	_, ok = pool.Take(date(2025, time.March, 1))
	assert.False(t, ok)
	assert.Empty(t, pool.Remaining())
}

func TestMatchPool_IgnoresPendingEntries(t *testing.T) {
	pending := paymentOn(date(2025, time.March, 1))
	pending.Status = "Pendente"

	pool := newMatchPool([]*domain.PaymentRecord{pending}, 60)
	_, ok := pool.Take(date(2025, time.March, 1))
	assert.False(t, ok)
}
