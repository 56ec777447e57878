package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/doemais/donation-engine/internal/domain"
)

func TestAggregate(t *testing.T) {
	installments := []*domain.ReconciledInstallment{
		{Number: 1, Value: decimal.NewFromFloat(100.00), Status: domain.StatusPaid},
		{Number: 2, Value: decimal.NewFromFloat(25.00), Status: domain.StatusPending},
		{Number: 3, Value: decimal.NewFromFloat(25.00), Status: domain.StatusPaid},
	}

	totals := Aggregate(installments)

	assert.Equal(t, 2, totals.PaidCount)
	assert.Equal(t, 1, totals.PendingCount)
	assert.True(t, totals.PaidTotal.Equal(decimal.NewFromFloat(125.00)))
	assert.True(t, totals.PendingTotal.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromFloat(150.00)))
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)

	assert.Equal(t, 0, totals.PaidCount)
	assert.Equal(t, 0, totals.PendingCount)
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestAggregate_DecimalExact(t *testing.T) {
	// 0.1 + 0.2 style inputs must not drift.
	installments := []*domain.ReconciledInstallment{
		{Number: 1, Value: decimal.NewFromFloat(0.10), Status: domain.StatusPaid},
		{Number: 2, Value: decimal.NewFromFloat(0.20), Status: domain.StatusPending},
	}

	totals := Aggregate(installments)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromFloat(0.30)))
}
