package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected InstallmentStatus
	}{
		{"Pago", StatusPaid},
		{"PAGO", StatusPaid},
		{"pago", StatusPaid},
		{"  Pago  ", StatusPaid},
		{"Paga", StatusPaid},
		{"paid", StatusPaid},
		{"Pendente", StatusPending},
		{"PENDENTE", StatusPending},
		{"Atrasado", StatusPending},
		{"", StatusPending},
		{"garbage", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.raw))
		})
	}
}

func TestDonationFutureValue(t *testing.T) {
	recurring := decimal.NewFromFloat(25.00)

	withField := &Donation{
		TotalValue:           decimal.NewFromFloat(100.00),
		RecurringFutureValue: &recurring,
		InstallmentCount:     5,
	}
	assert.True(t, withField.FutureValue().Equal(decimal.NewFromFloat(25.00)))

	legacy := &Donation{
		TotalValue:       decimal.NewFromFloat(100.00),
		InstallmentCount: 4,
	}
	assert.True(t, legacy.FutureValue().Equal(decimal.NewFromFloat(25.00)))

	single := &Donation{
		TotalValue:       decimal.NewFromFloat(100.00),
		InstallmentCount: 1,
	}
	assert.True(t, single.FutureValue().Equal(decimal.NewFromFloat(100.00)))
}
