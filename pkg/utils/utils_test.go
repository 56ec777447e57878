package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInstallmentValue(t *testing.T) {
	tests := []struct {
		name     string
		total    decimal.Decimal
		count    int
		expected decimal.Decimal
	}{
		{
			name:     "even split",
			total:    decimal.NewFromFloat(100.00),
			count:    4,
			expected: decimal.NewFromFloat(25.00),
		},
		{
			name:     "rounds to 2 decimal places",
			total:    decimal.NewFromFloat(100.00),
			count:    3,
			expected: decimal.NewFromFloat(33.33),
		},
		{
			name:     "single installment keeps total",
			total:    decimal.NewFromFloat(100.00),
			count:    1,
			expected: decimal.NewFromFloat(100.00),
		},
		{
			name:     "zero count keeps total",
			total:    decimal.NewFromFloat(100.00),
			count:    0,
			expected: decimal.NewFromFloat(100.00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InstallmentValue(tt.total, tt.count)
			assert.True(t, result.Equal(tt.expected),
				"Expected %v, but got %v", tt.expected, result)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, DaysBetween(a, b))
	assert.Equal(t, 24, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Time-of-day must not shift the distance.
	late := time.Date(2025, time.March, 25, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 24, DaysBetween(a, late))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsOverdue(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsOverdue(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsOverdue(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), now))
}
