package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueDate(t *testing.T) {
	tests := []struct {
		name        string
		start       time.Time
		monthOffset int
		isRecurring bool
		expected    time.Time
	}{
		{
			name:        "non-recurring returns start date",
			start:       date(2025, time.January, 10),
			monthOffset: 3,
			isRecurring: false,
			expected:    date(2025, time.January, 10),
		},
		{
			name:        "offset zero returns start date",
			start:       date(2025, time.January, 10),
			monthOffset: 0,
			isRecurring: true,
			expected:    date(2025, time.January, 10),
		},
		{
			name:        "one month later",
			start:       date(2025, time.January, 10),
			monthOffset: 1,
			isRecurring: true,
			expected:    date(2025, time.February, 10),
		},
		{
			name:        "crosses year boundary",
			start:       date(2025, time.November, 15),
			monthOffset: 3,
			isRecurring: true,
			expected:    date(2026, time.February, 15),
		},
		{
			name:        "Jan 31 overflows into March",
			start:       date(2025, time.January, 31),
			monthOffset: 1,
			isRecurring: true,
			expected:    date(2025, time.March, 3),
		},
		{
			name:        "time of day is dropped",
			start:       time.Date(2025, time.January, 10, 17, 30, 0, 0, time.UTC),
			monthOffset: 1,
			isRecurring: true,
			expected:    date(2025, time.February, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DueDate(tt.start, tt.monthOffset, tt.isRecurring)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDueDate_MonotonicAcrossOverflow(t *testing.T) {
	// Month-end starts overflow (Jan 31 -> Mar 3) but successive offsets
	// must never go backwards.
	start := date(2025, time.January, 31)
	prev := DueDate(start, 0, true)
	for offset := 1; offset <= 12; offset++ {
		next := DueDate(start, offset, true)
		assert.False(t, next.Before(prev), "offset %d went backwards", offset)
		prev = next
	}
}
