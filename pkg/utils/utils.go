package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentValue calculates the even-split installment value for legacy
// donations that predate the dedicated recurring-value field.
// Formula: TotalValue / InstallmentCount, rounded to 2 decimal places.
func InstallmentValue(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 1 {
		return total
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// DaysBetween returns the absolute day distance between two dates,
// ignoring the time-of-day component.
func DaysBetween(a, b time.Time) int {
	a = TruncateToDay(a)
	b = TruncateToDay(b)
	diff := int(a.Sub(b).Hours() / 24)
	if diff < 0 {
		return -diff
	}
	return diff
}

// IsOverdue checks if a due date is strictly before the reference date.
func IsOverdue(dueDate time.Time, now time.Time) bool {
	return TruncateToDay(dueDate).Before(TruncateToDay(now))
}

// TruncateToDay drops the time-of-day component of a timestamp.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DecimalFromFloat converts float64 to decimal.Decimal
func DecimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DecimalFromString converts string to decimal.Decimal
func DecimalFromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
