package reconcile

import (
	"time"

	"github.com/doemais/donation-engine/pkg/utils"
)

// DueDate calculates the due date of an installment offset months after the
// donation start date. Non-recurring donations and offset 0 return the start
// date itself (the first installment is due on the day the donation was
// registered).
//
// Month arithmetic follows time.AddDate: Jan 31 + 1 month normalizes to
// Mar 3. The overflow is consistent across offsets, so due dates of
// consecutive installments never go backwards.
func DueDate(startDate time.Time, monthOffset int, isRecurring bool) time.Time {
	startDate = utils.TruncateToDay(startDate)
	if !isRecurring || monthOffset <= 0 {
		return startDate
	}
	return startDate.AddDate(0, monthOffset, 0)
}
