package reconcile

import (
	"fmt"

	"github.com/doemais/donation-engine/internal/domain"
	customError "github.com/doemais/donation-engine/pkg/errors"
	"github.com/doemais/donation-engine/pkg/utils"
)

// DefaultToleranceDays is the widest matching window observed to be safe in
// practice: monthly installments are ~30 days apart, and a payment is
// attributed to the nearest due date first, so 60 days only catches strays.
const DefaultToleranceDays = 60

// Reconciler merges a donation's payment history with its scheduled
// installments into one densely numbered carnê view. It performs no I/O and
// holds no state between calls: the same inputs always yield the same
// output.
type Reconciler struct {
	toleranceDays int
}

func New(toleranceDays int) *Reconciler {
	if toleranceDays <= 0 {
		toleranceDays = DefaultToleranceDays
	}
	return &Reconciler{toleranceDays: toleranceDays}
}

// Result is one reconciliation pass: the ordered installments, their
// totals, and any data-integrity warnings found along the way. Warnings are
// diagnostics for the caller to log; they never abort the reconciliation.
type Result struct {
	Installments []*domain.ReconciledInstallment
	Totals       *domain.Totals
	Warnings     []string
}

// Reconcile produces the carnê view for one donation.
//
// Installment 1 is the historical one: due on the donation date, worth
// TotalValue, paid if the payment history has an entry near that date.
// Installments 2..N take their due dates from calendar month offsets and
// their values from the donation terms; their paid/pending status comes from
// the scheduled-installment row when one exists, falling back to payment
// matching when the row is missing.
func (r *Reconciler) Reconcile(
	donation *domain.Donation,
	payments []*domain.PaymentRecord,
	schedule []*domain.ScheduledInstallment,
) (*Result, error) {
	if donation.TotalValue.IsNegative() {
		return nil, customError.WrapInvalidDonationValue(donation.TotalValue.String())
	}
	if donation.RecurringFutureValue != nil && donation.RecurringFutureValue.IsNegative() {
		return nil, customError.WrapInvalidDonationValue(donation.RecurringFutureValue.String())
	}

	result := &Result{}

	count := donation.InstallmentCount
	if count < 1 {
		result.warnf("donation %s: installment count %d normalized to 1", donation.DonationID, count)
		count = 1
	}
	if !donation.IsRecurring {
		count = 1
	}

	pool := newMatchPool(payments, r.toleranceDays)

	byNumber := make(map[int]*domain.ScheduledInstallment, len(schedule))
	for _, row := range schedule {
		byNumber[row.InstallmentNumber] = row
	}

	result.Installments = make([]*domain.ReconciledInstallment, 0, count)

	first := &domain.ReconciledInstallment{
		Number:  1,
		DueDate: utils.TruncateToDay(donation.DonationDate),
		Value:   donation.TotalValue,
		Status:  domain.StatusPending,
	}
	if entry, ok := pool.Take(first.DueDate); ok {
		paidDate := utils.TruncateToDay(entry.PaymentDate)
		first.Status = domain.StatusPaid
		first.PaidDate = &paidDate
		first.SourceID = entry.ID.String()
	}
	result.Installments = append(result.Installments, first)

	futureValue := donation.FutureValue()
	for number := 2; number <= count; number++ {
		inst := &domain.ReconciledInstallment{
			Number:  number,
			DueDate: DueDate(donation.DonationDate, number-1, true),
			Value:   futureValue,
			Status:  domain.StatusPending,
		}

		if row, ok := byNumber[number]; ok {
			inst.IsFuture = true
			inst.SourceID = row.ID.String()
			if domain.NormalizeStatus(row.Status) == domain.StatusPaid {
				// The schedule row is authoritative for status; the payment
				// history only contributes the paid date.
				inst.Status = domain.StatusPaid
				if entry, matched := pool.Take(inst.DueDate); matched {
					paidDate := utils.TruncateToDay(entry.PaymentDate)
					inst.PaidDate = &paidDate
				} else {
					result.warnf("donation %s: installment %d marked paid with no payment within %d days of %s",
						donation.DonationID, number, r.toleranceDays, inst.DueDate.Format("2006-01-02"))
				}
			}
		} else {
			result.warnf("donation %s: no scheduled row for installment %d, deriving status from payment history",
				donation.DonationID, number)
			if entry, matched := pool.Take(inst.DueDate); matched {
				paidDate := utils.TruncateToDay(entry.PaymentDate)
				inst.Status = domain.StatusPaid
				inst.PaidDate = &paidDate
				inst.SourceID = entry.ID.String()
			}
		}

		result.Installments = append(result.Installments, inst)
	}

	for _, leftover := range pool.Remaining() {
		result.warnf("donation %s: payment %s of %s on %s matched no installment",
			donation.DonationID, leftover.ID, leftover.Value, leftover.PaymentDate.Format("2006-01-02"))
	}

	result.Totals = Aggregate(result.Installments)
	return result, nil
}

func (r *Result) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
