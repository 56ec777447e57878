package reconcile

import (
	"github.com/doemais/donation-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Aggregate reduces a reconciled sequence to its summary totals.
// GrandTotal = PaidTotal + PendingTotal and PaidCount + PendingCount equals
// the sequence length; all sums are decimal-exact.
func Aggregate(installments []*domain.ReconciledInstallment) *domain.Totals {
	totals := &domain.Totals{
		PaidTotal:    decimal.Zero,
		PendingTotal: decimal.Zero,
		GrandTotal:   decimal.Zero,
	}

	for _, inst := range installments {
		if inst.Status == domain.StatusPaid {
			totals.PaidCount++
			totals.PaidTotal = totals.PaidTotal.Add(inst.Value)
		} else {
			totals.PendingCount++
			totals.PendingTotal = totals.PendingTotal.Add(inst.Value)
		}
	}

	totals.GrandTotal = totals.PaidTotal.Add(totals.PendingTotal)
	return totals
}
