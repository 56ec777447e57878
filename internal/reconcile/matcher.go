package reconcile

import (
	"sort"
	"time"

	"github.com/doemais/donation-engine/internal/domain"
	"github.com/doemais/donation-engine/pkg/utils"
)

// matchPool holds the paid entries of a donation's payment history and hands
// them out to installment slots by fuzzy date proximity. The two logs are
// populated independently, so a payment rarely lands exactly on a scheduled
// due date; anything within the tolerance window counts.
//
// Each entry can be matched at most once: Take removes the winner from the
// pool so no payment is counted against two installments.
type matchPool struct {
	entries       []*domain.PaymentRecord
	toleranceDays int
}

func newMatchPool(payments []*domain.PaymentRecord, toleranceDays int) *matchPool {
	entries := make([]*domain.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if domain.NormalizeStatus(p.Status) == domain.StatusPaid {
			entries = append(entries, p)
		}
	}
	// Earlier payment dates first, so equidistant candidates resolve to the
	// earlier payment deterministically.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PaymentDate.Before(entries[j].PaymentDate)
	})
	return &matchPool{entries: entries, toleranceDays: toleranceDays}
}

// Take returns the unmatched paid entry closest in days to dueDate, provided
// the distance is within the tolerance window, and removes it from the pool.
func (p *matchPool) Take(dueDate time.Time) (*domain.PaymentRecord, bool) {
	bestIdx := -1
	bestDist := 0
	for i, entry := range p.entries {
		dist := utils.DaysBetween(entry.PaymentDate, dueDate)
		if dist > p.toleranceDays {
			continue
		}
		if bestIdx == -1 || dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	if bestIdx == -1 {
		return nil, false
	}

	matched := p.entries[bestIdx]
	p.entries = append(p.entries[:bestIdx], p.entries[bestIdx+1:]...)
	return matched, true
}

// Remaining returns the paid entries no installment slot claimed.
func (p *matchPool) Remaining() []*domain.PaymentRecord {
	return p.entries
}
