// Package oracle provides delinquency oracle implementations. The lifecycle
// engine consumes the late signal but never computes it; callers pick which
// oracle drives penalty timing.
package oracle

import (
	"context"
	"time"

	"github.com/iho/loanledger/internal/domain"
)

// Static answers with a fixed verdict. Useful for development and as the
// fallback when callers supply the late flag explicitly per payment.
type Static struct {
	Late bool
}

// IsLate returns the configured verdict.
func (s Static) IsLate(ctx context.Context, record *domain.LoanRecord) (bool, error) {
	return s.Late, nil
}

// Deadline flags a payment late when the current installment's due date has
// passed. The due date for installment n is CreatedAt + n*Period; the clock
// is injected so the engine stays free of wall-clock reads.
type Deadline struct {
	Period time.Duration
	Grace  time.Duration
	Now    func() time.Time
}

// IsLate reports whether the next installment is past due.
func (d Deadline) IsLate(ctx context.Context, record *domain.LoanRecord) (bool, error) {
	now := time.Now().UTC()
	if d.Now != nil {
		now = d.Now()
	}

	due := record.CreatedAt.Add(time.Duration(record.PaymentsMade+1) * d.Period).Add(d.Grace)

	return now.After(due), nil
}
