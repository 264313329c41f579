package domain

import "github.com/shopspring/decimal"

// PenaltyPolicy computes the late payment charge. A non-zero Rate charges a
// fraction of the remaining balance; otherwise FixedAmount is charged.
type PenaltyPolicy struct {
	Rate         decimal.Decimal
	FixedAmount  int64
	Installments int
}

// Charge computes the penalty for the given remaining balance, rounded up to
// a whole minor unit.
func (p PenaltyPolicy) Charge(remainingBalance int64) int64 {
	if p.Rate.IsZero() {
		return p.FixedAmount
	}
	charge := p.Rate.Mul(decimal.NewFromInt(remainingBalance)).Ceil()
	return charge.IntPart()
}

// Reamortize recomputes the installment so that balance spreads across the
// installments left after paymentsMade, never below one installment.
func (p PenaltyPolicy) Reamortize(balance int64, paymentsMade int) int64 {
	remaining := p.Installments - paymentsMade
	if remaining < 1 {
		remaining = 1
	}
	return amortize(balance, remaining)
}
