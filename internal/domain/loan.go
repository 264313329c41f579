package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a loan record.
type Status string

const (
	StatusRequested      Status = "requested"
	StatusApproved       Status = "approved"
	StatusRejected       Status = "rejected"
	StatusActive         Status = "active"
	StatusPenaltyPending Status = "penalty_pending"
	StatusClosed         Status = "closed"
)

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusClosed || s == StatusRejected
}

// LoanRecord represents the single loan a borrower may hold.
// All monetary amounts are int64 minor currency units.
type LoanRecord struct {
	BorrowerID       string
	Principal        int64
	DeclaredIncome   int64
	CreditScore      int
	Status           Status
	RemainingBalance int64
	MonthlyPayment   int64
	PaymentsMade     int
	LastPaymentLate  bool
	RejectionReason  string
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AcceptsPayment reports whether the record is in a payable status.
func (l *LoanRecord) AcceptsPayment() bool {
	switch l.Status {
	case StatusApproved, StatusActive, StatusPenaltyPending:
		return true
	}
	return false
}

// ValidatePayment checks amount against the current installment and balance.
func (l *LoanRecord) ValidatePayment(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: payment amount must be positive", ErrInvalidInput)
	}
	if amount > l.RemainingBalance {
		return fmt.Errorf("%w: payment %d exceeds remaining balance %d", ErrInvalidInput, amount, l.RemainingBalance)
	}
	// The final payment may be smaller than the installment, but must settle
	// the balance exactly.
	if amount < l.MonthlyPayment && amount != l.RemainingBalance {
		return fmt.Errorf("%w: got %d, installment is %d", ErrInsufficientPayment, amount, l.MonthlyPayment)
	}
	return nil
}

// ApplyPayment deducts amount from the balance and advances the state machine.
// Callers must validate with ValidatePayment first.
func (l *LoanRecord) ApplyPayment(amount int64, late bool, now time.Time) {
	l.RemainingBalance -= amount
	l.PaymentsMade++
	l.LastPaymentLate = late

	if l.RemainingBalance == 0 {
		l.Status = StatusClosed
	} else {
		l.Status = StatusActive
	}
	l.UpdatedAt = now
}

// ApplyPenaltyCharge increases the balance by charge, installs the
// re-amortized installment and moves the record to penalty_pending.
func (l *LoanRecord) ApplyPenaltyCharge(charge, newMonthlyPayment int64, now time.Time) {
	l.RemainingBalance += charge
	l.MonthlyPayment = newMonthlyPayment
	l.LastPaymentLate = false
	l.Status = StatusPenaltyPending
	l.UpdatedAt = now
}

// Approve sets the underwriting terms and opens the balance.
func (l *LoanRecord) Approve(monthlyPayment int64, now time.Time) {
	l.Status = StatusApproved
	l.MonthlyPayment = monthlyPayment
	l.RemainingBalance = l.Principal
	l.UpdatedAt = now
}

// Reject marks the record rejected with a human-readable reason.
func (l *LoanRecord) Reject(reason string, now time.Time) {
	l.Status = StatusRejected
	l.RejectionReason = reason
	l.UpdatedAt = now
}
