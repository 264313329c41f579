package domain

import "time"

// Loan event types.
const (
	EventLoanRequested  = "loan.requested"
	EventLoanApproved   = "loan.approved"
	EventLoanRejected   = "loan.rejected"
	EventPaymentMade    = "loan.payment"
	EventPenaltyApplied = "loan.penalty"
	EventLoanClosed     = "loan.closed"
)

// LoanEvent is one entry in the append-only audit trail of a loan. Terminal
// records may be overwritten by a fresh request; events never are.
type LoanEvent struct {
	ID           string
	BorrowerID   string
	Type         string
	Amount       int64
	BalanceAfter int64
	StatusAfter  Status
	CreatedAt    time.Time
}
