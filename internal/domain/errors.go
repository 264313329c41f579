package domain

import "errors"

var (
	// Loan record errors
	ErrLoanNotFound      = errors.New("loan not found")
	ErrLoanAlreadyActive = errors.New("borrower already has an active loan")
	ErrInvalidState      = errors.New("operation not valid for current loan status")
	ErrConflict          = errors.New("loan record modified concurrently")

	// Payment errors
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientPayment = errors.New("payment below monthly installment")
	ErrNoPenaltyDue        = errors.New("no penalty due")
)
