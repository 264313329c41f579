package domain

import (
	"fmt"
	"strings"
)

// Validation constants
const (
	MaxBorrowerIDLength = 128
	MaxLoanAmount       = 1_000_000_000_000 // 1 trillion minor units
)

// ValidateBorrowerID validates the shape of a borrower identity token. The
// token itself is opaque.
func ValidateBorrowerID(id string) error {
	id = strings.TrimSpace(id)

	if id == "" {
		return fmt.Errorf("%w: borrower id cannot be empty", ErrInvalidInput)
	}

	if len(id) > MaxBorrowerIDLength {
		return fmt.Errorf("%w: borrower id exceeds %d characters", ErrInvalidInput, MaxBorrowerIDLength)
	}

	for _, r := range id {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: borrower id contains control characters", ErrInvalidInput)
		}
	}

	return nil
}

// ValidateLoanTerms validates the raw request inputs before any policy is
// consulted.
func ValidateLoanTerms(principal, declaredIncome int64, creditScore int) error {
	if principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}

	if principal > MaxLoanAmount {
		return fmt.Errorf("%w: principal exceeds maximum of %d", ErrInvalidInput, int64(MaxLoanAmount))
	}

	if declaredIncome <= 0 {
		return fmt.Errorf("%w: declared income must be positive", ErrInvalidInput)
	}

	if creditScore < CreditScoreFloor || creditScore > CreditScoreCeiling {
		return fmt.Errorf("%w: credit score %d outside valid range %d-%d", ErrInvalidInput, creditScore, CreditScoreFloor, CreditScoreCeiling)
	}

	return nil
}
