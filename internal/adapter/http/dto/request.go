package dto

import (
	"github.com/iho/loanledger/internal/usecase"
)

// RequestLoanRequest represents a borrower's loan request. Monetary fields
// are int64 minor currency units.
type RequestLoanRequest struct {
	BorrowerID     string `json:"borrower_id"`
	Principal      int64  `json:"principal"`
	DeclaredIncome int64  `json:"declared_income"`
	CreditScore    int    `json:"credit_score"`
}

// ToUseCaseInput converts to use case input.
func (r *RequestLoanRequest) ToUseCaseInput() usecase.RequestLoanInput {
	return usecase.RequestLoanInput{
		BorrowerID:     r.BorrowerID,
		Principal:      r.Principal,
		DeclaredIncome: r.DeclaredIncome,
		CreditScore:    r.CreditScore,
	}
}

// MakePaymentRequest represents a payment against a loan. Late is optional;
// when omitted the server-side delinquency oracle decides.
type MakePaymentRequest struct {
	Amount int64 `json:"amount"`
	Late   *bool `json:"late,omitempty"`
}

// ToUseCaseInput converts to use case input for the given borrower.
func (r *MakePaymentRequest) ToUseCaseInput(borrowerID string) usecase.MakePaymentInput {
	return usecase.MakePaymentInput{
		BorrowerID: borrowerID,
		Amount:     r.Amount,
		Late:       r.Late,
	}
}
