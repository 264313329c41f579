package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Credit score bounds accepted as input.
const (
	CreditScoreFloor   = 300
	CreditScoreCeiling = 850
)

// UnderwritingPolicy decides loan eligibility and computes repayment terms.
// All fields are configuration, fixed at construction.
type UnderwritingPolicy struct {
	MinCreditScore int
	// MaxIncomeRatio bounds principal relative to declared income:
	// principal must not exceed MaxIncomeRatio * declaredIncome.
	MaxIncomeRatio decimal.Decimal
	Installments   int
}

// UnderwritingDecision is the outcome of evaluating a loan request.
// Ineligibility is a decision, not an error.
type UnderwritingDecision struct {
	Eligible       bool
	MonthlyPayment int64
	Reason         string
}

// Evaluate runs the policy against a loan request. It is deterministic and
// has no side effects.
func (p UnderwritingPolicy) Evaluate(principal, declaredIncome int64, creditScore int) (UnderwritingDecision, error) {
	if err := ValidateLoanTerms(principal, declaredIncome, creditScore); err != nil {
		return UnderwritingDecision{}, err
	}

	if creditScore < p.MinCreditScore {
		return UnderwritingDecision{
			Eligible: false,
			Reason:   fmt.Sprintf("credit score %d below minimum %d", creditScore, p.MinCreditScore),
		}, nil
	}

	maxPrincipal := p.MaxIncomeRatio.Mul(decimal.NewFromInt(declaredIncome))
	if decimal.NewFromInt(principal).GreaterThan(maxPrincipal) {
		return UnderwritingDecision{
			Eligible: false,
			Reason:   fmt.Sprintf("principal %d exceeds %s of declared income %d", principal, p.MaxIncomeRatio.String(), declaredIncome),
		}, nil
	}

	return UnderwritingDecision{
		Eligible:       true,
		MonthlyPayment: amortize(principal, p.Installments),
	}, nil
}

// amortize spreads principal across n installments, rounding up so the loan
// fully amortizes with no sub-unit residual. The final installment is floored
// to the remaining balance at payment time.
func amortize(principal int64, installments int) int64 {
	n := int64(installments)
	return (principal + n - 1) / n
}
