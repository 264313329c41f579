package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func testPolicy() UnderwritingPolicy {
	return UnderwritingPolicy{
		MinCreditScore: 600,
		MaxIncomeRatio: decimal.NewFromInt(1),
		Installments:   4,
	}
}

func TestUnderwritingPolicy_Evaluate(t *testing.T) {
	tests := []struct {
		name           string
		principal      int64
		declaredIncome int64
		creditScore    int
		expectEligible bool
		expectPayment  int64
		expectError    bool
	}{
		{
			name:           "eligible request",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    720,
			expectEligible: true,
			expectPayment:  250,
		},
		{
			name:           "score exactly at minimum is eligible",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    600,
			expectEligible: true,
			expectPayment:  250,
		},
		{
			name:           "score one below minimum is rejected",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    599,
			expectEligible: false,
		},
		{
			name:           "low score is rejected",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    550,
			expectEligible: false,
		},
		{
			name:           "principal equal to income cap is eligible",
			principal:      5000,
			declaredIncome: 5000,
			creditScore:    700,
			expectEligible: true,
			expectPayment:  1250,
		},
		{
			name:           "principal above income cap is rejected",
			principal:      5001,
			declaredIncome: 5000,
			creditScore:    700,
			expectEligible: false,
		},
		{
			name:           "zero principal",
			principal:      0,
			declaredIncome: 5000,
			creditScore:    700,
			expectError:    true,
		},
		{
			name:           "negative principal",
			principal:      -100,
			declaredIncome: 5000,
			creditScore:    700,
			expectError:    true,
		},
		{
			name:           "zero income",
			principal:      1000,
			declaredIncome: 0,
			creditScore:    700,
			expectError:    true,
		},
		{
			name:           "score below valid range",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    299,
			expectError:    true,
		},
		{
			name:           "score above valid range",
			principal:      1000,
			declaredIncome: 5000,
			creditScore:    851,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := testPolicy().Evaluate(tt.principal, tt.declaredIncome, tt.creditScore)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if decision.Eligible != tt.expectEligible {
				t.Errorf("expected eligible=%v, got %v (reason %q)", tt.expectEligible, decision.Eligible, decision.Reason)
			}
			if tt.expectEligible && decision.MonthlyPayment != tt.expectPayment {
				t.Errorf("expected monthly payment %d, got %d", tt.expectPayment, decision.MonthlyPayment)
			}
			if !tt.expectEligible && decision.Reason == "" {
				t.Error("expected a rejection reason")
			}
		})
	}
}

func TestUnderwritingPolicy_EvaluateIsPure(t *testing.T) {
	policy := testPolicy()

	first, err := policy.Evaluate(1000, 5000, 720)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := policy.Evaluate(1000, 5000, 720)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected identical decisions, got %+v and %+v", first, second)
	}
}

func TestAmortize(t *testing.T) {
	tests := []struct {
		name         string
		principal    int64
		installments int
		expected     int64
	}{
		{"evenly divisible", 1000, 4, 250},
		{"rounds up", 1001, 4, 251},
		{"single installment", 999, 1, 999},
		{"principal smaller than installments", 3, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amortize(tt.principal, tt.installments); got != tt.expected {
				t.Errorf("amortize(%d, %d) = %d, expected %d", tt.principal, tt.installments, got, tt.expected)
			}
		})
	}
}
