package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPenaltyPolicy_Charge(t *testing.T) {
	tests := []struct {
		name     string
		policy   PenaltyPolicy
		balance  int64
		expected int64
	}{
		{
			name:     "ten percent of balance",
			policy:   PenaltyPolicy{Rate: decimal.RequireFromString("0.10"), Installments: 4},
			balance:  500,
			expected: 50,
		},
		{
			name:     "fractional charge rounds up",
			policy:   PenaltyPolicy{Rate: decimal.RequireFromString("0.10"), Installments: 4},
			balance:  505,
			expected: 51,
		},
		{
			name:     "fixed amount when rate is zero",
			policy:   PenaltyPolicy{FixedAmount: 75, Installments: 4},
			balance:  500,
			expected: 75,
		},
		{
			name:     "zero balance with rate",
			policy:   PenaltyPolicy{Rate: decimal.RequireFromString("0.10"), Installments: 4},
			balance:  0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Charge(tt.balance); got != tt.expected {
				t.Errorf("Charge(%d) = %d, expected %d", tt.balance, got, tt.expected)
			}
		})
	}
}

func TestPenaltyPolicy_Reamortize(t *testing.T) {
	policy := PenaltyPolicy{Rate: decimal.RequireFromString("0.10"), Installments: 4}

	tests := []struct {
		name         string
		balance      int64
		paymentsMade int
		expected     int64
	}{
		{"two installments left", 550, 2, 275},
		{"one installment left", 275, 3, 275},
		{"past final installment spreads over one", 100, 4, 100},
		{"rounds up", 551, 2, 276},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Reamortize(tt.balance, tt.paymentsMade); got != tt.expected {
				t.Errorf("Reamortize(%d, %d) = %d, expected %d", tt.balance, tt.paymentsMade, got, tt.expected)
			}
		})
	}
}
