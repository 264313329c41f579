package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateBorrowerID(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		expectError bool
	}{
		{"valid id", "bob", false},
		{"valid address-like id", "0x7099797c51812dc3a010c7d01b50e0d17dc79c8", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", MaxBorrowerIDLength+1), true},
		{"max length", strings.Repeat("a", MaxBorrowerIDLength), false},
		{"contains newline", "bob\nalice", true},
		{"contains null byte", "bob\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBorrowerID(tt.id)

			if tt.expectError && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateLoanTerms(t *testing.T) {
	tests := []struct {
		name        string
		principal   int64
		income      int64
		score       int
		expectError bool
	}{
		{"valid terms", 1000, 5000, 720, false},
		{"zero principal", 0, 5000, 720, true},
		{"negative principal", -1, 5000, 720, true},
		{"principal over maximum", MaxLoanAmount + 1, 5000, 720, true},
		{"principal at maximum", MaxLoanAmount, 5000, 720, false},
		{"zero income", 1000, 0, 720, true},
		{"negative income", 1000, -5000, 720, true},
		{"score at floor", 1000, 5000, CreditScoreFloor, false},
		{"score at ceiling", 1000, 5000, CreditScoreCeiling, false},
		{"score below floor", 1000, 5000, CreditScoreFloor - 1, true},
		{"score above ceiling", 1000, 5000, CreditScoreCeiling + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLoanTerms(tt.principal, tt.income, tt.score)

			if tt.expectError && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
