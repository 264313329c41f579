package dto

import (
	"time"

	"github.com/iho/loanledger/internal/domain"
)

// LoanResponse represents a loan record in API responses.
type LoanResponse struct {
	BorrowerID       string    `json:"borrower_id"`
	Principal        int64     `json:"principal"`
	DeclaredIncome   int64     `json:"declared_income"`
	CreditScore      int       `json:"credit_score"`
	Status           string    `json:"status"`
	RemainingBalance int64     `json:"remaining_balance"`
	MonthlyPayment   int64     `json:"monthly_payment"`
	PaymentsMade     int       `json:"payments_made"`
	LastPaymentLate  bool      `json:"last_payment_late"`
	RejectionReason  string    `json:"rejection_reason,omitempty"`
	Version          int64     `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LoanFromDomain converts a domain loan record to a response.
func LoanFromDomain(l *domain.LoanRecord) *LoanResponse {
	return &LoanResponse{
		BorrowerID:       l.BorrowerID,
		Principal:        l.Principal,
		DeclaredIncome:   l.DeclaredIncome,
		CreditScore:      l.CreditScore,
		Status:           string(l.Status),
		RemainingBalance: l.RemainingBalance,
		MonthlyPayment:   l.MonthlyPayment,
		PaymentsMade:     l.PaymentsMade,
		LastPaymentLate:  l.LastPaymentLate,
		RejectionReason:  l.RejectionReason,
		Version:          l.Version,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// EventResponse represents a loan event in API responses.
type EventResponse struct {
	ID           string    `json:"id"`
	BorrowerID   string    `json:"borrower_id"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	StatusAfter  string    `json:"status_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventFromDomain converts a domain loan event to a response.
func EventFromDomain(e *domain.LoanEvent) *EventResponse {
	return &EventResponse{
		ID:           e.ID,
		BorrowerID:   e.BorrowerID,
		Type:         e.Type,
		Amount:       e.Amount,
		BalanceAfter: e.BalanceAfter,
		StatusAfter:  string(e.StatusAfter),
		CreatedAt:    e.CreatedAt,
	}
}

// EventsFromDomain converts domain loan events to responses.
func EventsFromDomain(events []*domain.LoanEvent) []*EventResponse {
	result := make([]*EventResponse, len(events))
	for i, e := range events {
		result[i] = EventFromDomain(e)
	}
	return result
}

// ListEventsResponse wraps an event listing.
type ListEventsResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int64            `json:"total"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
