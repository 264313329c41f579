package usecase

import (
	"context"

	"github.com/iho/loanledger/internal/domain"
)

// EventUseCase serves the loan audit trail.
type EventUseCase struct {
	eventRepo LoanEventRepository
}

// NewEventUseCase creates a new EventUseCase.
func NewEventUseCase(eventRepo LoanEventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

// ListEventsInput represents input for listing loan events.
type ListEventsInput struct {
	BorrowerID string
	Limit      int
	Offset     int
}

// ListEvents lists a borrower's loan events, newest first.
func (uc *EventUseCase) ListEvents(ctx context.Context, input ListEventsInput) ([]*domain.LoanEvent, error) {
	if err := domain.ValidateBorrowerID(input.BorrowerID); err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.eventRepo.ListByBorrower(ctx, input.BorrowerID, input.Limit, input.Offset)
}
