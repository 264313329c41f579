package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

type stubEventService struct {
	listFunc func(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error)
}

func (s *stubEventService) ListEvents(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error) {
	return s.listFunc(ctx, input)
}

func TestEventHandler_ListByBorrower(t *testing.T) {
	t.Run("lists events", func(t *testing.T) {
		now := time.Now().UTC()
		svc := &stubEventService{
			listFunc: func(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error) {
				return []*domain.LoanEvent{
					{ID: "b", BorrowerID: input.BorrowerID, Type: domain.EventPaymentMade, Amount: 250, BalanceAfter: 750, StatusAfter: domain.StatusActive, CreatedAt: now},
					{ID: "a", BorrowerID: input.BorrowerID, Type: domain.EventLoanRequested, Amount: 1000, StatusAfter: domain.StatusRequested, CreatedAt: now},
				}, nil
			},
		}
		h := NewEventHandler(svc)

		r := withBorrowerID(httptest.NewRequest(http.MethodGet, "/api/v1/loans/bob/events", nil), "bob")
		w := httptest.NewRecorder()

		h.ListByBorrower(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp dto.ListEventsResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Total != 2 || len(resp.Events) != 2 {
			t.Errorf("expected 2 events, got %+v", resp)
		}
		if resp.Events[0].Type != domain.EventPaymentMade {
			t.Errorf("expected newest event first, got %q", resp.Events[0].Type)
		}
	})

	t.Run("pagination params forwarded", func(t *testing.T) {
		var gotInput usecase.ListEventsInput
		svc := &stubEventService{
			listFunc: func(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error) {
				gotInput = input
				return nil, nil
			},
		}
		h := NewEventHandler(svc)

		r := withBorrowerID(httptest.NewRequest(http.MethodGet, "/api/v1/loans/bob/events?limit=5&offset=10", nil), "bob")
		w := httptest.NewRecorder()

		h.ListByBorrower(w, r)

		if gotInput.Limit != 5 || gotInput.Offset != 10 {
			t.Errorf("expected limit=5 offset=10, got %+v", gotInput)
		}
	})

	t.Run("invalid borrower", func(t *testing.T) {
		svc := &stubEventService{
			listFunc: func(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error) {
				return nil, domain.ErrInvalidInput
			},
		}
		h := NewEventHandler(svc)

		r := withBorrowerID(httptest.NewRequest(http.MethodGet, "/api/v1/loans/%20/events", nil), " ")
		w := httptest.NewRecorder()

		h.ListByBorrower(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}
