package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

// EventService defines the behavior needed by EventHandler.
type EventService interface {
	ListEvents(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LoanEvent, error)
}

// EventHandler serves the loan audit trail.
type EventHandler struct {
	eventUC EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventUC EventService) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// ListByBorrower lists a borrower's loan events.
func (h *EventHandler) ListByBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")
	if borrowerID == "" {
		writeError(w, http.StatusBadRequest, "missing borrower ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	events, err := h.eventUC.ListEvents(r.Context(), usecase.ListEventsInput{
		BorrowerID: borrowerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list events", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEventsResponse{
		Events: dto.EventsFromDomain(events),
		Total:  int64(len(events)),
	})
}
