package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/loanledger/internal/adapter/http/dto"
	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/infrastructure/metrics"
	"github.com/iho/loanledger/internal/usecase"
)

// LoanService defines the behavior needed by LoanHandler.
type LoanService interface {
	RequestLoan(ctx context.Context, input usecase.RequestLoanInput) (*domain.LoanRecord, error)
	ApproveLoan(ctx context.Context, borrowerID string) (*domain.LoanRecord, error)
	MakePayment(ctx context.Context, input usecase.MakePaymentInput) (*domain.LoanRecord, error)
	ApplyPenalty(ctx context.Context, borrowerID string) (*domain.LoanRecord, error)
	GetLoan(ctx context.Context, borrowerID string) (*domain.LoanRecord, error)
}

// LoanHandler handles loan lifecycle HTTP requests.
type LoanHandler struct {
	loanUC  LoanService
	metrics *metrics.Metrics
}

// NewLoanHandler creates a new LoanHandler. Metrics may be nil.
func NewLoanHandler(loanUC LoanService, m *metrics.Metrics) *LoanHandler {
	return &LoanHandler{loanUC: loanUC, metrics: m}
}

// Request creates a requested loan record.
func (h *LoanHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.loanUC.RequestLoan(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.countError("request", err)
		writeError(w, mapDomainError(err), "failed to request loan", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.LoansRequested.Inc()
	}

	writeJSON(w, http.StatusCreated, dto.LoanFromDomain(record))
}

// Approve runs underwriting on a requested loan. A rejection is a 200 with
// status "rejected", not an error.
func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")
	if borrowerID == "" {
		writeError(w, http.StatusBadRequest, "missing borrower ID", "")
		return
	}

	record, err := h.loanUC.ApproveLoan(r.Context(), borrowerID)
	if err != nil {
		h.countError("approve", err)
		writeError(w, mapDomainError(err), "failed to approve loan", err.Error())

		return
	}

	if h.metrics != nil {
		if record.Status == domain.StatusRejected {
			h.metrics.LoansRejected.Inc()
		} else {
			h.metrics.LoansApproved.Inc()
		}
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(record))
}

// Pay applies a payment to the loan.
func (h *LoanHandler) Pay(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")
	if borrowerID == "" {
		writeError(w, http.StatusBadRequest, "missing borrower ID", "")
		return
	}

	var req dto.MakePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.loanUC.MakePayment(r.Context(), req.ToUseCaseInput(borrowerID))
	if err != nil {
		h.countError("pay", err)
		writeError(w, mapDomainError(err), "failed to make payment", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.PaymentsMade.Inc()
		h.metrics.PaymentAmount.Observe(float64(req.Amount))
		if record.Status == domain.StatusClosed {
			h.metrics.LoansClosed.Inc()
		}
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(record))
}

// Penalize applies the late payment penalty.
func (h *LoanHandler) Penalize(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")
	if borrowerID == "" {
		writeError(w, http.StatusBadRequest, "missing borrower ID", "")
		return
	}

	record, err := h.loanUC.ApplyPenalty(r.Context(), borrowerID)
	if err != nil {
		h.countError("penalty", err)
		writeError(w, mapDomainError(err), "failed to apply penalty", err.Error())

		return
	}

	if h.metrics != nil {
		h.metrics.PenaltiesApplied.Inc()
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(record))
}

// Get retrieves the borrower's loan record.
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	borrowerID := chi.URLParam(r, "borrowerID")
	if borrowerID == "" {
		writeError(w, http.StatusBadRequest, "missing borrower ID", "")
		return
	}

	record, err := h.loanUC.GetLoan(r.Context(), borrowerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get loan", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(record))
}

func (h *LoanHandler) countError(operation string, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.LifecycleErrors.WithLabelValues(operation, errorKind(err)).Inc()
}

func errorKind(err error) string {
	switch mapDomainError(err) {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "invalid_input"
	case http.StatusUnprocessableEntity:
		return "insufficient_payment"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal"
	}
}
