package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iho/loanledger/internal/domain"
)

const loanCacheKeyPrefix = "loan:"

// LoanUseCase is the loan lifecycle engine. It is stateless between calls:
// every operation is a read-validate-compute-write transaction against the
// loan store, written back with an optimistic compare-and-swap and retried
// from a fresh read on conflict.
type LoanUseCase struct {
	loanRepo     LoanRepository
	eventRepo    LoanEventRepository
	idGen        IDGenerator
	oracle       DelinquencyOracle
	retrier      Retrier
	cache        Cache
	cacheTTL     time.Duration
	underwriting domain.UnderwritingPolicy
	penalty      domain.PenaltyPolicy
}

// NewLoanUseCase creates a new LoanUseCase. The cache is optional and may be
// nil; policies are immutable after construction.
func NewLoanUseCase(
	loanRepo LoanRepository,
	eventRepo LoanEventRepository,
	idGen IDGenerator,
	oracle DelinquencyOracle,
	retrier Retrier,
	cache Cache,
	cacheTTL time.Duration,
	underwriting domain.UnderwritingPolicy,
	penalty domain.PenaltyPolicy,
) *LoanUseCase {
	return &LoanUseCase{
		loanRepo:     loanRepo,
		eventRepo:    eventRepo,
		idGen:        idGen,
		oracle:       oracle,
		retrier:      retrier,
		cache:        cache,
		cacheTTL:     cacheTTL,
		underwriting: underwriting,
		penalty:      penalty,
	}
}

// RequestLoanInput represents input for requesting a loan.
type RequestLoanInput struct {
	BorrowerID     string
	Principal      int64
	DeclaredIncome int64
	CreditScore    int
}

// RequestLoan creates a requested loan record for the borrower. Eligibility is
// not decided here; it is deferred to ApproveLoan. A request while a
// non-terminal record exists fails with ErrLoanAlreadyActive; after a terminal
// record the request starts a fresh record in its place.
func (uc *LoanUseCase) RequestLoan(ctx context.Context, input RequestLoanInput) (*domain.LoanRecord, error) {
	if err := domain.ValidateBorrowerID(input.BorrowerID); err != nil {
		return nil, err
	}
	if err := domain.ValidateLoanTerms(input.Principal, input.DeclaredIncome, input.CreditScore); err != nil {
		return nil, err
	}

	var record *domain.LoanRecord
	err := uc.retrier.Retry(ctx, func() error {
		now := time.Now().UTC()

		fresh := &domain.LoanRecord{
			BorrowerID:     input.BorrowerID,
			Principal:      input.Principal,
			DeclaredIncome: input.DeclaredIncome,
			CreditScore:    input.CreditScore,
			Status:         domain.StatusRequested,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		existing, err := uc.loanRepo.Get(ctx, input.BorrowerID)
		switch {
		case errors.Is(err, domain.ErrLoanNotFound):
			if err := uc.loanRepo.Create(ctx, fresh); err != nil {
				return err
			}
		case err != nil:
			return err
		case !existing.Status.Terminal():
			return fmt.Errorf("%w: status is %s", domain.ErrLoanAlreadyActive, existing.Status)
		default:
			// Terminal record: overwrite as a new record, guarded by the old
			// version so a racing request still loses cleanly.
			fresh.Version = existing.Version
			if err := uc.loanRepo.Update(ctx, fresh, existing.Version); err != nil {
				return err
			}
		}

		record = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.BorrowerID)
	if err := uc.recordEvent(ctx, record, domain.EventLoanRequested, input.Principal); err != nil {
		return nil, err
	}

	return record, nil
}

// ApproveLoan runs the underwriting policy on a requested loan. An ineligible
// outcome transitions the record to rejected and is a normal result, not an
// error.
func (uc *LoanUseCase) ApproveLoan(ctx context.Context, borrowerID string) (*domain.LoanRecord, error) {
	if err := domain.ValidateBorrowerID(borrowerID); err != nil {
		return nil, err
	}

	var record *domain.LoanRecord
	err := uc.retrier.Retry(ctx, func() error {
		existing, err := uc.loanRepo.Get(ctx, borrowerID)
		if err != nil {
			return err
		}
		if existing.Status != domain.StatusRequested {
			return fmt.Errorf("%w: cannot approve a loan in status %s", domain.ErrInvalidState, existing.Status)
		}

		decision, err := uc.underwriting.Evaluate(existing.Principal, existing.DeclaredIncome, existing.CreditScore)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if decision.Eligible {
			existing.Approve(decision.MonthlyPayment, now)
		} else {
			existing.Reject(decision.Reason, now)
		}

		if err := uc.loanRepo.Update(ctx, existing, existing.Version); err != nil {
			return err
		}

		record = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, borrowerID)

	eventType := domain.EventLoanApproved
	if record.Status == domain.StatusRejected {
		eventType = domain.EventLoanRejected
	}
	if err := uc.recordEvent(ctx, record, eventType, 0); err != nil {
		return nil, err
	}

	return record, nil
}

// MakePaymentInput represents input for making a payment. Late may be nil, in
// which case the delinquency oracle is consulted; the engine itself never
// reads the clock.
type MakePaymentInput struct {
	BorrowerID string
	Amount     int64
	Late       *bool
}

// MakePayment deducts a payment from the outstanding balance. The loan closes
// when the balance reaches zero; otherwise it moves (back) to active.
func (uc *LoanUseCase) MakePayment(ctx context.Context, input MakePaymentInput) (*domain.LoanRecord, error) {
	if err := domain.ValidateBorrowerID(input.BorrowerID); err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", domain.ErrInvalidInput)
	}

	var record *domain.LoanRecord
	err := uc.retrier.Retry(ctx, func() error {
		existing, err := uc.loanRepo.Get(ctx, input.BorrowerID)
		if err != nil {
			return err
		}
		if !existing.AcceptsPayment() {
			return fmt.Errorf("%w: cannot pay a loan in status %s", domain.ErrInvalidState, existing.Status)
		}
		if err := existing.ValidatePayment(input.Amount); err != nil {
			return err
		}

		late, err := uc.paymentLate(ctx, existing, input.Late)
		if err != nil {
			return err
		}

		existing.ApplyPayment(input.Amount, late, time.Now().UTC())

		if err := uc.loanRepo.Update(ctx, existing, existing.Version); err != nil {
			return err
		}

		record = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.BorrowerID)

	eventType := domain.EventPaymentMade
	if record.Status == domain.StatusClosed {
		eventType = domain.EventLoanClosed
	}
	if err := uc.recordEvent(ctx, record, eventType, input.Amount); err != nil {
		return nil, err
	}

	return record, nil
}

// ApplyPenalty assesses the configured late payment penalty on an active loan
// whose last payment was late. A second penalty without an intervening late
// payment fails with ErrNoPenaltyDue, so penalties never stack.
func (uc *LoanUseCase) ApplyPenalty(ctx context.Context, borrowerID string) (*domain.LoanRecord, error) {
	if err := domain.ValidateBorrowerID(borrowerID); err != nil {
		return nil, err
	}

	var (
		record *domain.LoanRecord
		charge int64
	)
	err := uc.retrier.Retry(ctx, func() error {
		existing, err := uc.loanRepo.Get(ctx, borrowerID)
		if err != nil {
			return err
		}
		if existing.Status != domain.StatusActive && existing.Status != domain.StatusPenaltyPending {
			return fmt.Errorf("%w: cannot penalize a loan in status %s", domain.ErrInvalidState, existing.Status)
		}
		// A penalty clears the late flag, so a second penalty without an
		// intervening late payment lands here and never stacks.
		if !existing.LastPaymentLate {
			return domain.ErrNoPenaltyDue
		}

		charge = uc.penalty.Charge(existing.RemainingBalance)
		newMonthly := uc.penalty.Reamortize(existing.RemainingBalance+charge, existing.PaymentsMade)
		existing.ApplyPenaltyCharge(charge, newMonthly, time.Now().UTC())

		if err := uc.loanRepo.Update(ctx, existing, existing.Version); err != nil {
			return err
		}

		record = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, borrowerID)
	if err := uc.recordEvent(ctx, record, domain.EventPenaltyApplied, charge); err != nil {
		return nil, err
	}

	return record, nil
}

// GetLoan retrieves the borrower's loan record, via the read cache when one
// is configured.
func (uc *LoanUseCase) GetLoan(ctx context.Context, borrowerID string) (*domain.LoanRecord, error) {
	if err := domain.ValidateBorrowerID(borrowerID); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, loanCacheKeyPrefix+borrowerID); err == nil {
			var cached domain.LoanRecord
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	record, err := uc.loanRepo.Get(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(record); err == nil {
			_ = uc.cache.Set(ctx, loanCacheKeyPrefix+borrowerID, data, uc.cacheTTL)
		}
	}

	return record, nil
}

func (uc *LoanUseCase) paymentLate(ctx context.Context, record *domain.LoanRecord, override *bool) (bool, error) {
	if override != nil {
		return *override, nil
	}
	if uc.oracle == nil {
		return false, nil
	}
	return uc.oracle.IsLate(ctx, record)
}

func (uc *LoanUseCase) recordEvent(ctx context.Context, record *domain.LoanRecord, eventType string, amount int64) error {
	if uc.eventRepo == nil {
		return nil
	}
	return uc.eventRepo.Create(ctx, &domain.LoanEvent{
		ID:           uc.idGen.Generate(),
		BorrowerID:   record.BorrowerID,
		Type:         eventType,
		Amount:       amount,
		BalanceAfter: record.RemainingBalance,
		StatusAfter:  record.Status,
		CreatedAt:    time.Now().UTC(),
	})
}

func (uc *LoanUseCase) invalidate(ctx context.Context, borrowerID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, loanCacheKeyPrefix+borrowerID)
	}
}
