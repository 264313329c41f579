package usecase

import (
	"context"
	"time"

	"github.com/iho/loanledger/internal/domain"
)

// LoanRepository defines data access for loan records. Update is an optimistic
// compare-and-swap: it succeeds only if the stored version still equals
// expectedVersion, and returns domain.ErrConflict otherwise.
type LoanRepository interface {
	Get(ctx context.Context, borrowerID string) (*domain.LoanRecord, error)
	Create(ctx context.Context, record *domain.LoanRecord) error
	Update(ctx context.Context, record *domain.LoanRecord, expectedVersion int64) error
}

// LoanEventRepository defines data access for the loan audit trail.
type LoanEventRepository interface {
	Create(ctx context.Context, event *domain.LoanEvent) error
	ListByBorrower(ctx context.Context, borrowerID string, limit, offset int) ([]*domain.LoanEvent, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// DelinquencyOracle tells whether the next payment on a loan counts as late.
// The engine consumes this signal but never computes it.
type DelinquencyOracle interface {
	IsLate(ctx context.Context, record *domain.LoanRecord) (bool, error)
}

// Retrier re-runs an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
