package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iho/loanledger/internal/domain"
)

// ConflictRetrier retries an operation with exponential backoff whenever the
// loan store reports a compare-and-swap conflict. Any other error is
// permanent. The conflict is surfaced to the caller once retries are spent.
type ConflictRetrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

// NewConflictRetrier creates a retrier with default settings.
func NewConflictRetrier() *ConflictRetrier {
	return &ConflictRetrier{
		maxRetries:      3,
		initialInterval: 10 * time.Millisecond,
		maxInterval:     250 * time.Millisecond,
		maxElapsedTime:  2 * time.Second,
	}
}

// Retry executes an operation, re-running it from scratch on ErrConflict.
func (r *ConflictRetrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !errors.Is(err, domain.ErrConflict) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(err)
		}

		return err
	}, backoff.WithContext(b, ctx))
}
