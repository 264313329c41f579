package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
)

func TestConflictRetrier_Retry(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		attempts := 0
		err := usecase.NewConflictRetrier().Retry(context.Background(), func() error {
			attempts++
			return nil
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("retries conflicts until success", func(t *testing.T) {
		attempts := 0
		err := usecase.NewConflictRetrier().Retry(context.Background(), func() error {
			attempts++
			if attempts < 3 {
				return domain.ErrConflict
			}
			return nil
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("other errors are permanent", func(t *testing.T) {
		attempts := 0
		err := usecase.NewConflictRetrier().Retry(context.Background(), func() error {
			attempts++
			return domain.ErrLoanNotFound
		})
		if !errors.Is(err, domain.ErrLoanNotFound) {
			t.Errorf("expected ErrLoanNotFound, got %v", err)
		}
		if attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", attempts)
		}
	})

	t.Run("wrapped conflicts are retried", func(t *testing.T) {
		attempts := 0
		err := usecase.NewConflictRetrier().Retry(context.Background(), func() error {
			attempts++
			if attempts == 1 {
				return fmt.Errorf("update loan: %w", domain.ErrConflict)
			}
			return nil
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if attempts != 2 {
			t.Errorf("expected 2 attempts, got %d", attempts)
		}
	})

	t.Run("gives up after retries are spent", func(t *testing.T) {
		attempts := 0
		err := usecase.NewConflictRetrier().Retry(context.Background(), func() error {
			attempts++
			return domain.ErrConflict
		})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
		if attempts != 4 {
			t.Errorf("expected 4 attempts, got %d", attempts)
		}
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := usecase.NewConflictRetrier().Retry(ctx, func() error {
			return domain.ErrConflict
		})
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}
