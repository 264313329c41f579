package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/loanledger/internal/domain"
)

// LoanEventRepository implements usecase.LoanEventRepository. The table is
// append-only; events survive terminal records being overwritten by a new
// request.
type LoanEventRepository struct {
	pool *pgxpool.Pool
}

// NewLoanEventRepository creates a new LoanEventRepository.
func NewLoanEventRepository(pool *pgxpool.Pool) *LoanEventRepository {
	return &LoanEventRepository{pool: pool}
}

// Create appends a loan event.
func (r *LoanEventRepository) Create(ctx context.Context, event *domain.LoanEvent) error {
	query := `
		INSERT INTO loan_events (
			id, borrower_id, event_type, amount, balance_after, status_after, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.BorrowerID,
		event.Type,
		event.Amount,
		event.BalanceAfter,
		event.StatusAfter,
		event.CreatedAt,
	)

	return err
}

// ListByBorrower lists a borrower's events, newest first.
func (r *LoanEventRepository) ListByBorrower(ctx context.Context, borrowerID string, limit, offset int) ([]*domain.LoanEvent, error) {
	query := `
		SELECT id, borrower_id, event_type, amount, balance_after, status_after, created_at
		FROM loan_events
		WHERE borrower_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, borrowerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.LoanEvent
	for rows.Next() {
		event := &domain.LoanEvent{}
		err := rows.Scan(
			&event.ID,
			&event.BorrowerID,
			&event.Type,
			&event.Amount,
			&event.BalanceAfter,
			&event.StatusAfter,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, rows.Err()
}
