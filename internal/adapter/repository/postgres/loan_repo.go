package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/loanledger/internal/domain"
)

const pgErrUniqueViolation = "23505"

// LoanRepository implements usecase.LoanRepository on PostgreSQL. Writes are
// optimistic: Update is a single-statement compare-and-swap on the version
// column and never holds a lock across calls.
type LoanRepository struct {
	pool *pgxpool.Pool
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

// Get retrieves the loan record for a borrower.
func (r *LoanRepository) Get(ctx context.Context, borrowerID string) (*domain.LoanRecord, error) {
	query := `
		SELECT borrower_id, principal, declared_income, credit_score, status,
		       remaining_balance, monthly_payment, payments_made,
		       last_payment_late, rejection_reason, version, created_at, updated_at
		FROM loans
		WHERE borrower_id = $1
	`

	record := &domain.LoanRecord{}
	err := r.pool.QueryRow(ctx, query, borrowerID).Scan(
		&record.BorrowerID,
		&record.Principal,
		&record.DeclaredIncome,
		&record.CreditScore,
		&record.Status,
		&record.RemainingBalance,
		&record.MonthlyPayment,
		&record.PaymentsMade,
		&record.LastPaymentLate,
		&record.RejectionReason,
		&record.Version,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return record, nil
}

// Create inserts a fresh loan record at version 1. A concurrent insert for the
// same borrower surfaces as ErrConflict.
func (r *LoanRepository) Create(ctx context.Context, record *domain.LoanRecord) error {
	query := `
		INSERT INTO loans (
			borrower_id, principal, declared_income, credit_score, status,
			remaining_balance, monthly_payment, payments_made,
			last_payment_late, rejection_reason, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		record.BorrowerID,
		record.Principal,
		record.DeclaredIncome,
		record.CreditScore,
		record.Status,
		record.RemainingBalance,
		record.MonthlyPayment,
		record.PaymentsMade,
		record.LastPaymentLate,
		record.RejectionReason,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrConflict
		}

		return err
	}

	record.Version = 1

	return nil
}

// Update writes the record back if and only if the stored version still
// matches expectedVersion. Zero rows affected means a concurrent writer won
// the race and the caller must retry from a fresh Get.
func (r *LoanRepository) Update(ctx context.Context, record *domain.LoanRecord, expectedVersion int64) error {
	query := `
		UPDATE loans
		SET principal         = $3,
		    declared_income   = $4,
		    credit_score      = $5,
		    status            = $6,
		    remaining_balance = $7,
		    monthly_payment   = $8,
		    payments_made     = $9,
		    last_payment_late = $10,
		    rejection_reason  = $11,
		    version           = version + 1,
		    created_at        = $12,
		    updated_at        = $13
		WHERE borrower_id = $1 AND version = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		record.BorrowerID,
		expectedVersion,
		record.Principal,
		record.DeclaredIncome,
		record.CreditScore,
		record.Status,
		record.RemainingBalance,
		record.MonthlyPayment,
		record.PaymentsMade,
		record.LastPaymentLate,
		record.RejectionReason,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}

	record.Version = expectedVersion + 1

	return nil
}
