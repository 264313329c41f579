package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/loanledger/internal/domain"
	"github.com/iho/loanledger/internal/usecase"
	"github.com/iho/loanledger/internal/usecase/mocks"
)

func newEngineWith(t *testing.T, repo *mocks.MockLoanRepository, oracle usecase.DelinquencyOracle, retrier usecase.Retrier) *usecase.LoanUseCase {
	t.Helper()
	underwriting := domain.UnderwritingPolicy{
		MinCreditScore: 600,
		MaxIncomeRatio: decimal.NewFromInt(1),
		Installments:   4,
	}
	penalty := domain.PenaltyPolicy{
		Rate:         decimal.RequireFromString("0.10"),
		Installments: 4,
	}
	return usecase.NewLoanUseCase(repo, mocks.NewMockLoanEventRepository(), mocks.NewMockIDGenerator(), oracle, retrier, nil, time.Minute, underwriting, penalty)
}

func TestLoanUseCase_MakePayment_AsksOracleOncePerPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLoanRepository()
	repo.Seed(&domain.LoanRecord{
		BorrowerID:       "bob",
		Status:           domain.StatusActive,
		RemainingBalance: 750,
		MonthlyPayment:   250,
		PaymentsMade:     1,
		Version:          3,
	})

	oracle := mocks.NewMockDelinquencyOracle(ctrl)
	oracle.EXPECT().IsLate(gomock.Any(), gomock.Any()).Return(true, nil)

	uc := newEngineWith(t, repo, oracle, mocks.PassthroughRetrier{})

	record, err := uc.MakePayment(context.Background(), usecase.MakePaymentInput{
		BorrowerID: "bob",
		Amount:     250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.LastPaymentLate {
		t.Error("expected late flag from oracle")
	}
}

func TestLoanUseCase_MakePayment_OracleNotAskedWhenLateIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLoanRepository()
	repo.Seed(&domain.LoanRecord{
		BorrowerID:       "bob",
		Status:           domain.StatusActive,
		RemainingBalance: 750,
		MonthlyPayment:   250,
		PaymentsMade:     1,
		Version:          3,
	})

	// No expectation: any IsLate call fails the test.
	oracle := mocks.NewMockDelinquencyOracle(ctrl)

	uc := newEngineWith(t, repo, oracle, mocks.PassthroughRetrier{})

	late := true
	record, err := uc.MakePayment(context.Background(), usecase.MakePaymentInput{
		BorrowerID: "bob",
		Amount:     250,
		Late:       &late,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.LastPaymentLate {
		t.Error("expected late flag from explicit input")
	}
}

func TestLoanUseCase_MakePayment_OracleErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLoanRepository()
	repo.Seed(&domain.LoanRecord{
		BorrowerID:       "bob",
		Status:           domain.StatusActive,
		RemainingBalance: 750,
		MonthlyPayment:   250,
		PaymentsMade:     1,
		Version:          3,
	})

	oracleErr := errors.New("oracle unavailable")
	oracle := mocks.NewMockDelinquencyOracle(ctrl)
	oracle.EXPECT().IsLate(gomock.Any(), gomock.Any()).Return(false, oracleErr)

	uc := newEngineWith(t, repo, oracle, mocks.PassthroughRetrier{})

	_, err := uc.MakePayment(context.Background(), usecase.MakePaymentInput{
		BorrowerID: "bob",
		Amount:     250,
	})
	if !errors.Is(err, oracleErr) {
		t.Errorf("expected oracle error, got %v", err)
	}

	// The record must be untouched.
	record, err := repo.Get(context.Background(), "bob")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.RemainingBalance != 750 || record.PaymentsMade != 1 {
		t.Errorf("expected record unchanged, got %+v", record)
	}
}

func TestLoanUseCase_GetLoan_BypassesRetrier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockLoanRepository()
	repo.Seed(&domain.LoanRecord{BorrowerID: "bob", Status: domain.StatusActive, RemainingBalance: 500, Version: 2})

	// Reads are not compare-and-swap transactions: no Retry expected.
	retrier := mocks.NewMockRetrier(ctrl)

	uc := newEngineWith(t, repo, mocks.NewMockOracle(), retrier)

	record, err := uc.GetLoan(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.RemainingBalance != 500 {
		t.Errorf("expected balance 500, got %d", record.RemainingBalance)
	}
}
