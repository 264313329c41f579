package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loanledger-cli",
		Short: "LoanLedger CLI tool",
		Long:  `A command line interface for driving the loan lifecycle API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LoanLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	var (
		borrower  string
		principal int64
		income    int64
		score     int
		approve   bool
	)

	requestCmd := &cobra.Command{
		Use:   "request",
		Short: "Request a loan",
		Run: func(cmd *cobra.Command, args []string) {
			requestLoan(borrower, principal, income, score, approve)
		},
	}
	requestCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	requestCmd.Flags().Int64Var(&principal, "principal", 0, "Requested principal in minor units")
	requestCmd.Flags().Int64Var(&income, "income", 0, "Declared income in minor units")
	requestCmd.Flags().IntVar(&score, "score", 0, "Credit score")
	requestCmd.Flags().BoolVar(&approve, "approve", false, "Run underwriting immediately after the request")
	requestCmd.MarkFlagRequired("borrower")
	requestCmd.MarkFlagRequired("principal")
	requestCmd.MarkFlagRequired("income")
	requestCmd.MarkFlagRequired("score")
	rootCmd.AddCommand(requestCmd)

	approveCmd := &cobra.Command{
		Use:   "approve",
		Short: "Run underwriting on a requested loan",
		Run: func(cmd *cobra.Command, args []string) {
			approveLoan(borrower)
		},
	}
	approveCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	approveCmd.MarkFlagRequired("borrower")
	rootCmd.AddCommand(approveCmd)

	detailsCmd := &cobra.Command{
		Use:   "details",
		Short: "Show loan details",
		Run: func(cmd *cobra.Command, args []string) {
			loanDetails(borrower)
		},
	}
	detailsCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	detailsCmd.MarkFlagRequired("borrower")
	rootCmd.AddCommand(detailsCmd)

	var (
		amount int64
		late   bool
	)
	payCmd := &cobra.Command{
		Use:   "pay",
		Short: "Make a payment",
		Run: func(cmd *cobra.Command, args []string) {
			makePayment(borrower, amount, late)
		},
	}
	payCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	payCmd.Flags().Int64Var(&amount, "amount", 0, "Payment amount in minor units (0 pays the current installment)")
	payCmd.Flags().BoolVar(&late, "late", false, "Mark the payment late")
	payCmd.MarkFlagRequired("borrower")
	rootCmd.AddCommand(payCmd)

	penaltyCmd := &cobra.Command{
		Use:   "penalty",
		Short: "Apply the late payment penalty",
		Run: func(cmd *cobra.Command, args []string) {
			applyPenalty(borrower)
		},
	}
	penaltyCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	penaltyCmd.MarkFlagRequired("borrower")
	rootCmd.AddCommand(penaltyCmd)

	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Show the loan audit trail",
		Run: func(cmd *cobra.Command, args []string) {
			listEvents(borrower)
		},
	}
	eventsCmd.Flags().StringVar(&borrower, "borrower", "", "Borrower identity")
	eventsCmd.MarkFlagRequired("borrower")
	rootCmd.AddCommand(eventsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requestLoan(borrower string, principal, income int64, score int, approve bool) {
	body := map[string]any{
		"borrower_id":     borrower,
		"principal":       principal,
		"declared_income": income,
		"credit_score":    score,
	}

	result, err := postJSON("/api/v1/loans", body)
	if err != nil {
		fmt.Printf("Error requesting loan: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Loan requested.")
	printLoan(result)

	if approve {
		approveLoan(borrower)
	}
}

func approveLoan(borrower string) {
	result, err := postJSON("/api/v1/loans/"+borrower+"/approve", nil)
	if err != nil {
		fmt.Printf("Error approving loan: %v\n", err)
		os.Exit(1)
	}

	if result["status"] == "rejected" {
		fmt.Printf("Loan rejected: %v\n", result["rejection_reason"])
	} else {
		fmt.Println("Loan approved.")
	}
	printLoan(result)
}

func loanDetails(borrower string) {
	result, err := getJSON("/api/v1/loans/" + borrower)
	if err != nil {
		fmt.Printf("Error checking loan details: %v\n", err)
		os.Exit(1)
	}
	printLoan(result)
}

func makePayment(borrower string, amount int64, late bool) {
	if amount == 0 {
		// Pay the current installment, floored to the remaining balance.
		details, err := getJSON("/api/v1/loans/" + borrower)
		if err != nil {
			fmt.Printf("Error fetching loan details: %v\n", err)
			os.Exit(1)
		}
		amount = int64(details["monthly_payment"].(float64))
		if balance := int64(details["remaining_balance"].(float64)); balance < amount {
			amount = balance
		}
	}

	result, err := postJSON("/api/v1/loans/"+borrower+"/payments", map[string]any{
		"amount": amount,
		"late":   late,
	})
	if err != nil {
		fmt.Printf("Error making payment: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Payment made.")
	printLoan(result)
}

func applyPenalty(borrower string) {
	result, err := postJSON("/api/v1/loans/"+borrower+"/penalty", nil)
	if err != nil {
		fmt.Printf("Error applying penalty: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Penalty applied for late payment.")
	printLoan(result)
}

func listEvents(borrower string) {
	result, err := getJSON("/api/v1/loans/" + borrower + "/events")
	if err != nil {
		fmt.Printf("Error listing events: %v\n", err)
		os.Exit(1)
	}

	events, _ := result["events"].([]any)
	for _, e := range events {
		ev, _ := e.(map[string]any)
		fmt.Printf("%v  %-16v amount=%v balance=%v status=%v\n",
			ev["created_at"], ev["type"], ev["amount"], ev["balance_after"], ev["status_after"])
	}
}

func printLoan(loan map[string]any) {
	fmt.Printf(`
Loan Details:
  Borrower:          %v
  Status:            %v
  Principal:         %v
  Credit Score:      %v
  Remaining Balance: %v
  Monthly Payment:   %v
  Payments Made:     %v
  Last Payment Late: %v

`, loan["borrower_id"], loan["status"], loan["principal"], loan["credit_score"],
		loan["remaining_balance"], loan["monthly_payment"], loan["payments_made"], loan["last_payment_late"])
}

func postJSON(path string, body map[string]any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return doRequest(req)
}

func getJSON(path string) (map[string]any, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	return doRequest(req)
}

func doRequest(req *http.Request) (map[string]any, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%s (status %d): %v", result["error"], resp.StatusCode, result["message"])
	}

	return result, nil
}
