package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Lifecycle metrics
	LoansRequested   prometheus.Counter
	LoansApproved    prometheus.Counter
	LoansRejected    prometheus.Counter
	LoansClosed      prometheus.Counter
	PaymentsMade     prometheus.Counter
	PaymentAmount    prometheus.Histogram
	PenaltiesApplied prometheus.Counter
	LifecycleErrors  *prometheus.CounterVec

	// Store metrics
	StoreConflicts prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		LoansRequested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_requested_total",
			Help: "Total number of loan requests accepted",
		}),
		LoansApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_approved_total",
			Help: "Total number of loans approved by underwriting",
		}),
		LoansRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_rejected_total",
			Help: "Total number of loans rejected by underwriting",
		}),
		LoansClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_loans_closed_total",
			Help: "Total number of loans fully repaid",
		}),
		PaymentsMade: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_payments_total",
			Help: "Total number of successful payments",
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanledger_payment_amount",
			Help:    "Payment amounts in minor currency units",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		PenaltiesApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_penalties_total",
			Help: "Total number of late payment penalties applied",
		}),
		LifecycleErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loanledger_lifecycle_errors_total",
				Help: "Total number of lifecycle operation errors by kind",
			},
			[]string{"operation", "kind"},
		),
		StoreConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loanledger_store_conflicts_total",
			Help: "Total number of compare-and-swap conflicts surfaced to callers",
		}),
	}
}
