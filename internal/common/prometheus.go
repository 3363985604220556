package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	MintReadFailure            = "mint_read_failure_total"
	MintSubmitted              = "mint_submitted_total"
	MintWriteFailure           = "mint_write_failure_total"
	MintReceiptObserved        = "mint_receipt_observed_total"
	MintReceiptWaitSeconds     = "mint_receipt_wait_seconds"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "status_code"}),
		MintReadFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintReadFailure,
			Help: "Count of contract reads that failed while loading an account",
		}, []string{"chain"}),
		MintSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintSubmitted,
			Help: "Count of mint transactions that returned a hash",
		}, []string{"kind"}),
		MintWriteFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintWriteFailure,
			Help: "Count of mint transactions that failed to submit",
		}, []string{"kind"}),
		MintReceiptObserved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MintReceiptObserved,
			Help: "Count of mint receipts observed",
		}, []string{"kind", "result"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "status_code"}),
		MintReceiptWaitSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MintReceiptWaitSeconds,
			Help:    "Time between submission and receipt of a mint transaction",
			Buckets: []float64{1, 2, 5, 10, 30, 60, 120, 300},
		}, []string{"kind"}),
	}
)
