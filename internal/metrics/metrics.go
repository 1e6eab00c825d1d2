package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the marketplace backend
type Metrics struct {
	RentDepositsTotal  *prometheus.CounterVec // by rent token
	RentClaimsTotal    *prometheus.CounterVec
	RentDepositVolume  *prometheus.CounterVec // base units, float approximation
	RentClaimVolume    *prometheus.CounterVec
	PurchasesTotal     prometheus.Counter
	HTTPRequestsTotal  *prometheus.CounterVec // by route and status class
	HTTPRequestSeconds *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		RentDepositsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_deposits_total",
			Help: "Number of successful rent deposits",
		}, []string{"rent_token"}),
		RentClaimsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_claims_total",
			Help: "Number of successful rent claims",
		}, []string{"rent_token"}),
		RentDepositVolume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_deposit_volume",
			Help: "Total rent deposited, in token base units",
		}, []string{"rent_token"}),
		RentClaimVolume: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rent_claim_volume",
			Help: "Total rent claimed, in token base units",
		}, []string{"rent_token"}),
		PurchasesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_purchases_total",
			Help: "Number of completed marketplace purchases",
		}),
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Number of HTTP requests served",
		}, []string{"route", "status"}),
		HTTPRequestSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}
