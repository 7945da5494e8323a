package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationRequests counts calculation requests by product and status.
	CalculationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paisa_calculation_requests_total",
			Help: "Calculation requests served, by product and status.",
		},
		[]string{"product", "status"},
	)

	// CacheLookups counts cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paisa_cache_lookups_total",
			Help: "Response cache lookups, by outcome.",
		},
		[]string{"outcome"},
	)

	// RequestDuration observes handler latency by product.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paisa_request_duration_seconds",
			Help:    "Calculation handler latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"product"},
	)
)
