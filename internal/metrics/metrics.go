package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenbredn_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gardenbredn_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gardenbredn_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Farm Metrics
var (
	PlotStageTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenbredn_plot_stage_transitions_total",
			Help: "Plot stage transitions performed by the growth pass",
		},
		[]string{"stage"},
	)

	GrowthPassErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardenbredn_growth_pass_errors_total",
			Help: "Per-plot errors encountered during growth passes",
		},
	)

	SeedsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenbredn_seeds_harvested_total",
			Help: "Mature seeds harvested, by class",
		},
		[]string{"class"},
	)

	StealAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenbredn_steal_attempts_total",
			Help: "Steal attempts, by outcome (success, trapped, locked, not_mature)",
		},
		[]string{"outcome"},
	)
)

// Gacha Metrics
var (
	GachaRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gardenbredn_gacha_rolls_total",
			Help: "Gacha rolls resolved, by reward type",
		},
		[]string{"reward_type"},
	)

	GachaConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardenbredn_gacha_conflicts_total",
			Help: "Gacha rolls rejected with a retryable conflict",
		},
	)
)

// Market Metrics
var (
	MarketListings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardenbredn_market_listings_total",
			Help: "Seeds listed on the market",
		},
	)

	MarketSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardenbredn_market_sales_total",
			Help: "Market listings sold",
		},
	)
)

// Live Update Metrics
var (
	ViewsPushed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gardenbredn_views_pushed_total",
			Help: "Player view snapshots pushed over SSE",
		},
	)
)
