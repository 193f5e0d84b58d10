package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	LootboxesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootboxesCreated,
			Help: HelpTextLootboxesCreated,
		},
	)

	LootboxesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootboxesRemoved,
			Help: HelpTextLootboxesRemoved,
		},
	)

	SkinsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkinsAdded,
			Help: HelpTextSkinsAdded,
		},
		[]string{LabelLootbox},
	)

	PricesRecomputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePricesRecomputed,
			Help: HelpTextPricesRecomputed,
		},
		[]string{LabelLootbox},
	)
)
