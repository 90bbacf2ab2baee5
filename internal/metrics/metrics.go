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

// Business Metrics
var (
	VaultsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVaultsOpened,
			Help: HelpTextVaultsOpened,
		},
		[]string{LabelTier, LabelRarity},
	)

	CreditsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsSpent,
			Help: HelpTextCreditsSpent,
		},
	)

	CreditsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsEarned,
			Help: HelpTextCreditsEarned,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuest},
	)

	RevealDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRevealDuration,
			Help:    HelpTextRevealDuration,
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	SnapshotWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotFailures,
			Help: HelpTextSnapshotFailures,
		},
		[]string{LabelBackend},
	)
)
