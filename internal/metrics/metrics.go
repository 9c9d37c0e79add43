// Package metrics exposes prometheus instrumentation for the game engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Spin metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelClassification},
	)

	ChipsWageredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChipsWageredTotal,
			Help: HelpTextChipsWageredTotal,
		},
	)

	ChipsWonTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChipsWonTotal,
			Help: HelpTextChipsWonTotal,
		},
	)

	NetGain = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameNetGain,
			Help:    HelpTextNetGain,
			Buckets: NetGainBuckets,
		},
	)
)

// Event metrics
var (
	EventsTriggeredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsTriggeredTotal,
			Help: HelpTextEventsTriggeredTotal,
		},
		[]string{LabelEvent, LabelRarity},
	)
)

// Progression metrics
var (
	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpsTotal,
			Help: HelpTextLevelUpsTotal,
		},
	)

	XPAwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwardedTotal,
			Help: HelpTextXPAwardedTotal,
		},
	)
)
