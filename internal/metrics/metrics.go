// Package metrics содержит Prometheus метрики приложения.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gacha"

// Значения label result
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type Metrics struct {
	CalculationsTotal     *prometheus.CounterVec
	CalculatedProbability prometheus.Histogram
	HistoryDeletionsTotal *prometheus.CounterVec
	MemoSavesTotal        *prometheus.CounterVec
	HTTPRequestDuration   *prometheus.HistogramVec
}

// New создаёт метрики и регистрирует их в registry
func New(registry prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register gacha metrics: %w", err)
	}
	return m, nil
}

// NewNop метрики без регистрации, для тестов и CLI
func NewNop() *Metrics {
	m := &Metrics{}
	m.initMetrics()
	return m
}

func (m *Metrics) initMetrics() {
	m.CalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of probability calculations partitioned by result.",
		},
		[]string{"result"},
	)
	m.CalculatedProbability = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculated_probability_percent",
			Help:      "Distribution of calculated success probabilities in percent.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		},
	)
	m.HistoryDeletionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_deletions_total",
			Help:      "Total number of history deletion requests partitioned by result.",
		},
		[]string{"result"},
	)
	m.MemoSavesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_saves_total",
			Help:      "Total number of memo saves partitioned by result.",
		},
		[]string{"result"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.CalculationsTotal.Describe(ch)
	m.CalculatedProbability.Describe(ch)
	m.HistoryDeletionsTotal.Describe(ch)
	m.MemoSavesTotal.Describe(ch)
	m.HTTPRequestDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.CalculationsTotal.Collect(ch)
	m.CalculatedProbability.Collect(ch)
	m.HistoryDeletionsTotal.Collect(ch)
	m.MemoSavesTotal.Collect(ch)
	m.HTTPRequestDuration.Collect(ch)
}
