package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/abhisek/sightwords/internal/session"
)

var defaultAccuracyBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Manager owns the session metrics and the registry they live on.
type Manager struct {
	namespace       string
	accuracyBuckets []float64
	constLabels     map[string]string
	registry        *prometheus.Registry

	trials   *prometheus.CounterVec
	sessions *prometheus.CounterVec
	accuracy prometheus.Histogram
	response prometheus.Histogram
}

// NewManager creates a metrics manager. Each manager has its own registry
// unless one is supplied, so nothing leaks into the default registerer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "sightwords",
		accuracyBuckets: defaultAccuracyBuckets,
		constLabels:     map[string]string{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.trials = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "trials_total",
		Help:        "Finalized trials by outcome",
		ConstLabels: m.constLabels,
	}, []string{"outcome"})

	m.sessions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "sessions_total",
		Help:        "Completed sessions by phase and level",
		ConstLabels: m.constLabels,
	}, []string{"phase", "level"})

	m.accuracy = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "session_accuracy",
		Help:        "Session accuracy percentage",
		Buckets:     m.accuracyBuckets,
		ConstLabels: m.constLabels,
	})

	m.response = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "response_time_seconds",
		Help:        "Per-trial response time",
		Buckets:     []float64{0.5, 1, 2, 3, 5, 8, 10},
		ConstLabels: m.constLabels,
	})
}

// ObserveSession records a completed session.
func (m *Manager) ObserveSession(r session.Record) {
	m.sessions.WithLabelValues(string(r.Phase), strconv.Itoa(int(r.Level))).Inc()
	m.accuracy.Observe(r.Accuracy)
	for _, o := range r.Outcomes {
		m.trials.WithLabelValues(string(o)).Inc()
	}
	for _, t := range r.ResponseTimes {
		m.response.Observe(t)
	}
}

// Registry returns the gatherer the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics in the text exposition format,
// for pickup by node_exporter's textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
