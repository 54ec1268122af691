package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "aml_controller"

// Metrics remote call counters, nil Metrics records nothing
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "remote_calls_total",
			Help:      "Remote calls issued to the pipeline service, by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of remote calls issued to the pipeline service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.duration)
	}
	return m
}

func (m *Metrics) observe(method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
