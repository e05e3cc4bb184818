package exec

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "ropx"

type poolMetrics struct {
	workers    prometheus.Gauge
	queueDepth prometheus.Gauge
	inFlight   prometheus.Gauge
	tasks      *prometheus.CounterVec
}

func newPoolMetrics(name string) *poolMetrics {
	labels := prometheus.Labels{"pool": name}
	return &poolMetrics{
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "workers",
			Help:        "Number of worker goroutines owned by the pool.",
			ConstLabels: labels,
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "queue_depth",
			Help:        "Work items waiting in the pool queue.",
			ConstLabels: labels,
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "inflight",
			Help:        "Work items currently executing.",
			ConstLabels: labels,
		}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricsNamespace,
			Subsystem:   "pool",
			Name:        "tasks_total",
			Help:        "Work items finished, by result.",
			ConstLabels: labels,
		}, []string{"result"}),
	}
}

func (m *poolMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.workers, m.queueDepth, m.inFlight, m.tasks}
}

func (m *poolMetrics) register(r prometheus.Registerer) error {
	for i, c := range m.collectors() {
		if err := r.Register(c); err != nil {
			for _, done := range m.collectors()[:i] {
				r.Unregister(done)
			}
			return err
		}
	}
	return nil
}

func (m *poolMetrics) unregister(r prometheus.Registerer) {
	for _, c := range m.collectors() {
		r.Unregister(c)
	}
}
