package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pushes  prometheus.Counter
	inserts prometheus.Counter
	deletes prometheus.Counter
	grows   prometheus.Counter
	moved   prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "vec"},
			registerer,
		)
	}

	m := metrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of items pushed into vector",
		}),
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "inserts",
			Help:      "Number of items inserted into vector",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "deletes",
			Help:      "Number of items deleted from vector",
		}),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of storage growths",
		}),
		moved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "moved_items",
			Help:      "Number of items moved during storage growths",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.pushes,
			m.inserts,
			m.deletes,
			m.grows,
			m.moved,
		)
	}

	return &m
}

func (m *metrics) recordPush() {
	if m == nil {
		return
	}
	m.pushes.Inc()
}

func (m *metrics) recordInsert() {
	if m == nil {
		return
	}
	m.inserts.Inc()
}

func (m *metrics) recordDelete() {
	if m == nil {
		return
	}
	m.deletes.Inc()
}

func (m *metrics) recordGrow(moved int) {
	if m == nil {
		return
	}
	m.grows.Inc()
	m.moved.Add(float64(moved))
}
