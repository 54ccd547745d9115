package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stateboard/stateboard/pkg/domain"
)

// Metrics holds the interpreter counters.
type Metrics struct {
	events      *prometheus.CounterVec
	transitions *prometheus.CounterVec
	ignored     *prometheus.CounterVec
}

// NewMetrics creates and registers the counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stateboard_events_total",
				Help: "Total number of events received by the interpreter",
			},
			[]string{"type"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stateboard_transitions_total",
				Help: "Total number of completed transitions",
			},
			[]string{"from", "to", "event"},
		),
		ignored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stateboard_ignored_events_total",
				Help: "Total number of events not handled in the current state",
			},
			[]string{"type"},
		),
	}
	reg.MustRegister(m.events, m.transitions, m.ignored)
	return m
}

// Observer returns a domain.Observer that records every send.
func (m *Metrics) Observer() domain.Observer {
	return func(prev domain.StateValue, snap domain.Snapshot, ev domain.Event) {
		m.events.WithLabelValues(ev.Type).Inc()
		if !snap.Changed {
			m.ignored.WithLabelValues(ev.Type).Inc()
			return
		}
		m.transitions.WithLabelValues(prev.String(), snap.State.String(), ev.Type).Inc()
	}
}
