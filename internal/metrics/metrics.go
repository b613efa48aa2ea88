// Package metrics holds the Prometheus collectors of the organizer pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Organizer groups the pipeline counters. A nil *Organizer is valid and
// records nothing, so callers without a registry need no special casing.
type Organizer struct {
	classified  *prometheus.CounterVec
	moved       *prometheus.CounterVec
	aiFallbacks *prometheus.CounterVec
}

// NewOrganizer creates the collectors and registers them with reg.
func NewOrganizer(reg prometheus.Registerer) (*Organizer, error) {
	m := &Organizer{
		classified: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileorg_classified_files_total",
				Help: "Files assigned a category, by strategy.",
			},
			[]string{"strategy"},
		),
		moved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileorg_moved_files_total",
				Help: "Move results, by outcome.",
			},
			[]string{"outcome"},
		),
		aiFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileorg_ai_fallbacks_total",
				Help: "AI strategy fallbacks, by phase.",
			},
			[]string{"phase"},
		),
	}
	for _, c := range []prometheus.Collector{m.classified, m.moved, m.aiFallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Organizer) Classified(strategy string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.classified.WithLabelValues(strategy).Add(float64(n))
}

func (m *Organizer) Moved(outcome string) {
	if m == nil {
		return
	}
	m.moved.WithLabelValues(outcome).Inc()
}

func (m *Organizer) AIFallback(phase string) {
	if m == nil {
		return
	}
	m.aiFallbacks.WithLabelValues(phase).Inc()
}
