// Package metrics exposes schedule generation counters.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector receives generation events from the scheduler
type Collector interface {
	RecordSlotFilled(slot string)
	RecordSlotUnfilled(slot string)
	RecordSlotFailure(slot string)
	ObserveGeneration(seconds float64)
}

// Nop discards every metric
type Nop struct{}

var _ Collector = Nop{}

// RecordSlotFilled discards the event
func (Nop) RecordSlotFilled(string) {}

// RecordSlotUnfilled discards the event
func (Nop) RecordSlotUnfilled(string) {}

// RecordSlotFailure discards the event
func (Nop) RecordSlotFailure(string) {}

// ObserveGeneration discards the event
func (Nop) ObserveGeneration(float64) {}

// Prometheus is a Collector backed by Prometheus. Metrics are registered
// lazily on first use.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	slotsFilled        *prometheus.CounterVec
	slotsUnfilled      *prometheus.CounterVec
	slotFailures       *prometheus.CounterVec
	generationDuration prometheus.Histogram
}

var _ Collector = (*Prometheus)(nil)

// NewPrometheus creates a collector registering on reg (the default
// registerer when nil) under namespace ("dutyplanner" when empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "dutyplanner"
	}
	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.slotsFilled = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "slots_filled_total",
			Help:      "Slots filled by schedule generation, by slot.",
		}, []string{"slot"})
		p.slotsUnfilled = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "slots_unfilled_total",
			Help:      "Slots left unfilled for lack of an eligible candidate, by slot.",
		}, []string{"slot"})
		p.slotFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "slot_failures_total",
			Help:      "Slots abandoned because the assignment could not be persisted, by slot.",
		}, []string{"slot"})
		p.generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "generation_duration_seconds",
			Help:      "Duration of a schedule generation run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		})

		p.reg.MustRegister(p.slotsFilled, p.slotsUnfilled, p.slotFailures, p.generationDuration)
	})
}

// RecordSlotFilled counts a filled slot
func (p *Prometheus) RecordSlotFilled(slot string) {
	p.ensureRegistered()
	p.slotsFilled.WithLabelValues(slot).Inc()
}

// RecordSlotUnfilled counts a slot without candidates
func (p *Prometheus) RecordSlotUnfilled(slot string) {
	p.ensureRegistered()
	p.slotsUnfilled.WithLabelValues(slot).Inc()
}

// RecordSlotFailure counts a slot whose writes failed
func (p *Prometheus) RecordSlotFailure(slot string) {
	p.ensureRegistered()
	p.slotFailures.WithLabelValues(slot).Inc()
}

// ObserveGeneration records the duration of one run
func (p *Prometheus) ObserveGeneration(seconds float64) {
	p.ensureRegistered()
	p.generationDuration.Observe(seconds)
}
