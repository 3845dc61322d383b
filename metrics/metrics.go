// Package metrics defines how a Stash reports what it is doing. A Recorder
// receives one call per cache lifecycle event; the Prometheus implementation
// turns those events into counters, and Noop is the default when the caller
// does not care.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives cache lifecycle events.
type Recorder interface {
	// Hit is called when a lookup returns a live entry.
	Hit()

	// Miss is called when a lookup finds no entry, or only an expired one.
	Miss()

	// Fallback is called once per fallback execution on the miss-fill path.
	Fallback()

	// Renewal is called when a sliding-expiration hit pushes a deadline
	// forward.
	Renewal()
}

// Noop is a Recorder that ignores every event. It keeps the hot path free of
// nil checks when no metrics are configured.
type Noop struct{}

func (Noop) Hit()      {}
func (Noop) Miss()     {}
func (Noop) Fallback() {}
func (Noop) Renewal()  {}

// Prometheus is a Recorder backed by prometheus counters.
type Prometheus struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	fallbacks prometheus.Counter
	renewals  prometheus.Counter
}

// NewPrometheus creates a Prometheus Recorder and registers its counters on
// reg under the given namespace. A nil reg uses the default registerer, so
// the counters show up on promhttp.Handler without further wiring.
func NewPrometheus(namespace string, reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Prometheus{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stash",
			Name:      "hits_total",
			Help:      "Total number of lookups served from the stash.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stash",
			Name:      "misses_total",
			Help:      "Total number of lookups that found no live entry.",
		}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stash",
			Name:      "fallback_runs_total",
			Help:      "Total number of fallback executions on the miss-fill path.",
		}),
		renewals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stash",
			Name:      "sliding_renewals_total",
			Help:      "Total number of sliding-expiration deadline renewals.",
		}),
	}
}

func (p *Prometheus) Hit()      { p.hits.Inc() }
func (p *Prometheus) Miss()     { p.misses.Inc() }
func (p *Prometheus) Fallback() { p.fallbacks.Inc() }
func (p *Prometheus) Renewal()  { p.renewals.Inc() }
