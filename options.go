package gonutstash

import (
	"time"

	"github.com/Keksclan/goNutStash/metrics"
	"github.com/Keksclan/goNutStash/tracing"
)

// Option configures a Stash.
type Option func(*config)

// WithClock replaces the time source used for deadlines and expiry checks.
// Tests use this to drive TTL behavior without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithMetrics wires a [metrics.Recorder] that receives one call per cache
// lifecycle event (hit, miss, fallback run, sliding renewal).
func WithMetrics(r metrics.Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// WithTracing enables an OpenTelemetry span around every fallback execution.
func WithTracing(cfg *tracing.Config) Option {
	return func(c *config) {
		c.trace = cfg
	}
}

// WithSingleflight deduplicates concurrent fallback executions per key: when
// several goroutines miss on the same key at once, one runs the fallback and
// the rest wait for its result.
//
// Off by default: without it every concurrent miss runs the fallback, which
// matches the documented contract. Dedup is an opt-in tightening, not part of
// that contract.
func WithSingleflight() Option {
	return func(c *config) {
		c.singleflight = true
	}
}

// WithLazyDeletion removes an expired entry when a lookup finds it, instead
// of leaving it in the map until a later Set supersedes it. Observable
// behavior is unchanged — an expired entry is a miss either way — but the map
// no longer retains stale entries for abandoned keys that happen to be read
// again.
func WithLazyDeletion() Option {
	return func(c *config) {
		c.lazyDelete = true
	}
}
