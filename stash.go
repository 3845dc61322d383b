// Package gonutstash provides a process-local, in-memory key/value stash with
// optional time-based expiration, optional sliding-expiration renewal, and a
// compute-on-miss fill: a caller-supplied producer runs when a key is absent
// or expired, its result is stored, and it is returned.
//
// The stash holds no capacity limit and no eviction policy beyond expiration;
// stored values are opaque to it. No operation returns an error — a miss, a
// nil write, a nil fallback result or a type mismatch all degrade silently to
// "zero value / no-op".
//
// A Stash is an explicit handle, not hidden process state: construct one with
// [New] and inject it wherever caching is needed. Each test can build its own.
package gonutstash

import (
	"time"

	"github.com/Keksclan/goNutStash/internal/store"
	"github.com/Keksclan/goNutStash/metrics"
	"github.com/Keksclan/goNutStash/tracing"
	"golang.org/x/sync/singleflight"
)

// Stash is a process-local key/value cache. All methods are safe for
// concurrent use; the only suspension point is the caller's own fallback,
// which runs outside the stash lock and may block arbitrarily.
type Stash struct {
	store    *store.Map
	recorder metrics.Recorder
	trace    *tracing.Config
	group    *singleflight.Group // nil unless WithSingleflight
}

// New creates a Stash by applying the supplied functional [Option] values.
//
// Example:
//
//	stash := gonutstash.New(
//		gonutstash.WithMetrics(metrics.NewPrometheus("myapp", nil)),
//		gonutstash.WithSingleflight(),
//	)
func New(opts ...Option) *Stash {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	rec := cfg.recorder
	if rec == nil {
		rec = metrics.Noop{}
	}

	s := &Stash{
		store: store.New(store.Config{
			Now:        cfg.now,
			LazyDelete: cfg.lazyDelete,
		}),
		recorder: rec,
		trace:    cfg.trace,
	}
	if cfg.singleflight {
		s.group = new(singleflight.Group)
	}
	return s
}

// Set stores value under key. A nil value is a silent no-op; an existing
// entry is neither created nor altered by it. ttl > 0 expires the entry that
// long after this write (or after the last sliding renewal); ttl <= 0 means
// the entry never expires. When sliding is true and ttl > 0, every successful
// read pushes the deadline forward by ttl.
//
// Keys are not validated; the empty string is an ordinary key.
func (s *Stash) Set(key string, value any, ttl time.Duration, sliding bool) {
	s.store.Set(key, value, ttl, sliding)
}

// SetDefault stores value with [DefaultTTL] and [DefaultSliding]: the entry
// never expires.
func (s *Stash) SetDefault(key string, value any) {
	s.Set(key, value, DefaultTTL, DefaultSliding)
}

// Get returns the value stored under key. The boolean reports a hit. An
// absent key, or an entry whose deadline has passed, is a miss; the stale
// entry stays in place (unless WithLazyDeletion is set) and is superseded by
// the next Set.
//
// A hit on a sliding entry renews its deadline from the ttl recorded when it
// was stored. That renewal is the only way a read mutates the stash.
func (s *Stash) Get(key string) (any, bool) {
	v, renewed, ok := s.store.Lookup(key)
	if !ok {
		s.recorder.Miss()
		return nil, false
	}
	if renewed {
		s.recorder.Renewal()
	}
	s.recorder.Hit()
	return v, true
}

// Fetch is Get with a fallback. On a hit it behaves exactly like [Stash.Get].
// On a miss it invokes fallback (when non-nil), stores a non-nil result under
// key with the supplied ttl and sliding flag, and returns it. A nil fallback,
// or a fallback returning nil, leaves the stash untouched and yields nil.
//
// By default every concurrent miss for the same key runs the fallback; there
// is no dedup unless the stash was built with [WithSingleflight].
func (s *Stash) Fetch(key string, fallback func() any, ttl time.Duration, sliding bool) any {
	if v, ok := s.Get(key); ok {
		return v
	}
	if fallback == nil {
		return nil
	}

	if s.group != nil {
		v, _, _ := s.group.Do(key, func() (any, error) {
			return s.fill(key, fallback, ttl, sliding), nil
		})
		return v
	}
	return s.fill(key, fallback, ttl, sliding)
}

// Delete removes key from the stash immediately. Deleting an absent key is a
// no-op.
func (s *Stash) Delete(key string) {
	s.store.Delete(key)
}

// Len returns the number of entries currently held, including expired entries
// that have not yet been superseded or lazily deleted.
func (s *Stash) Len() int {
	return s.store.Len()
}

// fill runs the fallback outside the stash lock and stores a non-nil result
// with the caller's current ttl and sliding arguments.
func (s *Stash) fill(key string, fallback func() any, ttl time.Duration, sliding bool) any {
	end := tracing.StartFallback(s.trace, key)
	v := fallback()
	s.recorder.Fallback()
	end(s.store.Set(key, v, ttl, sliding))
	return v
}
