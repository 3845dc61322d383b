// Package store holds the entry model and the locked mapping behind a Stash.
// It implements the full expiration and renewal policy; everything above it
// (metrics, tracing, fallback dedup, typed access) composes around this map.
package store

import (
	"reflect"
	"sync"
	"time"
)

// entry is the unit of storage: an opaque value plus its expiration
// bookkeeping.
type entry struct {
	data      any
	expiresAt time.Time     // zero means the entry never expires
	ttl       time.Duration // ttl requested at storage time; a sliding hit recomputes expiresAt from it
	sliding   bool
}

// Config controls a Map's clock and stale-entry handling.
type Config struct {
	// Now supplies the current time. When nil, time.Now is used.
	Now func() time.Time

	// LazyDelete removes an expired entry when a lookup finds it, instead of
	// leaving it in the map to be superseded by a later Set.
	LazyDelete bool
}

// Map is a mutex-guarded key → entry mapping. Lookup, expiry check, sliding
// renewal and insertion run as a single critical section per call, so callers
// never observe a partially updated entry.
type Map struct {
	mu      sync.Mutex
	entries map[string]*entry

	now        func() time.Time
	lazyDelete bool
}

// New creates an empty Map.
func New(cfg Config) *Map {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Map{
		entries:    make(map[string]*entry),
		now:        now,
		lazyDelete: cfg.LazyDelete,
	}
}

// Set stores value under key. A nil value (including a typed nil pointer, map,
// slice, channel or function) is a silent no-op, so a stored entry's data is
// never nil. ttl > 0 sets the deadline to now + ttl; ttl <= 0 clears it
// entirely, meaning the entry never expires.
//
// An existing entry is updated in place: its stored fields are replaced, and
// any previous deadline is overwritten or cleared by the new ttl. The return
// value reports whether anything was stored.
func (m *Map) Set(key string, value any, ttl time.Duration, sliding bool) bool {
	if isNil(value) {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		e = &entry{}
		m.entries[key] = e
	}
	e.data = value
	e.ttl = ttl
	e.sliding = sliding
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	} else {
		e.expiresAt = time.Time{}
	}
	return true
}

// Lookup finds the live entry for key. An absent entry, or one whose deadline
// is strictly before the current time, is a miss; the stale entry stays in the
// map unless LazyDelete is set.
//
// A hit on an entry stored with sliding expiration and a positive ttl extends
// its deadline to now + the entry's stored ttl. This renewal uses the flags
// recorded at storage time, never the current caller's arguments, and is the
// only way a read mutates the map. renewed reports whether it happened.
func (m *Map) Lookup(key string) (value any, renewed, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, false
	}

	now := m.now()
	if !e.expiresAt.IsZero() && e.expiresAt.Before(now) {
		if m.lazyDelete {
			delete(m.entries, key)
		}
		return nil, false, false
	}

	if e.sliding && e.ttl > 0 {
		e.expiresAt = now.Add(e.ttl)
		return e.data, true, true
	}
	return e.data, false, true
}

// Delete removes key from the map. Deleting an absent key is a no-op.
func (m *Map) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Len returns the number of entries in the map, including expired entries
// that have not been superseded or lazily deleted.
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// isNil reports whether v is nil, including typed nils boxed in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
