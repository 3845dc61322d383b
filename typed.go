package gonutstash

import "time"

// Get returns the value stored under key interpreted as T. A miss yields the
// zero value of T, and so does a stored value that is not a T — a type
// mismatch is swallowed, never surfaced.
func Get[T any](s *Stash, key string) T {
	v, ok := s.Get(key)
	if !ok {
		var zero T
		return zero
	}
	return as[T](v)
}

// Fetch is the typed Get-with-fallback. On a miss it invokes fallback (when
// non-nil), stores a non-nil result under key with the supplied ttl and
// sliding flag, and returns it. A nil result — including a typed nil pointer,
// map or slice — is not stored. As with [Get], a stored value of the wrong
// type degrades to the zero value of T.
func Fetch[T any](s *Stash, key string, fallback func() T, ttl time.Duration, sliding bool) T {
	var fb func() any
	if fallback != nil {
		fb = func() any { return fallback() }
	}
	return as[T](s.Fetch(key, fb, ttl, sliding))
}

// as converts v to T, degrading to the zero value on mismatch or nil.
func as[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero
	}
	return t
}
