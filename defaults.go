package gonutstash

import "time"

// DefaultTTL is the ttl applied by [Stash.SetDefault]: zero, meaning the
// entry never expires.
const DefaultTTL time.Duration = 0

// DefaultSliding is the sliding flag applied by [Stash.SetDefault]. It has no
// effect while the ttl is zero, but it is recorded on the entry so a later
// read behaves consistently if callers rely on the stored flags.
const DefaultSliding = true
