package gonutstash

import (
	"time"

	"github.com/Keksclan/goNutStash/metrics"
	"github.com/Keksclan/goNutStash/tracing"
)

// config holds the internal configuration assembled via functional options.
type config struct {
	now          func() time.Time
	recorder     metrics.Recorder
	trace        *tracing.Config
	singleflight bool
	lazyDelete   bool
}
