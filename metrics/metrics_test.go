package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheus_CountsEvents(t *testing.T) {
	p := NewPrometheus("test", prometheus.NewRegistry())

	p.Hit()
	p.Hit()
	p.Miss()
	p.Fallback()
	p.Renewal()
	p.Renewal()
	p.Renewal()

	if got := testutil.ToFloat64(p.hits); got != 2 {
		t.Errorf("hits_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.misses); got != 1 {
		t.Errorf("misses_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.fallbacks); got != 1 {
		t.Errorf("fallback_runs_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(p.renewals); got != 3 {
		t.Errorf("sliding_renewals_total = %v, want 3", got)
	}
}

func TestPrometheus_RegistersOnSuppliedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus("test", reg)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) != 4 {
		t.Fatalf("registered %d metric families, want 4", len(families))
	}
}

func TestRecorderImplementations(t *testing.T) {
	// Both implementations must satisfy the interface; Noop must be callable
	// without any setup.
	var r Recorder = Noop{}
	r.Hit()
	r.Miss()
	r.Fallback()
	r.Renewal()

	r = NewPrometheus("impl", prometheus.NewRegistry())
	r.Hit()
}
