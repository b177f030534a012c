package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewCollectorRegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("new collector: %v", err)
	}

	col.RecordRequest("/api/simulations", 200)
	col.RecordRun("double-slit", 3*time.Millisecond)
	col.CatalogSize.Set(3)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	got := make(map[string]bool, len(families))
	for _, f := range families {
		got[f.GetName()] = true
	}
	for _, name := range []string{
		"phystutor_http_requests_total",
		"phystutor_compute_duration_seconds",
		"phystutor_simulation_runs_total",
		"phystutor_catalog_size",
	} {
		if !got[name] {
			t.Errorf("missing metric family %s", name)
		}
	}
}

func TestNewCollectorIdempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewCollector(reg); err != nil {
		t.Fatalf("first collector: %v", err)
	}
	// Re-registering against the same registry must reuse collectors
	// instead of failing.
	if _, err := NewCollector(reg); err != nil {
		t.Fatalf("second collector: %v", err)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var col *Collector
	col.RecordRequest("/healthz", 200)
	col.RecordRun("double-slit", time.Millisecond)
}
