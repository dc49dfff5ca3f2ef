package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestObserveCompileRecordsOutcomeAndSlotCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCompile(true, 3, []string{"WARNING_LIST_MISSING_KEY"})
	m.ObserveCompile(false, 0, nil)
	m.ObserveError()

	metricFamilies, err := reg.Gather()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, mf := range metricFamilies {
		if mf.GetName() != "jsxc_files_compiled_total" {
			continue
		}
		found = true
		total := 0.0
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		if total != 3 {
			t.Errorf("expected 3 total compiles recorded, got %v", total)
		}
	}
	if !found {
		t.Fatal("expected jsxc_files_compiled_total to be registered")
	}
}

func TestNewPanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	defer func() {
		if recover() == nil {
			t.Error("expected registering the same metrics twice to panic")
		}
	}()
	New(reg)
}
