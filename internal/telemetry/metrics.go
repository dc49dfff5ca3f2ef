// Package telemetry is this repository's one concession to ambient
// observability beyond logging: a small Prometheus registry describing how
// a compile/serve run behaves, plus an optional Sentry panic reporter for
// `compile --workers` and the long-running serve mode. It is grounded on
// newbpydev/bubblyui's pkg/bubbly/monitoring.PrometheusMetrics (same
// registration pattern: build collectors, MustRegister them against a given
// Registerer) and pkg/bubbly/observability.SentryReporter (sentry.Init plus
// a hub-scoped CaptureException call).
//
// Nothing in internal/transform imports this package; the pass itself stays
// side-effect-free per spec.md §5. Only internal/pipeline, internal/mcpserver,
// and the CLI's compile and serve commands observe it; `jsxc watch` does not.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

// Metrics is the registry this repository exposes at /metrics in `jsxc serve`.
type Metrics struct {
	filesCompiled   *prometheus.CounterVec
	slotCount       prometheus.Histogram
	warningsEmitted *prometheus.CounterVec
}

// New builds and registers every collector against reg. Registration panics
// on a duplicate metric name, matching bubblyui's fail-fast-at-startup
// choice: a misconfigured registry should never pass silently.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		filesCompiled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsxc_files_compiled_total",
				Help: "Total number of source files run through the front-end pass, partitioned by outcome.",
			},
			[]string{"outcome"}, // "found" | "not_found" | "error"
		),
		slotCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jsxc_slot_count",
				Help:    "Histogram of slot ids issued per compiled component.",
				Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
			},
		),
		warningsEmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsxc_warnings_total",
				Help: "Total number of warnings appended to a Context's diag.Handler, partitioned by code.",
			},
			[]string{"code"},
		),
	}
	reg.MustRegister(m.filesCompiled, m.slotCount, m.warningsEmitted)
	return m
}

// ObserveCompile records one internal/compile.File outcome.
func (m *Metrics) ObserveCompile(found bool, slotCount int, warningCodes []string) {
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	m.filesCompiled.WithLabelValues(outcome).Inc()
	if found {
		m.slotCount.Observe(float64(slotCount))
	}
	for _, code := range warningCodes {
		m.warningsEmitted.WithLabelValues(code).Inc()
	}
}

// ObserveError records a file that failed to compile with a Go error
// (parse failure), distinct from "found=false" (a valid parse that simply
// had no matching component, per spec.md §4.7).
func (m *Metrics) ObserveError() {
	m.filesCompiled.WithLabelValues("error").Inc()
}

// WarningCodes renders a compile.Result's warnings to the symbolic code
// names ObserveCompile partitions jsxc_warnings_total by, so every caller
// threading a compile.Result into Metrics shares one conversion.
func WarningCodes(warnings []loc.DiagnosticMessage) []string {
	if len(warnings) == 0 {
		return nil
	}
	codes := make([]string, len(warnings))
	for i, w := range warnings {
		codes[i] = w.Code.String()
	}
	return codes
}
