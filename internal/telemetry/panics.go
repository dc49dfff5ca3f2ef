package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// PanicReporter sends a recovered panic from the worker pool (internal/
// pipeline) to Sentry with the filename that was being compiled, the same
// hub-scoped CaptureException shape as bubblyui's SentryReporter.ReportPanic.
type PanicReporter struct {
	hub *sentry.Hub
}

// NewPanicReporter initializes the Sentry SDK with dsn and returns a
// PanicReporter. An empty dsn is valid — Sentry no-ops without one, letting
// callers construct a PanicReporter unconditionally and only set a real DSN
// in production.
func NewPanicReporter(dsn, environment string) (*PanicReporter, error) {
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: environment}); err != nil {
		return nil, fmt.Errorf("telemetry: sentry init: %w", err)
	}
	return &PanicReporter{hub: sentry.CurrentHub()}, nil
}

// Report captures a panic recovered while compiling filename.
func (p *PanicReporter) Report(filename string, recovered any) {
	p.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("file", filename)
		p.hub.CaptureException(fmt.Errorf("panic compiling %s: %v", filename, recovered))
	})
}

// Flush blocks until pending events are sent or timeout elapses.
func (p *PanicReporter) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// Guard recovers a panic from fn, reports it to Sentry with filename, and
// returns it as an error instead of letting it crash the worker pool.
func (p *PanicReporter) Guard(filename string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			p.Report(filename, r)
			err = fmt.Errorf("telemetry: recovered panic compiling %s: %v", filename, r)
		}
	}()
	return fn()
}
