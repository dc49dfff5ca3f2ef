// Package diag collects the warnings a compilation produces. It mirrors the
// shape of withastro/compiler's internal/handler package, trimmed to the
// single severity this pass ever emits (spec.md §7: the pass is total and
// never raises a fatal error) and with the WASM/sourcemap plumbing dropped
// in favor of a plain line/column resolver, since nothing downstream of this
// pass runs in syscall/js anymore.
package diag

import (
	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

// Handler is the warnings sink threaded through a Context (spec.md §3.1).
// It is not safe for concurrent use by itself; callers compiling components
// in parallel must give each Context, and therefore each Handler, its own
// instance (spec.md §5).
type Handler struct {
	sourcetext string
	filename   string
	lineStarts []int
	warnings   []*loc.ErrorWithRange
}

// NewHandler creates a Handler for one component's source text.
func NewHandler(sourcetext, filename string) *Handler {
	return &Handler{
		sourcetext: sourcetext,
		filename:   filename,
		lineStarts: lineStartOffsets(sourcetext),
		warnings:   make([]*loc.ErrorWithRange, 0),
	}
}

// AppendWarning records a warning. It never aborts compilation.
func (h *Handler) AppendWarning(code loc.DiagnosticCode, text string, at loc.Loc) {
	h.warnings = append(h.warnings, &loc.ErrorWithRange{
		Code:  code,
		Text:  text,
		Range: loc.Range{Loc: at, Len: 0},
	})
}

// HasWarnings reports whether any warning was recorded.
func (h *Handler) HasWarnings() bool {
	return len(h.warnings) > 0
}

// Warnings returns the recorded warnings rendered to file/line/column form,
// in the order they were appended.
func (h *Handler) Warnings() []loc.DiagnosticMessage {
	msgs := make([]loc.DiagnosticMessage, 0, len(h.warnings))
	for _, w := range h.warnings {
		line, col := h.lineAndColumn(w.Range.Loc)
		msgs = append(msgs, loc.DiagnosticMessage{
			Code:     w.Code,
			Text:     w.Text,
			Severity: loc.WarningType,
			Location: &loc.DiagnosticLocation{
				File:   h.filename,
				Line:   line,
				Column: col,
				Length: w.Range.Len,
			},
		})
	}
	return msgs
}

func (h *Handler) lineAndColumn(l loc.Loc) (line, column int) {
	// lineStarts is sorted ascending; find the last line start <= l.Start.
	idx := 0
	for i, start := range h.lineStarts {
		if start > l.Start {
			break
		}
		idx = i
	}
	return idx + 1, l.Start - h.lineStarts[idx] + 1
}

func lineStartOffsets(source string) []int {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' && i+1 < len(source) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
