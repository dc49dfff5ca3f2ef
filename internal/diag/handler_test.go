package diag

import (
	"testing"

	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

func TestHandlerLocatesWarningByLineAndColumn(t *testing.T) {
	source := "line one\nline two\nline three"
	h := NewHandler(source, "test.tsx")

	// "two" starts at offset 14 (second line, column 6).
	h.AppendWarning(loc.WARNING_MALFORMED_ATTRIBUTE, "bad attribute", loc.Loc{Start: 14})

	if !h.HasWarnings() {
		t.Fatal("expected a warning to be recorded")
	}
	warnings := h.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	w := warnings[0]
	if w.Location.Line != 2 || w.Location.Column != 6 {
		t.Errorf("expected line 2 column 6, got line %d column %d", w.Location.Line, w.Location.Column)
	}
	if w.Location.File != "test.tsx" {
		t.Errorf("expected filename to propagate, got %q", w.Location.File)
	}
	if w.Severity != loc.WarningType {
		t.Errorf("expected WarningType severity, got %v", w.Severity)
	}
}

func TestHandlerWithNoWarnings(t *testing.T) {
	h := NewHandler("abc", "empty.tsx")
	if h.HasWarnings() {
		t.Error("a fresh handler must report no warnings")
	}
	if len(h.Warnings()) != 0 {
		t.Error("a fresh handler must return an empty warnings slice")
	}
}

func TestHandlerFirstLineWarning(t *testing.T) {
	h := NewHandler("abc\ndef", "f.tsx")
	h.AppendWarning(loc.WARNING, "first line warning", loc.Loc{Start: 1})
	w := h.Warnings()[0]
	if w.Location.Line != 1 || w.Location.Column != 2 {
		t.Errorf("expected line 1 column 2, got line %d column %d", w.Location.Line, w.Location.Column)
	}
}
