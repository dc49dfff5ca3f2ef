package mcpserver

import (
	"github.com/go-json-experiment/json"

	"github.com/kfly8/barefootjs-sub001/internal/loc"
)

// warningsJSON renders a compilation's warnings the same way
// internal/irjson renders IR: through go-json-experiment/json rather than
// the standard library's encoding/json, for consistency with the rest of
// this module's JSON surface.
func warningsJSON(warnings []loc.DiagnosticMessage) ([]byte, error) {
	return json.Marshal(warnings)
}
