package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kfly8/barefootjs-sub001/internal/compile"
	"github.com/kfly8/barefootjs-sub001/internal/irjson"
	"github.com/kfly8/barefootjs-sub001/internal/telemetry"
)

// observeCompile records a compile.Result against s.metrics, if one was
// configured (see NewServer). Nil-guarded the same way s.logger is.
func (s *Server) observeCompile(result *compile.Result) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveCompile(result.Found, result.SlotCount, telemetry.WarningCodes(result.Warnings))
}

// observeError records a compile.File failure against s.metrics, if one was
// configured.
func (s *Server) observeError() {
	if s.metrics != nil {
		s.metrics.ObserveError()
	}
}

// stringArg pulls a string argument out of a CallToolRequest's arguments,
// tolerating the zero value for optional ones. mcp-go hands arguments back
// as a plain map[string]any (req.GetArguments()), so we read it directly
// rather than relying on a typed-argument helper.
func stringArg(req mcp.CallToolRequest, name string) string {
	args := req.GetArguments()
	if v, ok := args[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// handleCompileComponent runs internal/compile.File over the given source
// and returns its IR as JSON (via internal/irjson) alongside any warnings.
func (s *Server) handleCompileComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := stringArg(req, "filename")
	source := stringArg(req, "source")
	if filename == "" || source == "" {
		return errorResult("filename and source are required")
	}

	result, err := compile.File([]byte(source), filename, s.components, compile.Options{
		TargetComponentName: stringArg(req, "component"),
	})
	if err != nil {
		s.observeError()
		return errorResult("compile %s: %v", filename, err)
	}
	s.observeCompile(result)
	if !result.Found {
		return errorResult("no component found to compile in %s", filename)
	}
	if result.Summary != nil {
		s.components[result.Summary.Name] = result.Summary
	}

	irBytes, err := irjson.Marshal(result.Root)
	if err != nil {
		return errorResult("marshal IR for %s: %v", filename, err)
	}
	return mcp.NewToolResultText(string(irBytes)), nil
}

// handleListWarnings runs the same compilation as handleCompileComponent but
// reports only the warnings, for a caller that wants lint-style feedback
// without paying for the full IR payload.
func (s *Server) handleListWarnings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename := stringArg(req, "filename")
	source := stringArg(req, "source")
	if filename == "" || source == "" {
		return errorResult("filename and source are required")
	}

	result, err := compile.File([]byte(source), filename, s.components, compile.Options{
		TargetComponentName: stringArg(req, "component"),
	})
	if err != nil {
		s.observeError()
		return errorResult("compile %s: %v", filename, err)
	}
	s.observeCompile(result)
	if len(result.Warnings) == 0 {
		return mcp.NewToolResultText("[]"), nil
	}

	b, err := warningsJSON(result.Warnings)
	if err != nil {
		return errorResult("marshal warnings for %s: %v", filename, err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
