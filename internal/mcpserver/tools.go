package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// compileComponentTool exposes internal/compile.File as an MCP tool: given
// TSX source and a filename, it returns the compiled IR (as JSON, via
// internal/irjson) and any warnings.
func compileComponentTool() mcp.Tool {
	return mcp.NewTool("compile_component",
		mcp.WithDescription("Compile one TSX component's source through the JSX→IR front-end pass and return its IR as JSON"),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Source filename, used for diagnostics")),
		mcp.WithString("source", mcp.Required(), mcp.Description("TSX source text containing the component")),
		mcp.WithString("component", mcp.Description("PascalCase component name to compile; defaults to the first one found")),
	)
}

// listWarningsTool exposes only the warnings side of a compilation, for a
// caller that wants lint-style feedback without the full IR payload.
func listWarningsTool() mcp.Tool {
	return mcp.NewTool("list_warnings",
		mcp.WithDescription("Compile one TSX component's source and return only the warnings the pass recorded"),
		mcp.WithString("filename", mcp.Required(), mcp.Description("Source filename, used for diagnostics")),
		mcp.WithString("source", mcp.Required(), mcp.Description("TSX source text containing the component")),
		mcp.WithString("component", mcp.Description("PascalCase component name to compile; defaults to the first one found")),
	)
}
