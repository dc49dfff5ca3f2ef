// Package mcpserver exposes the compile pass over the Model Context
// Protocol so an editor or agent can ask for one component's compiled IR (or
// just its warnings) without shelling out to the cmd/jsxc binary. It is
// grounded on gnana997/uispec's pkg/mcp package: the same server.MCPServer
// wiring, the same server.ServerTool{Tool,Handler} registration, and the
// same optional logging middleware recording every call — retargeted from
// uispec's catalog queries to internal/compile.File.
package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kfly8/barefootjs-sub001/internal/mcplog"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
	"github.com/kfly8/barefootjs-sub001/internal/telemetry"
)

const serverName = "jsxc"

// Version is overridable at link time (-ldflags) by cmd/jsxc's build.
var Version = "dev"

// Server wraps an *mcp-go* server.MCPServer with the tools this package
// defines, plus the shared compiled-component table the tools read and
// extend as callers compile more files in one session.
type Server struct {
	mcpServer  *server.MCPServer
	components symbols.ComponentTable
	logger     *mcplog.Logger
	metrics    *telemetry.Metrics
}

// NewServer builds a Server. logger may be nil, in which case calls are not
// journaled (mirrors mcplog.NewLogger's nil-for-empty-path contract).
// metrics may also be nil, in which case tool calls are not observed.
func NewServer(logger *mcplog.Logger, metrics *telemetry.Metrics) *Server {
	s := &Server{
		components: symbols.ComponentTable{},
		logger:     logger,
		metrics:    metrics,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if s.logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer(serverName, Version, opts...)
	s.mcpServer.AddTools(
		server.ServerTool{Tool: compileComponentTool(), Handler: s.handleCompileComponent},
		server.ServerTool{Tool: listWarningsTool(), Handler: s.handleListWarnings},
	)
	return s
}

// ServeStdio runs the server on stdin/stdout, blocking until mcp-go's
// server.ServeStdio returns. cmd/jsxc installs no signal handling of its own
// around this call.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close releases the logger, if one was configured.
func (s *Server) Close() error {
	if s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

// loggingMiddleware journals every tool call's name, sanitized arguments,
// latency, and outcome through internal/mcplog, the way
// gnana997-uispec's pkg/mcp/middleware.go journals its own tool calls.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := mcplog.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			var errStr *string
			if err != nil {
				msg := err.Error()
				errStr = &msg
			}
			entry := mcplog.LogEntry{
				Ts:            start.UTC().Format(time.RFC3339),
				Tool:          req.Params.Name,
				Params:        mcplog.SanitizeParams(req.GetArguments()),
				DurationMs:    elapsed,
				ResponseBytes: responseBytes(result),
				Error:         errStr,
			}
			_ = s.logger.Write(entry)
			return result, err
		}
	}
}

func responseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	n := 0
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			n += len(tc.Text)
		}
	}
	return n
}

// errorResult wraps an error the way the handlers below report tool
// failures without turning them into a transport-level mcp-go error, so the
// client sees a normal tool response with IsError set.
func errorResult(format string, args ...any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(fmt.Sprintf(format, args...)), nil
}
