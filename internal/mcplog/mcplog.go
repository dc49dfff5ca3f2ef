// Package mcplog writes one structured JSONL line per MCP tool call, the
// direct descendant of gnana997/uispec's pkg/mcplog: same LogEntry schema,
// same append-only file, same "empty path disables logging" contract, so
// internal/mcpserver's callers can treat logging as opt-in without a
// conditional at every call site.
package mcplog

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
)

// LogEntry is the schema for one JSONL line written per tool call.
type LogEntry struct {
	Ts            string         `json:"ts"`
	Tool          string         `json:"tool"`
	Params        map[string]any `json:"params,omitempty"`
	DurationMs    int64          `json:"duration_ms"`
	ResponseBytes int            `json:"response_bytes"`
	Error         *string        `json:"error,omitempty"`
}

// Logger appends LogEntry values to a file as newline-delimited JSON. Safe
// for concurrent use.
type Logger struct {
	mu sync.Mutex
	f  *os.File
}

// NewLogger opens (creating if needed) the file at path for append-only
// writes. Returns nil, nil for an empty path — callers treat a nil *Logger
// as "logging disabled" rather than branching on an error.
func NewLogger(path string) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

// Write appends one entry. Callers typically ignore the returned error so a
// logging failure never affects the tool call it describes.
func (l *Logger) Write(entry LogEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = l.f.Write(b)
	return err
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// SanitizeParams drops long string values (component source text) from a
// params map before logging, replacing them with a "<key>_len" byte count
// so source code never lands in the log file.
func SanitizeParams(args map[string]any) map[string]any {
	const shortStringMax = 64
	out := make(map[string]any, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok && len(s) > shortStringMax {
			out[k+"_len"] = len(s)
			continue
		}
		out[k] = v
	}
	return out
}

// Now is a replaceable clock for tests.
var Now = func() time.Time { return time.Now() }
