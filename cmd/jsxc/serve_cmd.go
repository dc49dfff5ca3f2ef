package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kfly8/barefootjs-sub001/internal/mcplog"
	"github.com/kfly8/barefootjs-sub001/internal/mcpserver"
	"github.com/kfly8/barefootjs-sub001/internal/telemetry"
)

// runServe implements `jsxc serve [--log path] [--metrics-addr :9090] [--sentry-dsn dsn]`.
// It runs the MCP tool server on stdio (the foreground task) while a
// background goroutine serves /metrics for whatever scrapes this process.
func runServe(args []string) error {
	var (
		logPath     string
		metricsAddr string
		sentryDSN   string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--log":
			i++
			if i >= len(args) {
				return fmt.Errorf("--log requires a value")
			}
			logPath = args[i]
		case "--metrics-addr":
			i++
			if i >= len(args) {
				return fmt.Errorf("--metrics-addr requires a value")
			}
			metricsAddr = args[i]
		case "--sentry-dsn":
			i++
			if i >= len(args) {
				return fmt.Errorf("--sentry-dsn requires a value")
			}
			sentryDSN = args[i]
		default:
			return fmt.Errorf("unknown flag: %s", args[i])
		}
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("load jsxc.json: %w", err)
	}
	if logPath == "" {
		logPath = cfg.LogPath
	}
	if sentryDSN == "" {
		sentryDSN = cfg.SentryDSN
	}
	if metricsAddr == "" {
		metricsAddr = ":9090"
	}

	reporter, err := telemetry.NewPanicReporter(sentryDSN, "serve")
	if err != nil {
		return fmt.Errorf("init panic reporter: %w", err)
	}
	defer reporter.Flush(0)

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg)
	go serveMetrics(metricsAddr, reg)

	logger, err := mcplog.NewLogger(logPath)
	if err != nil {
		return fmt.Errorf("open mcp log: %w", err)
	}
	if logger != nil {
		defer logger.Close()
	}

	srv := mcpserver.NewServer(logger, metrics)
	defer srv.Close()

	fmt.Printf("jsxc serve: MCP tools on stdio, metrics on http://0.0.0.0%s/metrics\n", metricsAddr)
	return reporter.Guard("serve", srv.ServeStdio)
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "metrics server stopped: %v\n", err)
	}
}
