// Command jsxc is the CLI entry point for the JSX→IR front-end pass: it
// ties internal/compile, internal/compilecache, internal/filecache,
// internal/pipeline, internal/watch, internal/mcpserver, and
// internal/telemetry together behind three subcommands, the same
// switch-on-os.Args[1] dispatch gnana997/uispec's cmd/uispec/main.go uses.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "compile":
		err = runCompile(args)
	case "watch":
		err = runWatch(args)
	case "serve":
		err = runServe(args)
	case "version":
		fmt.Printf("jsxc %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "jsxc %s: %v\n", command, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: jsxc <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  compile   Compile one or more .tsx files (prints IR JSON with --dump-ir)")
	fmt.Println("  watch     Recompile files as they change on disk")
	fmt.Println("  serve     Run the MCP tool server on stdio plus a /metrics endpoint")
	fmt.Println("  version   Print the version")
	fmt.Println("  help      Show this help message")
}
