package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kfly8/barefootjs-sub001/internal/compile"
	"github.com/kfly8/barefootjs-sub001/internal/filecache"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
	"github.com/kfly8/barefootjs-sub001/internal/watch"
)

// runWatch implements `jsxc watch <dir> [--ext .tsx] [--component Name]`.
func runWatch(args []string) error {
	var (
		dir       string
		extension string
		component string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--ext":
			i++
			if i >= len(args) {
				return fmt.Errorf("--ext requires a value")
			}
			extension = args[i]
		case "--component":
			i++
			if i >= len(args) {
				return fmt.Errorf("--component requires a value")
			}
			component = args[i]
		default:
			dir = args[i]
		}
	}
	if dir == "" {
		dir = "."
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("load jsxc.json: %w", err)
	}
	extension = resolveExtension(extension, cfg)

	components := symbols.ComponentTable{}
	opts := compile.Options{TargetComponentName: component}
	fc := filecache.New()
	defer fc.Close()

	onChange := func(path string) {
		source, err := fc.Read(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return
		}
		result, err := compile.File(source, path, components, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			return
		}
		if !result.Found {
			fmt.Printf("%s: no matching component\n", path)
			return
		}
		components[result.Summary.Name] = result.Summary
		fmt.Printf("%s: recompiled %s, %d slot(s)\n", path, result.Summary.Name, result.SlotCount)
	}

	w, err := watch.New(watch.Options{Extension: extension}, onChange)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(dir); err != nil {
		return fmt.Errorf("start watcher on %s: %w", dir, err)
	}
	defer w.Stop()

	fmt.Printf("watching %s for %s changes, press Ctrl-C to stop\n", dir, extension)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}
