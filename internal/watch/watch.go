// Package watch recompiles a component file whenever it changes on disk.
// It is the direct descendant of gnana997/uispec's pkg/indexer.FileWatcher:
// the same fsnotify event loop, the same per-path debounce timer map, and
// the same shouldIgnore directory filter, retargeted from re-indexing
// symbols to re-running internal/compile on the changed file.
package watch

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups rapid successive writes (editors that save in two
// steps, `go fmt` rewriting a file right after a manual edit) into one
// recompile instead of many.
const DefaultDebounce = 150 * time.Millisecond

var ignoredDirs = map[string]bool{
	"node_modules": true, ".git": true, "dist": true, "build": true,
}

// Options configures a Watcher.
type Options struct {
	// Debounce is the quiet period before a changed file is handed to
	// OnChange. Zero uses DefaultDebounce.
	Debounce time.Duration
	// Extension restricts watched files to this suffix (".tsx" by default).
	Extension string
	Logger    *slog.Logger
}

// Watcher watches a directory tree for changes to component source files
// and invokes a callback once per settled change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	opts     Options
	onChange func(path string)

	debounceMu sync.Mutex
	timers     map[string]*time.Timer

	stopOnce sync.Once
	stopCh   chan struct{}
}

// New creates a Watcher. onChange is invoked, from a background goroutine,
// once per settled write/create event for a file matching opts.Extension.
func New(opts Options, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Extension == "" {
		opts.Extension = ".tsx"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Watcher{
		fsw:      fsw,
		opts:     opts,
		onChange: onChange,
		timers:   make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
	}, nil
}

// Start adds root and every non-ignored subdirectory to the watch list and
// begins the background event loop.
func (w *Watcher) Start(root string) error {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if ignoredDirs[filepath.Base(path)] {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.opts.Logger.Warn("watch: failed to add directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Error("watch: fsnotify error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Ext(event.Name) != w.opts.Extension {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	w.debounce(event.Name)
}

func (w *Watcher) debounce(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(w.opts.Debounce, func() {
		w.debounceMu.Lock()
		delete(w.timers, path)
		w.debounceMu.Unlock()
		w.onChange(path)
	})
}

// Stop cancels pending timers and shuts down the event loop. Safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.debounceMu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.timers = make(map[string]*time.Timer)
		w.debounceMu.Unlock()
		err = w.fsw.Close()
	})
	return err
}
