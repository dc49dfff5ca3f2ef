// Package pipeline compiles many independent component files concurrently,
// one internal/transform.Context per file per spec.md §5 ("Multiple
// components may be compiled in parallel across independent threads
// provided each gets its own Context and id generator"). It is modeled on
// gnana997/uispec's pkg/indexer.WorkerPool: a bounded goroutine pool reading
// FileJob values off a buffered channel and writing one FileResult per job,
// with any error carried in FileResult.Err, to a single results channel. A
// Pool optionally reports per-file outcomes to
// internal/telemetry.Metrics and recovers worker panics through an
// internal/telemetry.PanicReporter, so one malformed input can't take the
// rest of an in-flight batch down with it.
package pipeline

import (
	"os"
	"runtime"
	"sync"

	"github.com/kfly8/barefootjs-sub001/internal/compile"
	"github.com/kfly8/barefootjs-sub001/internal/symbols"
	"github.com/kfly8/barefootjs-sub001/internal/telemetry"
)

// OptimalWorkerCount mirrors uispec's util.GetOptimalPoolSize formula:
// min(max(NumCPU*2, 4), 32), enough parallelism on weak machines without
// spawning more goroutines than a high-core box can usefully schedule for a
// CPU-bound, lock-free pass.
func OptimalWorkerCount() int {
	n := runtime.NumCPU() * 2
	if n < 4 {
		n = 4
	}
	if n > 32 {
		n = 32
	}
	return n
}

// FileJob is one file to compile.
type FileJob struct {
	Filename string
	JobID    int
}

// FileResult pairs a FileJob's outcome with its JobID, so a caller can
// restore submission order even though jobs complete out of order.
type FileResult struct {
	JobID  int
	Result *compile.Result
	Err    error
}

// Pool runs FileJobs against a fixed, read-only symbols.ComponentTable.
// Workers never mutate Components; each compiles its own file with its own
// Context, so there is no shared mutable state across goroutines beyond
// that read-only map.
type Pool struct {
	numWorkers    int
	components    symbols.ComponentTable
	opts          compile.Options
	metrics       *telemetry.Metrics
	panicReporter *telemetry.PanicReporter
}

// New creates a Pool. numWorkers <= 0 uses OptimalWorkerCount.
func New(numWorkers int, components symbols.ComponentTable, opts compile.Options) *Pool {
	if numWorkers <= 0 {
		numWorkers = OptimalWorkerCount()
	}
	if components == nil {
		components = symbols.ComponentTable{}
	}
	return &Pool{numWorkers: numWorkers, components: components, opts: opts}
}

// WithMetrics records one Observe call per completed FileJob against m. Pass
// nil (the default) to skip recording.
func (p *Pool) WithMetrics(m *telemetry.Metrics) *Pool {
	p.metrics = m
	return p
}

// WithPanicReporter recovers a panic from a worker's compile.File call,
// reporting it to Sentry with the offending filename, so one malformed
// input can't take down the rest of the pool's in-flight jobs. Pass nil
// (the default) to let a panic propagate as it did before this existed.
func (p *Pool) WithPanicReporter(r *telemetry.PanicReporter) *Pool {
	p.panicReporter = r
	return p
}

// Run compiles every file in filenames and returns one FileResult per input,
// in the same order as filenames (not necessarily completion order).
func (p *Pool) Run(filenames []string) []FileResult {
	jobs := make(chan FileJob, len(filenames))
	results := make(chan FileResult, len(filenames))

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- p.runOne(job)
			}
		}()
	}

	for i, name := range filenames {
		jobs <- FileJob{Filename: name, JobID: i}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]FileResult, len(filenames))
	for r := range results {
		ordered[r.JobID] = r
	}
	return ordered
}

func (p *Pool) runOne(job FileJob) FileResult {
	source, err := os.ReadFile(job.Filename)
	if err != nil {
		p.observeError()
		return FileResult{JobID: job.JobID, Err: err}
	}

	var result *compile.Result
	err = p.guard(job.Filename, func() error {
		var compileErr error
		result, compileErr = compile.File(source, job.Filename, p.components, p.opts)
		return compileErr
	})
	if err != nil {
		p.observeError()
		return FileResult{JobID: job.JobID, Err: err}
	}

	p.observeCompile(result)
	return FileResult{JobID: job.JobID, Result: result}
}

// guard runs fn directly when no PanicReporter is configured, otherwise
// routes it through PanicReporter.Guard so a panic compiling one file
// becomes an error on that file's FileResult instead of crashing the pool.
func (p *Pool) guard(filename string, fn func() error) error {
	if p.panicReporter == nil {
		return fn()
	}
	return p.panicReporter.Guard(filename, fn)
}

func (p *Pool) observeCompile(result *compile.Result) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveCompile(result.Found, result.SlotCount, telemetry.WarningCodes(result.Warnings))
}

func (p *Pool) observeError() {
	if p.metrics != nil {
		p.metrics.ObserveError()
	}
}
