package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/subtext/internal/logging"
	"github.com/yaklabco/subtext/pkg/decoder"
	"github.com/yaklabco/subtext/pkg/fsutil"
)

// Runner orchestrates multi-file subtitle decoding.
type Runner struct {
	logger *log.Logger
}

// New creates a new Runner. A nil logger falls back to the package
// default.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{logger: logger}
}

// Run discovers files under opts.Paths and decodes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Decodes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	r.logger.Debug("starting decode run",
		logging.FieldFiles, len(files),
		"jobs", jobs,
	)

	workCh := make(chan string)
	outCh := make(chan workerOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Decoder)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect into a map: workers complete out of order.
	outcomes := make(map[string]workerOutcome, len(files))
	for out := range outCh {
		outcomes[out.outcome.Path] = out
	}

	// Build result in deterministic order.
	for _, path := range files {
		if out, ok := outcomes[path]; ok {
			result.Accumulate(out.outcome, out.decoded, out.dropped)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// workerOutcome pairs a file outcome with its decoder counters.
type workerOutcome struct {
	outcome FileOutcome
	decoded int
	dropped int
}

// worker decodes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- workerOutcome,
	decOpts decoder.Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out := r.processFile(ctx, path, decOpts)

		select {
		case <-ctx.Done():
			return
		case outCh <- out:
		}
	}
}

// processFile decodes one file with a fresh decoder.
func (r *Runner) processFile(ctx context.Context, path string, decOpts decoder.Options) workerOutcome {
	out := workerOutcome{outcome: FileOutcome{Path: path}}

	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		out.outcome.Error = err
		return out
	}

	d, err := decoder.New(decOpts, r.logger)
	if err != nil {
		out.outcome.Error = fmt.Errorf("open decoder: %w", err)
		return out
	}
	defer d.Close()

	blocks, err := FrameBlocks(data)
	if err != nil {
		out.outcome.Error = err
		return out
	}

	for _, block := range blocks {
		sp, err := d.Decode(block)
		if err != nil {
			out.outcome.Error = fmt.Errorf("decode %s: %w", path, err)
			break
		}
		if sp != nil {
			out.outcome.Subpictures = append(out.outcome.Subpictures, sp)
		}
	}

	out.decoded, out.dropped = d.Stats()
	return out
}
