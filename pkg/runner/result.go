package runner

import "github.com/yaklabco/subtext/pkg/decoder"

// FileOutcome is the decode outcome for a single input. Path is "-"
// for standard input.
type FileOutcome struct {
	// Path is the input that was processed.
	Path string

	// Subpictures are the decoded subtitles, in packet order.
	Subpictures []*decoder.Subpicture

	// Error is set if the input could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of inputs found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of inputs successfully decoded.
	FilesProcessed int

	// FilesErrored is the number of inputs that encountered errors.
	FilesErrored int

	// Subtitles is the total number of decoded subpictures.
	Subtitles int

	// PacketsDecoded and PacketsDropped accumulate the per-stream
	// decoder counters across all inputs.
	PacketsDecoded int
	PacketsDropped int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed input.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any input failed to decode.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Accumulate appends a file outcome and folds its counts into the
// stats. Exported so hosts that frame their own packets (stdin) can
// assemble a Result the reporters understand.
func (r *Result) Accumulate(outcome FileOutcome, decoded, dropped int) {
	r.Files = append(r.Files, outcome)
	r.Stats.PacketsDecoded += decoded
	r.Stats.PacketsDropped += dropped

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Subtitles += len(outcome.Subpictures)
}
