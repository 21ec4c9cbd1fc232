package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/subtext/internal/ui/pretty"
	"github.com/yaklabco/subtext/pkg/runner"
)

// TextReporter writes subtitles as plain text with timing headers.
// Markup styling is dropped; only the visible text is printed.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		return 0, nil
	}

	total := 0
	showPath := len(result.Files) > 1

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if showPath {
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(file.Path))
		}

		for _, sp := range file.Subpictures {
			fmt.Fprintln(r.bw, r.styles.FormatSubpictureHeader(sp))
			fmt.Fprintln(r.bw, sp.Segments.Text())
			fmt.Fprintln(r.bw)
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats.PacketsDecoded, result.Stats.PacketsDropped))
	}

	return total, nil
}
