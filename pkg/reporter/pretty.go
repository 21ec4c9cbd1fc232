package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/subtext/internal/ui/pretty"
	"github.com/yaklabco/subtext/pkg/runner"
)

// PrettyReporter writes subtitles as styled terminal output. Markup
// attributes the parser captured (bold, italic, colors) are mapped
// onto terminal attributes so the subtitle looks the way a renderer
// would draw it.
type PrettyReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewPrettyReporter creates a new pretty reporter.
func NewPrettyReporter(opts Options) *PrettyReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &PrettyReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *PrettyReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No input."))
		}
		return 0, nil
	}

	total := 0

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		fmt.Fprintf(r.bw, "%s %s\n",
			r.styles.FilePath.Render(file.Path),
			r.styles.Dim.Render(fmt.Sprintf("(%d subtitles)", len(file.Subpictures))),
		)

		for _, sp := range file.Subpictures {
			fmt.Fprintf(r.bw, "  %s\n", r.styles.FormatSubpictureHeader(sp))
			fmt.Fprintf(r.bw, "  %s\n", r.styles.RenderChain(sp.Segments))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats.PacketsDecoded, result.Stats.PacketsDropped))
	}

	return total, nil
}
