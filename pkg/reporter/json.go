package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/subtext/internal/ui/pretty"
	"github.com/yaklabco/subtext/pkg/decoder"
	"github.com/yaklabco/subtext/pkg/runner"
	"github.com/yaklabco/subtext/pkg/subtitle"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single input's results.
type JSONFileResult struct {
	Path      string         `json:"path"`
	Subtitles []JSONSubtitle `json:"subtitles"`
	Error     string         `json:"error,omitempty"`
}

// JSONSubtitle represents a single decoded subtitle.
type JSONSubtitle struct {
	Start     string        `json:"start"`
	Stop      string        `json:"stop,omitempty"`
	Ephemer   bool          `json:"ephemer,omitempty"`
	Alignment string        `json:"alignment"`
	Text      string        `json:"text"`
	Segments  []JSONSegment `json:"segments,omitempty"`
}

// JSONSegment represents one styled run of text.
type JSONSegment struct {
	Text      string `json:"text"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Strikeout bool   `json:"strikeout,omitempty"`
	Font      string `json:"font,omitempty"`
	FontSize  int    `json:"fontSize,omitempty"`
	Color     string `json:"color,omitempty"`
	BackColor string `json:"backColor,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesProcessed int `json:"filesProcessed"`
	FilesErrored   int `json:"filesErrored"`
	Subtitles      int `json:"subtitles"`
	PacketsDecoded int `json:"packetsDecoded"`
	PacketsDropped int `json:"packetsDropped"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Subtitles, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}
	output.Summary = JSONSummary{
		FilesProcessed: result.Stats.FilesProcessed,
		FilesErrored:   result.Stats.FilesErrored,
		Subtitles:      result.Stats.Subtitles,
		PacketsDecoded: result.Stats.PacketsDecoded,
		PacketsDropped: result.Stats.PacketsDropped,
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:      file.Path,
			Subtitles: make([]JSONSubtitle, 0, len(file.Subpictures)),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		for _, sp := range file.Subpictures {
			fileResult.Subtitles = append(fileResult.Subtitles, buildSubtitle(sp))
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}

func buildSubtitle(sp *decoder.Subpicture) JSONSubtitle {
	out := JSONSubtitle{
		Start:     pretty.FormatTimestamp(sp.Start),
		Ephemer:   sp.Ephemer,
		Alignment: sp.Alignment.String(),
		Text:      sp.Segments.Text(),
	}
	if !sp.Ephemer {
		out.Stop = pretty.FormatTimestamp(sp.Stop)
	}

	for _, seg := range sp.Segments.Compact() {
		out.Segments = append(out.Segments, buildSegment(seg))
	}
	return out
}

func buildSegment(seg *subtitle.Segment) JSONSegment {
	out := JSONSegment{Text: seg.String()}

	st := seg.Style
	if st == nil {
		return out
	}

	out.Bold = st.Flags.Has(subtitle.FlagBold)
	out.Italic = st.Flags.Has(subtitle.FlagItalic)
	out.Underline = st.Flags.Has(subtitle.FlagUnderline)
	out.Strikeout = st.Flags.Has(subtitle.FlagStrikeout)
	out.Font = st.FontName
	if st.HasFeature(subtitle.FeatFontSize) {
		out.FontSize = st.FontSize
	}
	if st.HasFeature(subtitle.FeatFontColor) {
		out.Color = st.FontColor.String()
	}
	if st.HasFeature(subtitle.FeatBackColor) {
		out.BackColor = st.BackColor.String()
	}
	return out
}
