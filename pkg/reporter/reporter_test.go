package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/subtext/pkg/config"
	"github.com/yaklabco/subtext/pkg/decoder"
	"github.com/yaklabco/subtext/pkg/reporter"
	"github.com/yaklabco/subtext/pkg/runner"
	"github.com/yaklabco/subtext/pkg/subtitle"
)

func chainOf(texts ...string) subtitle.Chain {
	chain := make(subtitle.Chain, 0, len(texts))
	for _, t := range texts {
		seg := subtitle.NewSegment(nil)
		for i := 0; i < len(t); i++ {
			seg.AppendByte(t[i])
		}
		chain = append(chain, seg)
	}
	return chain
}

func sampleResult() *runner.Result {
	bold := subtitle.NewStyle()
	bold.Flags = subtitle.FlagBold
	bold.SetFontColor(0xFF0000)

	styled := subtitle.NewSegment(bold)
	for _, b := range []byte("loud") {
		styled.AppendByte(b)
	}

	result := &runner.Result{}
	result.Accumulate(runner.FileOutcome{
		Path: "movie.srt",
		Subpictures: []*decoder.Subpicture{
			{
				Start:     10 * time.Second,
				Stop:      12 * time.Second,
				Alignment: subtitle.AlignBottom,
				Segments:  chainOf("hello"),
			},
			{
				Start:     15 * time.Second,
				Ephemer:   true,
				Alignment: subtitle.AlignBottom,
				Segments:  subtitle.Chain{styled},
			},
		},
	}, 2, 0)
	return result
}

func TestNew_FormatSelection(t *testing.T) {
	tests := []struct {
		format  config.OutputFormat
		wantErr bool
	}{
		{config.FormatText, false},
		{config.FormatJSON, false},
		{config.FormatPretty, false},
		{config.OutputFormat(""), false}, // defaults to text
		{config.OutputFormat("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			r, err := reporter.New(reporter.Options{Writer: &buf, Format: tt.format})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestTextReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "00:00:10.000 --> 00:00:12.000  bottom-center")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "00:00:15.000 --> ephemer")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "2 packets decoded")
	// Single input, no path header
	assert.NotContains(t, out, "movie.srt")
}

func TestTextReporter_MultipleFilesShowPaths(t *testing.T) {
	result := sampleResult()
	result.Accumulate(runner.FileOutcome{
		Path: "other.srt",
		Subpictures: []*decoder.Subpicture{
			{Start: time.Second, Stop: 2 * time.Second, Segments: chainOf("bye")},
		},
	}, 1, 0)

	var buf bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "movie.srt")
	assert.Contains(t, buf.String(), "other.srt")
}

func TestTextReporter_FileError(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	result := &runner.Result{}
	result.Accumulate(runner.FileOutcome{Path: "missing.srt", Error: errors.New("no such file")}, 0, 0)

	count, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "missing.srt")
	assert.Contains(t, buf.String(), "no such file")
}

func TestTextReporter_NilResult(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := r.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 1)
	assert.Equal(t, "movie.srt", output.Files[0].Path)
	require.Len(t, output.Files[0].Subtitles, 2)

	first := output.Files[0].Subtitles[0]
	assert.Equal(t, "00:00:10.000", first.Start)
	assert.Equal(t, "00:00:12.000", first.Stop)
	assert.Equal(t, "bottom-center", first.Alignment)
	assert.Equal(t, "hello", first.Text)

	second := output.Files[0].Subtitles[1]
	assert.True(t, second.Ephemer)
	assert.Empty(t, second.Stop)
	require.Len(t, second.Segments, 1)
	assert.True(t, second.Segments[0].Bold)
	assert.Equal(t, "#FF0000", second.Segments[0].Color)

	assert.Equal(t, 2, output.Summary.Subtitles)
	assert.Equal(t, 2, output.Summary.PacketsDecoded)
	assert.Equal(t, 1, output.Summary.FilesProcessed)
}

func TestJSONReporter_Compact(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	// Compact output is a single line.
	assert.Equal(t, 1, strings.Count(strings.TrimRight(buf.String(), "\n"), "\n")+1)
	assert.NotContains(t, buf.String(), "  \"files\"")
}

func TestJSONReporter_ErrorFile(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	result := &runner.Result{}
	result.Accumulate(runner.FileOutcome{Path: "bad.srt", Error: errors.New("boom")}, 0, 1)

	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "boom", output.Files[0].Error)
	assert.Equal(t, 1, output.Summary.FilesErrored)
}

func TestPrettyReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewPrettyReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
	})

	count, err := r.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "movie.srt")
	assert.Contains(t, out, "(2 subtitles)")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "2 packets decoded")
}
