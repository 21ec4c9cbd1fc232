package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/subtext/internal/cli"
)

// testSRT carries two cues: one with inline markup, one plain.
const testSRT = `1
00:00:10,000 --> 00:00:12,000
<b>Hello</b> world

2
00:00:15,500 --> 00:00:17,000
{\an8}Up top
`

// isolateConfig points config discovery at empty directories so
// developer machines' real config files cannot leak into tests.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestIntegration_DecodeSRTFile(t *testing.T) {
	isolateConfig(t)

	srtFile := filepath.Join(t.TempDir(), "test.srt")
	require.NoError(t, os.WriteFile(srtFile, []byte(testSRT), 0o644))

	out, err := runCommand(t, "", "decode", "--color", "never", srtFile)
	require.NoError(t, err)

	assert.Contains(t, out, "00:00:10.000 --> 00:00:12.000")
	assert.Contains(t, out, "Hello world")
	assert.Contains(t, out, "00:00:15.500 --> 00:00:17.000")
	assert.Contains(t, out, "Up top")
	// The alignment override moved the second cue to the top.
	assert.Contains(t, out, "top-center")
	assert.Contains(t, out, "2 packets decoded")
}

func TestIntegration_DecodeStdinRawPayload(t *testing.T) {
	isolateConfig(t)

	out, err := runCommand(t, "<i>whisper</i>", "decode", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "whisper")
	assert.NotContains(t, out, "<i>")
	// Raw payloads carry no duration and stay up until replaced.
	assert.Contains(t, out, "ephemer")
}

func TestIntegration_DecodeJSONFormat(t *testing.T) {
	isolateConfig(t)

	srtFile := filepath.Join(t.TempDir(), "test.srt")
	require.NoError(t, os.WriteFile(srtFile, []byte(testSRT), 0o644))

	out, err := runCommand(t, "", "decode", "--format", "json", srtFile)
	require.NoError(t, err)

	var payload struct {
		Files []struct {
			Path      string `json:"path"`
			Subtitles []struct {
				Start     string `json:"start"`
				Alignment string `json:"alignment"`
				Text      string `json:"text"`
				Segments  []struct {
					Text string `json:"text"`
					Bold bool   `json:"bold"`
				} `json:"segments"`
			} `json:"subtitles"`
		} `json:"files"`
		Summary struct {
			PacketsDecoded int `json:"packetsDecoded"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	require.Len(t, payload.Files, 1)
	require.Len(t, payload.Files[0].Subtitles, 2)

	first := payload.Files[0].Subtitles[0]
	assert.Equal(t, "00:00:10.000", first.Start)
	assert.Equal(t, "Hello world", first.Text)
	require.NotEmpty(t, first.Segments)
	assert.True(t, first.Segments[0].Bold)
	assert.Equal(t, "Hello", first.Segments[0].Text)

	assert.Equal(t, "top-center", payload.Files[0].Subtitles[1].Alignment)
	assert.Equal(t, 2, payload.Summary.PacketsDecoded)
}

func TestIntegration_DecodeFormattedOff(t *testing.T) {
	isolateConfig(t)

	out, err := runCommand(t, "<b>literal</b>", "decode", "--color", "never", "--formatted=false")
	require.NoError(t, err)

	assert.Contains(t, out, "<b>literal</b>")
}

func TestIntegration_DecodeJustifyFlag(t *testing.T) {
	isolateConfig(t)

	out, err := runCommand(t, "hi", "decode", "--color", "never", "--justify", "left")
	require.NoError(t, err)

	assert.Contains(t, out, "bottom-left")
}

func TestIntegration_DecodeDirectory(t *testing.T) {
	isolateConfig(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.srt"), []byte(testSRT), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.srt"), []byte(testSRT), 0o644))

	out, err := runCommand(t, "", "decode", "--color", "never", dir)
	require.NoError(t, err)

	// Multiple inputs get path headers.
	assert.Contains(t, out, "a.srt")
	assert.Contains(t, out, "b.srt")
	assert.Contains(t, out, "4 packets decoded")
}

func TestIntegration_DecodeOutputFlag(t *testing.T) {
	isolateConfig(t)

	reportPath := filepath.Join(t.TempDir(), "report.txt")
	out, err := runCommand(t, "hi there", "decode", "--color", "never", "--output", reportPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "hi there")
}

func TestIntegration_DecodeMissingFile(t *testing.T) {
	isolateConfig(t)

	out, err := runCommand(t, "", "decode", "--color", "never", "does-not-exist.srt")
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrDecodeFailed)
	assert.Contains(t, out, "does-not-exist.srt")
}

func TestIntegration_DecodeInvalidEncoding(t *testing.T) {
	isolateConfig(t)

	_, err := runCommand(t, "hi", "decode", "--encoding", "no-such-charset")
	require.Error(t, err)
}

func TestIntegration_ConfigFileJustify(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(workDir, ".subtext.yml"),
		[]byte("justify: right\n"), 0o644))
	t.Chdir(workDir)

	out, err := runCommand(t, "hi", "decode", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "bottom-right")
}

func TestIntegration_VersionCommand(t *testing.T) {
	// version logs to os.Stdout directly; just check it runs.
	_, err := runCommand(t, "", "version")
	require.NoError(t, err)
}
