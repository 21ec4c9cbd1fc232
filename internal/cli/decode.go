package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/subtext/internal/configloader"
	"github.com/yaklabco/subtext/internal/logging"
	"github.com/yaklabco/subtext/pkg/config"
	"github.com/yaklabco/subtext/pkg/decoder"
	"github.com/yaklabco/subtext/pkg/fsutil"
	"github.com/yaklabco/subtext/pkg/reporter"
	"github.com/yaklabco/subtext/pkg/runner"
)

// ErrDecodeFailed is returned when one or more inputs could not be decoded.
var ErrDecodeFailed = errors.New("decode failed")

// stdinPath is the pseudo-path naming standard input.
const stdinPath = "-"

type decodeFlags struct {
	encoding   string
	justify    string
	format     string
	formatted  bool
	autodetect bool
	compact    bool
	noSummary  bool
	jobs       int
	output     string
	exclude    []string
}

func newDecodeCommand() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode [files...]",
		Short: "Decode subtitle payloads",
		Long:  decodeLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args, flags)
		},
	}

	addDecodeFlags(cmd, flags)

	return cmd
}

const decodeLongDescription = `Decode subtitle payloads into styled text.

Inputs are SRT files, directories to scan for subtitle files, or raw
payload bytes; with no arguments, reads from standard input. SRT cue
timings become the subtitles' presentation times. Raw payloads get a
synthetic timestamp and stay up until replaced.

Examples:
  subtext decode movie.srt               # Decode a subtitle file
  subtext decode subs/                   # Decode every subtitle file in a tree
  echo '<b>hi</b>' | subtext decode      # Decode a raw payload
  subtext decode --format json movie.srt # JSON output for tooling
  subtext decode --encoding Windows-1251 east.srt`

func runDecode(cmd *cobra.Command, args []string, flags *decodeFlags) error {
	logger := logging.Default()

	cfg := decodeCLIConfig(cmd, flags)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldEncoding, finalCfg.Encoding,
		logging.FieldJustify, finalCfg.Justify,
		logging.FieldFormatted, finalCfg.FormattedEnabled(),
	)

	result, err := decodeInputs(ctx, cmd, args, finalCfg, flags, logger)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	var out io.Writer = cmd.OutOrStdout()
	var fileBuf *bytes.Buffer
	if flags.output != "" {
		fileBuf = &bytes.Buffer{}
		out = fileBuf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      finalCfg.Format,
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if fileBuf != nil {
		if err := fsutil.WriteAtomic(ctx, flags.output, fileBuf.Bytes(), 0); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug("wrote report", logging.FieldOutput, flags.output)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrDecodeFailed
	}

	return nil
}

// decodeCLIConfig builds the CLI config overlay. Only flags the user
// actually set override the file and environment layers.
func decodeCLIConfig(cmd *cobra.Command, flags *decodeFlags) *config.Config {
	cfg := &config.Config{}

	cfg.Encoding = flags.encoding
	if cmd.Flags().Changed("justify") {
		cfg.Justify = config.Justification(flags.justify)
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("formatted") {
		v := flags.formatted
		cfg.Formatted = &v
	}
	if cmd.Flags().Changed("autodetect-utf8") {
		v := flags.autodetect
		cfg.AutodetectUTF8 = &v
	}

	return cfg
}

// decodeInputs decodes the named files and directories through the
// runner, plus standard input when requested. Each input gets its own
// decoder instance: the charset autodetection latch is per-stream.
func decodeInputs(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	cfg *config.Config,
	flags *decodeFlags,
	logger *log.Logger,
) (*runner.Result, error) {
	decOpts := decoder.Options{
		Encoding:       cfg.Encoding,
		AutodetectUTF8: cfg.AutodetectEnabled(),
		Justify:        cfg.Justify.Alignment(),
		Formatted:      cfg.FormattedEnabled(),
	}

	readStdin := len(args) == 0
	var paths []string
	for _, arg := range args {
		if arg == stdinPath {
			readStdin = true
			continue
		}
		paths = append(paths, arg)
	}

	result := &runner.Result{}
	if len(paths) > 0 {
		res, err := runner.New(logger).Run(ctx, runner.Options{
			Paths:        paths,
			ExcludeGlobs: flags.exclude,
			Jobs:         flags.jobs,
			Decoder:      decOpts,
		})
		if err != nil {
			return nil, err
		}
		result = res
	}

	if readStdin {
		outcome, decoded, dropped := decodeStdin(cmd.InOrStdin(), decOpts, logger)
		result.Accumulate(outcome, decoded, dropped)
		result.Stats.FilesDiscovered++
	}

	return result, nil
}

// decodeStdin frames and decodes everything on standard input.
func decodeStdin(stdin io.Reader, decOpts decoder.Options, logger *log.Logger) (runner.FileOutcome, int, int) {
	outcome := runner.FileOutcome{Path: stdinPath}

	data, err := io.ReadAll(stdin)
	if err != nil {
		outcome.Error = fmt.Errorf("read stdin: %w", err)
		return outcome, 0, 0
	}

	d, err := decoder.New(decOpts, logger)
	if err != nil {
		outcome.Error = fmt.Errorf("open decoder: %w", err)
		return outcome, 0, 0
	}
	defer d.Close()

	blocks, err := runner.FrameBlocks(data)
	if err != nil {
		outcome.Error = err
		return outcome, 0, 0
	}

	for _, block := range blocks {
		sp, err := d.Decode(block)
		if err != nil {
			outcome.Error = fmt.Errorf("decode: %w", err)
			break
		}
		if sp != nil {
			outcome.Subpictures = append(outcome.Subpictures, sp)
		}
	}

	decoded, dropped := d.Stats()
	return outcome, decoded, dropped
}

func addDecodeFlags(cmd *cobra.Command, flags *decodeFlags) {
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "source charset (see 'subtext encodings')")
	cmd.Flags().StringVar(&flags.justify, "justify", "center", "default justification: center, left, right")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, pretty")
	cmd.Flags().BoolVar(&flags.formatted, "formatted", true, "parse inline markup (false keeps tags as text)")
	cmd.Flags().BoolVar(&flags.autodetect, "autodetect-utf8", true, "pass valid UTF-8 through untranscoded")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where applicable")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the decode statistics line")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of concurrent workers (0 = auto)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip when scanning directories")
}
