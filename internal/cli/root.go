// Package cli provides the Cobra command structure for subtext.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/subtext/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root subtext command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "subtext",
		Short: "A permissive decoder for in-band subtitle markup",
		Long: `subtext decodes raw, possibly malformed, in-band subtitle payloads
into styled text segments plus a screen-alignment directive.

It understands the markup soup found in real subtitle streams: HTML-like
tags (<b>, <i>, <font color=...>), SSA alignment overrides ({\an8}),
legacy {Y:i} flag blocks, and plain text with arbitrary garbage mixed
in. Unknown markup degrades to literal text instead of failing.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newDecodeCommand())
	rootCmd.AddCommand(newColorsCommand())
	rootCmd.AddCommand(newEncodingsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
