// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Subtitle components
	FilePath  lipgloss.Style
	Timestamp lipgloss.Style
	Alignment lipgloss.Style
	Ephemer   lipgloss.Style

	// Listing components
	ListName  lipgloss.Style
	ListValue lipgloss.Style
	Swatch    lipgloss.Style

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	colorEnabled bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// ColorEnabled reports whether styled segment rendering is active.
func (s *Styles) ColorEnabled() bool {
	return s.colorEnabled
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath:  lipgloss.NewStyle().Bold(true),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Alignment: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Ephemer:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		ListName:  lipgloss.NewStyle().Bold(true),
		ListValue: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Swatch:    lipgloss.NewStyle(),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		colorEnabled: true,
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:  plain,
		Timestamp: plain,
		Alignment: plain,
		Ephemer:   plain,
		ListName:  plain,
		ListValue: plain,
		Swatch:    plain,
		Error:     plain,
		Warning:   plain,
		Success:   plain,
		Dim:       plain,
		Bold:      plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
