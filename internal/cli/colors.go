package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/subtext/internal/ui/pretty"
	"github.com/yaklabco/subtext/pkg/colorname"
)

func newColorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List recognized color names",
		Long: `List the HTML color names the markup parser resolves in
<font color=...> attributes, with their RGB values. The table is
ordered; duplicate names resolve to the first entry.`,
		Run: func(cmd *cobra.Command, _ []string) {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			formatter := pretty.NewListFormatter(styles, terminalWidth())

			rows := make([]pretty.ListRow, 0, len(colorname.List()))
			for _, c := range colorname.List() {
				rows = append(rows, pretty.ListRow{Name: c.Name, Detail: c.Value.String()})
			}

			cmd.Print(formatter.FormatListing(rows))
		},
	}

	return cmd
}

// terminalWidth returns the stdout terminal width, or 0 when stdout
// is not a terminal so the formatter falls back to its default.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}
