package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/subtext/internal/ui/pretty"
	"github.com/yaklabco/subtext/pkg/textenc"
)

func newEncodingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encodings",
		Short: "List supported character encodings",
		Long: `List the character encodings the decoder accepts for the
--encoding flag, with human-readable descriptions. Other IANA names
resolvable by the underlying conversion library also work but are
not listed here.`,
		Run: func(cmd *cobra.Command, _ []string) {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			formatter := pretty.NewListFormatter(styles, terminalWidth())

			rows := make([]pretty.ListRow, 0, len(textenc.Table))
			for _, enc := range textenc.Table {
				rows = append(rows, pretty.ListRow{Name: enc.Name, Detail: enc.Description})
			}

			cmd.Print(formatter.FormatListing(rows))
		},
	}

	return cmd
}
