package pretty

import (
	"fmt"
	"strings"
)

// Listing table constants.
const (
	tablePadding     = 2
	minNameWidth     = 12
	minDetailWidth   = 20
	defaultTermWidth = 100
)

// ListRow is one entry of a name/detail listing, such as an encoding
// with its description or a color with its hex value.
type ListRow struct {
	Name   string
	Detail string
}

// ListFormatter formats name/detail listings constrained to the
// terminal width.
type ListFormatter struct {
	styles    *Styles
	termWidth int
}

// NewListFormatter creates a new listing formatter.
func NewListFormatter(styles *Styles, termWidth int) *ListFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &ListFormatter{styles: styles, termWidth: termWidth}
}

// FormatListing renders the rows as two aligned columns.
func (f *ListFormatter) FormatListing(rows []ListRow) string {
	if len(rows) == 0 {
		return ""
	}

	nameWidth := minNameWidth
	detailWidth := minDetailWidth
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Detail) > detailWidth {
			detailWidth = len(row.Detail)
		}
	}

	// Constrain to terminal width by shrinking the detail column.
	total := nameWidth + detailWidth + tablePadding
	if total > f.termWidth {
		detailWidth = max(minDetailWidth, detailWidth-(total-f.termWidth))
	}

	var builder strings.Builder
	for _, row := range rows {
		name := f.styles.ListName.Render(fmt.Sprintf("%-*s", nameWidth, row.Name))
		detail := f.styles.ListValue.Render(truncateString(row.Detail, detailWidth))
		builder.WriteString(fmt.Sprintf("  %s  %s\n", name, detail))
	}
	return builder.String()
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
