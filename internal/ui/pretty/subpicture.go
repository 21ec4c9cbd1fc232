package pretty

import (
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/subtext/pkg/decoder"
)

const (
	wordPacket  = "packet"
	wordPackets = "packets"
)

// FormatTimestamp renders a presentation time as HH:MM:SS.mmm.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	ms := (d - s*time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatSubpictureHeader renders the timing line shown above each
// subtitle. Example: "00:00:10.000 --> 00:00:12.500  bottom-center".
func (s *Styles) FormatSubpictureHeader(sp *decoder.Subpicture) string {
	var b strings.Builder
	b.WriteString(s.Timestamp.Render(FormatTimestamp(sp.Start)))
	b.WriteString(s.Dim.Render(" --> "))
	if sp.Ephemer {
		b.WriteString(s.Ephemer.Render("ephemer"))
	} else {
		b.WriteString(s.Timestamp.Render(FormatTimestamp(sp.Stop)))
	}
	b.WriteString("  ")
	b.WriteString(s.Alignment.Render(sp.Alignment.String()))
	return b.String()
}

// FormatSummaryOneLine formats decode statistics as a single line.
// Example: "42 packets decoded, 3 dropped".
func (s *Styles) FormatSummaryOneLine(decoded, dropped int) string {
	word := wordPackets
	if decoded == 1 {
		word = wordPacket
	}
	msg := s.Success.Render(fmt.Sprintf("%d %s decoded", decoded, word))
	if dropped > 0 {
		msg += ", " + s.Warning.Render(fmt.Sprintf("%d dropped", dropped))
	}
	return msg + "\n"
}
