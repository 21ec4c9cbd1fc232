package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/subtext/pkg/subtitle"
)

// RenderSegment renders one segment, mapping its style attributes onto
// terminal attributes. With color disabled the text passes through
// unchanged.
func (s *Styles) RenderSegment(seg *subtitle.Segment) string {
	if seg == nil {
		return ""
	}
	text := seg.String()
	if !s.colorEnabled || seg.Style == nil {
		return text
	}
	return segmentStyle(seg.Style).Render(text)
}

// RenderChain renders a whole chain. Empty segments contribute nothing
// and are skipped so style transitions do not emit stray escape codes.
func (s *Styles) RenderChain(chain subtitle.Chain) string {
	var b strings.Builder
	for _, seg := range chain.Compact() {
		b.WriteString(s.RenderSegment(seg))
	}
	return b.String()
}

// segmentStyle builds a lipgloss style from segment attributes. Only
// attributes a terminal can express are mapped; sizes, outlines and
// shadows have no terminal equivalent and are ignored.
func segmentStyle(st *subtitle.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	if st.Flags.Has(subtitle.FlagBold) {
		out = out.Bold(true)
	}
	if st.Flags.Has(subtitle.FlagItalic) {
		out = out.Italic(true)
	}
	if st.Flags.Has(subtitle.FlagUnderline) {
		out = out.Underline(true)
	}
	if st.Flags.Has(subtitle.FlagStrikeout) {
		out = out.Strikethrough(true)
	}
	if st.HasFeature(subtitle.FeatFontColor) {
		out = out.Foreground(lipgloss.Color(st.FontColor.String()))
	}
	if st.HasFeature(subtitle.FeatBackColor) {
		out = out.Background(lipgloss.Color(st.BackColor.String()))
	}
	return out
}
