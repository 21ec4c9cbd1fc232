// Package subtitle defines the data model for decoded subtitle text:
// styled text segments, style attribute bags, and screen alignment.
package subtitle

// StyleFlags is a bit set of text decoration flags.
// Flags are additive: nested markup only ever adds flags, it never
// clears one that an enclosing tag already set.
type StyleFlags uint8

const (
	FlagBold StyleFlags = 1 << iota
	FlagItalic
	FlagUnderline
	FlagStrikeout
)

// Has returns true if all flags in f are set.
func (s StyleFlags) Has(f StyleFlags) bool {
	return s&f == f
}

// String returns a compact human-readable flag list such as "bold|italic".
func (s StyleFlags) String() string {
	if s == 0 {
		return "none"
	}
	names := []struct {
		flag StyleFlags
		name string
	}{
		{FlagBold, "bold"},
		{FlagItalic, "italic"},
		{FlagUnderline, "underline"},
		{FlagStrikeout, "strikeout"},
	}
	out := ""
	for _, n := range names {
		if s&n.flag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}

// RGB is a 24-bit color value, 0xRRGGBB.
type RGB uint32

// String returns the CSS-style hex form, e.g. "#FF0000".
func (c RGB) String() string {
	const hex = "0123456789ABCDEF"
	b := [7]byte{'#'}
	for i := range 6 {
		b[6-i] = hex[c&0xF]
		c >>= 4
	}
	return string(b[:])
}

// Feature identifies which optional Style fields have been explicitly
// set. Zero values alone cannot encode "unset" because black (0) is a
// legitimate color and 0 a legitimate width.
type Feature uint16

const (
	FeatFontSize Feature = 1 << iota
	FeatFontColor
	FeatOutlineColor
	FeatShadowColor
	FeatBackColor
	FeatOutlineWidth
	FeatShadowWidth
	FeatAlpha
)

// Style is a bag of optional presentation attributes attached to a
// segment. Once a Style is attached to a Segment it must not be
// mutated; nesting is expressed by cloning and layering instead.
type Style struct {
	// Flags holds the text decoration bits.
	Flags StyleFlags

	// FontName is the proportional font family. Empty means unset.
	FontName string

	// MonoFontName is the monospace font family. Empty means unset.
	MonoFontName string

	// FontSize is the font size in the renderer's units.
	FontSize int

	// Colors, 24-bit RGB. Check Has before trusting a zero value.
	FontColor    RGB
	OutlineColor RGB
	ShadowColor  RGB
	BackColor    RGB

	// Outline and shadow widths.
	OutlineWidth int
	ShadowWidth  int

	// Alpha is the font alpha channel value.
	Alpha int

	// Has records which optional fields were explicitly set.
	Has Feature
}

// NewStyle returns an empty default style: no flags, nothing set.
func NewStyle() *Style {
	return &Style{}
}

// Clone returns an independent deep copy of the style. The copy
// reflects the full cumulative effect of every attribute layered so
// far, so later mutations of either copy never alias the other.
func (s *Style) Clone() *Style {
	if s == nil {
		return NewStyle()
	}
	dup := *s
	return &dup
}

// HasFeature returns true if all features in f were explicitly set.
func (s *Style) HasFeature(f Feature) bool {
	return s != nil && s.Has&f == f
}

// IsZero returns true if the style carries no information at all.
func (s *Style) IsZero() bool {
	return s == nil || (s.Flags == 0 && s.FontName == "" && s.MonoFontName == "" && s.Has == 0)
}

// Setters below keep the Has feature mask consistent with the fields.

func (s *Style) SetFontSize(size int)     { s.FontSize = size; s.Has |= FeatFontSize }
func (s *Style) SetFontColor(c RGB)       { s.FontColor = c; s.Has |= FeatFontColor }
func (s *Style) SetOutlineColor(c RGB)    { s.OutlineColor = c; s.Has |= FeatOutlineColor }
func (s *Style) SetShadowColor(c RGB)     { s.ShadowColor = c; s.Has |= FeatShadowColor }
func (s *Style) SetBackColor(c RGB)       { s.BackColor = c; s.Has |= FeatBackColor }
func (s *Style) SetOutlineWidth(w int)    { s.OutlineWidth = w; s.Has |= FeatOutlineWidth }
func (s *Style) SetShadowWidth(w int)     { s.ShadowWidth = w; s.Has |= FeatShadowWidth }
func (s *Style) SetAlpha(a int)           { s.Alpha = a; s.Has |= FeatAlpha }
