package subtitle

import "testing"

func TestStyleFlags_Has(t *testing.T) {
	s := FlagBold | FlagItalic
	if !s.Has(FlagBold) {
		t.Error("expected bold to be set")
	}
	if !s.Has(FlagBold | FlagItalic) {
		t.Error("expected bold|italic to be set")
	}
	if s.Has(FlagUnderline) {
		t.Error("underline should not be set")
	}
}

func TestStyleFlags_String(t *testing.T) {
	tests := []struct {
		flags StyleFlags
		want  string
	}{
		{0, "none"},
		{FlagBold, "bold"},
		{FlagItalic, "italic"},
		{FlagBold | FlagUnderline, "bold|underline"},
		{FlagBold | FlagItalic | FlagUnderline | FlagStrikeout, "bold|italic|underline|strikeout"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("StyleFlags(%b).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestRGB_String(t *testing.T) {
	tests := []struct {
		color RGB
		want  string
	}{
		{0x000000, "#000000"},
		{0xFF0000, "#FF0000"},
		{0x00FFFF, "#00FFFF"},
		{0x1E90FF, "#1E90FF"},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("RGB(%06X).String() = %q, want %q", uint32(tt.color), got, tt.want)
		}
	}
}

func TestStyle_CloneIsIndependent(t *testing.T) {
	orig := NewStyle()
	orig.Flags = FlagBold
	orig.FontName = "Sans"
	orig.SetFontColor(0xFF0000)

	dup := orig.Clone()
	dup.Flags |= FlagItalic
	dup.SetFontSize(42)

	if orig.Flags != FlagBold {
		t.Errorf("clone mutation leaked into original flags: %v", orig.Flags)
	}
	if orig.HasFeature(FeatFontSize) {
		t.Error("clone mutation leaked into original feature mask")
	}
	if !dup.HasFeature(FeatFontColor | FeatFontSize) {
		t.Error("clone should carry inherited and new features")
	}
	if dup.FontName != "Sans" {
		t.Errorf("clone lost font name: %q", dup.FontName)
	}
}

func TestStyle_CloneNil(t *testing.T) {
	var s *Style
	dup := s.Clone()
	if dup == nil {
		t.Fatal("Clone of nil must synthesize a default style")
	}
	if !dup.IsZero() {
		t.Error("Clone of nil must be the zero style")
	}
}

func TestStyle_SettersTrackFeatures(t *testing.T) {
	s := NewStyle()
	if s.HasFeature(FeatFontColor) {
		t.Fatal("fresh style must have no features set")
	}

	s.SetFontColor(0) // explicitly black
	if !s.HasFeature(FeatFontColor) {
		t.Error("explicitly set black must be distinguishable from unset")
	}

	s.SetOutlineWidth(0)
	if !s.HasFeature(FeatOutlineWidth) {
		t.Error("explicit zero width must register as set")
	}
}
