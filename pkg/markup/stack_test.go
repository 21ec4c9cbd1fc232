package markup

import (
	"testing"

	"github.com/yaklabco/subtext/pkg/subtitle"
)

func TestStyleStack_PushLayers(t *testing.T) {
	var st styleStack

	bold := st.push()
	bold.Flags |= subtitle.FlagBold

	both := st.push()
	if !both.Flags.Has(subtitle.FlagBold) {
		t.Error("push must clone the cumulative top style")
	}
	both.Flags |= subtitle.FlagItalic

	if bold.Flags != subtitle.FlagBold {
		t.Error("mutating the clone leaked into the parent frame")
	}
	if st.depth() != 2 {
		t.Errorf("depth = %d, want 2", st.depth())
	}
}

func TestStyleStack_PopRestores(t *testing.T) {
	var st styleStack

	st.push().Flags |= subtitle.FlagBold
	st.push().Flags |= subtitle.FlagItalic

	restored := st.pop()
	if restored.Flags != subtitle.FlagBold {
		t.Errorf("restored flags = %v, want bold", restored.Flags)
	}

	// The snapshot must be independent of the remaining frame.
	restored.Flags |= subtitle.FlagUnderline
	if next := st.pop(); next.Flags != 0 {
		// pop of the last frame yields a default style
		t.Errorf("final pop flags = %v, want none", next.Flags)
	}
}

func TestStyleStack_PopEmpty(t *testing.T) {
	var st styleStack

	got := st.pop()
	if got == nil {
		t.Fatal("pop of empty stack must synthesize a style")
	}
	if !got.IsZero() {
		t.Errorf("synthesized style not default: %+v", got)
	}
	if st.depth() != 0 {
		t.Errorf("depth = %d after empty pop", st.depth())
	}
}

func TestStyleStack_FeaturesCarry(t *testing.T) {
	var st styleStack

	st.push().SetFontColor(0xFF0000)
	inner := st.push()

	if !inner.HasFeature(subtitle.FeatFontColor) || inner.FontColor != 0xFF0000 {
		t.Error("explicit color did not carry into the nested frame")
	}
}
