package markup

import (
	"github.com/yaklabco/subtext/pkg/subtitle"
)

// styleStack tracks the styles of currently-open markup tags.
//
// Each push clones the cumulative style at the top and layers one more
// tag's attributes onto the clone, so the top always reflects every
// open tag at once. The stack holds references only: ownership of each
// pushed style belongs to the segment created alongside it, which is
// why pop discards the frame but never touches the style it pointed at.
type styleStack struct {
	frames []*subtitle.Style
}

// push duplicates the current top style (or synthesizes a default when
// the stack is empty), pushes it, and returns it for the caller to
// mutate in place before any text is appended under it.
func (st *styleStack) push() *subtitle.Style {
	var dup *subtitle.Style
	if n := len(st.frames); n > 0 {
		dup = st.frames[n-1].Clone()
	} else {
		dup = subtitle.NewStyle()
	}
	st.frames = append(st.frames, dup)
	return dup
}

// pop discards the top frame and returns an independent snapshot of the
// style that is now in effect, for the segment that follows the closing
// tag. The snapshot is a fresh clone: the ancestor's segment must never
// share a mutable style object with a newer segment.
//
// Popping an empty stack happens on stray closing tags ("</b>" with no
// prior "<b>"); it is an explicit no-op that yields a default style.
func (st *styleStack) pop() *subtitle.Style {
	if n := len(st.frames); n > 0 {
		st.frames[n-1] = nil
		st.frames = st.frames[:n-1]
	}
	if n := len(st.frames); n > 0 {
		return st.frames[n-1].Clone()
	}
	return subtitle.NewStyle()
}

// depth returns the number of currently-open recognized tags.
func (st *styleStack) depth() int {
	return len(st.frames)
}
