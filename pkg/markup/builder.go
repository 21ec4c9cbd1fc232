package markup

import (
	"github.com/yaklabco/subtext/pkg/subtitle"
)

// appendByte grows the active (tail) segment's text by one byte.
func (s *scanner) appendByte(b byte) {
	s.chain.Last().AppendByte(b)
}

// openSegment appends a fresh empty segment carrying style and makes
// it the active segment. Ownership of style transfers to the segment.
func (s *scanner) openSegment(style *subtitle.Style) *subtitle.Segment {
	seg := subtitle.NewSegment(style)
	s.chain = append(s.chain, seg)
	return seg
}

// pushSegment opens a new segment for an opening tag: the style stack
// gains one cumulative frame and the segment takes ownership of it.
// The returned style may be mutated until text is appended.
func (s *scanner) pushSegment() *subtitle.Style {
	style := s.stack.push()
	s.openSegment(style)
	return style
}

// popSegment opens a new segment for a closing tag, restoring the
// ancestor's styling. A fresh segment is opened even when the restored
// style equals the one in effect before the tag ever opened; a few
// empty segments are cheaper than tracking style equality.
func (s *scanner) popSegment() {
	s.openSegment(s.stack.pop())
}
