package subtitle

// Segment is one contiguous run of text sharing a single style.
// Segments are created in markup order and only ever appended to;
// a chain is never reordered or spliced after creation.
type Segment struct {
	// Text is the segment's accumulated text. Never nil once the
	// segment is part of a chain (empty segments hold a zero-length
	// non-nil slice).
	Text []byte

	// Style is the segment's owned style snapshot, or nil for
	// unstyled text. No other segment aliases this object.
	Style *Style
}

// NewSegment returns an empty segment carrying the given style.
// Ownership of style transfers to the segment.
func NewSegment(style *Style) *Segment {
	return &Segment{Text: []byte{}, Style: style}
}

// AppendByte grows the segment's text by exactly one byte.
func (s *Segment) AppendByte(b byte) {
	s.Text = append(s.Text, b)
}

// String returns the segment text.
func (s *Segment) String() string {
	return string(s.Text)
}

// Chain is an ordered, append-only sequence of segments. A parse
// always yields a chain with at least one (possibly empty) segment.
type Chain []*Segment

// Last returns the chain's tail segment, or nil for an empty chain.
func (c Chain) Last() *Segment {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Text returns the concatenation of all segment texts in order.
func (c Chain) Text() string {
	n := 0
	for _, s := range c {
		n += len(s.Text)
	}
	out := make([]byte, 0, n)
	for _, s := range c {
		out = append(out, s.Text...)
	}
	return string(out)
}

// Compact returns a copy of the chain without empty segments. Style
// transitions routinely leave zero-length segments behind (closing a
// tag always opens a fresh segment); renderers that do not care can
// drop them. The original chain is left untouched.
func (c Chain) Compact() Chain {
	out := make(Chain, 0, len(c))
	for _, s := range c {
		if len(s.Text) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// WellFormed reports whether every segment of the chain has non-nil
// text and the chain holds at least one segment.
func (c Chain) WellFormed() bool {
	if len(c) == 0 {
		return false
	}
	for _, s := range c {
		if s == nil || s.Text == nil {
			return false
		}
	}
	return true
}
