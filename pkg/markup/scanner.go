// Package markup parses in-band subtitle presentation markup into an
// ordered chain of styled text segments.
//
// The parser performs a single left-to-right scan recognizing four
// dialects in priority order: HTML-like inline tags (<b>, <i>, <u>,
// <s>, <font ...>, their closers, <br/>), SSA-style override blocks
// ({\anN} alignment only), legacy {Y:x}/{y:x} directives, and generic
// {x:y} directives. Everything it does not recognize degrades to
// literal text; malformed input never fails the parse. Subtitle
// sources are frequently hand-authored, so visible-but-wrong output
// beats refusing to render.
package markup

import (
	"strings"

	"github.com/yaklabco/subtext/pkg/colorname"
	"github.com/yaklabco/subtext/pkg/subtitle"
)

// scanner is a single forward cursor over the input. There is no
// backtracking except re-reading within a matched bracket span.
type scanner struct {
	src     string
	pos     int
	chain   subtitle.Chain
	stack   styleStack
	align   *subtitle.Alignment
	aligned bool
}

// Parse scans src and returns the segment chain. align carries the
// caller's default alignment in and may be overwritten at most once,
// by the first {\anN} directive found anywhere in the input; align
// may be nil when the caller does not care.
//
// The returned chain always holds at least one segment, possibly
// empty, and is a pure function of (src, *align): identical inputs
// produce deep-equal chains.
func Parse(src string, align *subtitle.Alignment) subtitle.Chain {
	s := &scanner{src: src, align: align}
	// The chain starts with an eager empty segment so the scanner
	// always has an active segment to append to.
	s.chain = subtitle.Chain{subtitle.NewSegment(nil)}
	s.scan()
	return s.chain
}

// scan is the main dispatch loop.
func (s *scanner) scan() {
	for s.pos < len(s.src) {
		switch ch := s.src[s.pos]; ch {
		case '\n':
			s.appendByte('\n')
			s.pos++
		case '<':
			s.scanTag()
		case '{':
			if s.tryBraceBlock() {
				continue
			}
			s.appendByte(ch)
			s.pos++
		default:
			s.appendByte(ch)
			s.pos++
		}
	}
}

// scanTag handles everything starting with '<', in strict priority
// order. Unrecognized open tags emit a literal '<' and advance one
// byte; the rest of the "tag" falls through to literal-text handling
// on subsequent iterations, so unknown markup reappears verbatim.
func (s *scanner) scanTag() {
	rest := s.src[s.pos:]
	switch {
	case hasFoldPrefix(rest, "<br/>"):
		s.appendByte('\n')
		s.pos += len("<br/>")
	case hasFoldPrefix(rest, "<b>"):
		s.pushSegment().Flags |= subtitle.FlagBold
		s.pos += len("<b>")
	case hasFoldPrefix(rest, "<i>"):
		s.pushSegment().Flags |= subtitle.FlagItalic
		s.pos += len("<i>")
	case hasFoldPrefix(rest, "<u>"):
		s.pushSegment().Flags |= subtitle.FlagUnderline
		s.pos += len("<u>")
	case hasFoldPrefix(rest, "<s>"):
		s.pushSegment().Flags |= subtitle.FlagStrikeout
		s.pos += len("<s>")
	case hasFoldPrefix(rest, "<font "):
		s.scanFontTag()
	case strings.HasPrefix(rest, "</"):
		s.scanClosingTag()
	default:
		s.appendByte('<')
		s.pos++
	}
}

// scanFontTag consumes a <font ...> tag: pushes a style, then maps
// each attribute onto it. Unrecognized attributes are still parsed so
// the cursor advances correctly, then discarded.
func (s *scanner) scanFontTag() {
	style := s.pushSegment()
	s.pos += len("<font ")

	for {
		name, value, ok := s.consumeAttribute()
		if !ok {
			break
		}
		switch strings.ToLower(name) {
		case "face":
			style.FontName = value
		case "family":
			style.MonoFontName = value
		case "size":
			style.SetFontSize(atoi(value))
		case "color":
			style.SetFontColor(colorname.Resolve(value))
		case "outline-color":
			style.SetOutlineColor(colorname.Resolve(value))
		case "shadow-color":
			style.SetShadowColor(colorname.Resolve(value))
		case "outline-level":
			style.SetOutlineWidth(atoi(value))
		case "shadow-level":
			style.SetShadowWidth(atoi(value))
		case "back-color":
			style.SetBackColor(colorname.Resolve(value))
		case "alpha":
			style.SetAlpha(atoi(value))
		}
	}

	// Skip potential spaces and the '>' terminator. A missing
	// terminator stops at end of input rather than running off it.
	for s.pos < len(s.src) && s.src[s.pos] != '>' {
		s.pos++
	}
	if s.pos < len(s.src) {
		s.pos++
	}
}

// scanClosingTag handles "</...>". Closers for the recognized tag
// names pop the style stack; anything else is re-emitted as a literal
// '<' with scanning resuming one byte after it, so the unknown tag
// shows up as ordinary text.
func (s *scanner) scanClosingTag() {
	tagStart := s.pos
	s.pos += len("</")
	nameStart := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '>' {
		s.pos++
	}
	name := s.src[nameStart:s.pos]

	switch {
	case strings.EqualFold(name, "b"),
		strings.EqualFold(name, "i"),
		strings.EqualFold(name, "u"),
		strings.EqualFold(name, "s"),
		strings.EqualFold(name, "font"):
		if s.pos < len(s.src) {
			s.pos++ // consume '>'
		}
		s.popSegment()
	default:
		s.appendByte('<')
		s.pos = tagStart + 1
	}
}

// tryBraceBlock dispatches the three brace dialects. It returns false
// when the text starting at '{' is not a well-formed block (no
// closing brace, or no dialect matches); the caller then treats the
// brace as a literal character.
func (s *scanner) tryBraceBlock() bool {
	rest := s.src[s.pos:]
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return false
	}

	switch {
	case len(rest) > 1 && rest[1] == '\\':
		s.scanOverrideBlock(rest, end)
	case len(rest) > 2 && (rest[1] == 'Y' || rest[1] == 'y') && rest[2] == ':':
		s.scanLegacyBlock()
	case len(rest) > 2 && rest[2] == ':':
		// Hide other {x:y} directives, like {c:$bbggrr} or {P:x}.
		s.pos += end + 1
	default:
		return false
	}
	return true
}

// scanOverrideBlock handles an SSA "{\...}" override block. Only the
// first alignment directive of the exact form {\anN}, N in 1-9, has
// any effect; every other override code in the block is hidden, not
// interpreted. end is the index of '}' relative to s.pos.
func (s *scanner) scanOverrideBlock(rest string, end int) {
	if !s.aligned && s.align != nil &&
		strings.HasPrefix(rest, `{\an`) && len(rest) > 5 &&
		rest[4] >= '1' && rest[4] <= '9' && rest[5] == '}' {
		if a, ok := subtitle.DecodeAn(int(rest[4] - '0')); ok {
			*s.align = a
			s.aligned = true
		}
	}
	s.pos += end + 1
}

// scanLegacyBlock handles the narrow "{Y:x}"/"{y:x}" directive. Each
// flag test inspects the byte three past the cursor and bumps the
// cursor on a match, so only very particular flag sequences combine.
// This mirrors the legacy behavior exactly; the dialect has never
// supported combined flags robustly.
func (s *scanner) scanLegacyBlock() {
	if s.pos+3 < len(s.src) && s.src[s.pos+3] == 'i' {
		s.pushSegment().Flags |= subtitle.FlagItalic
		s.pos++
	}
	if s.pos+3 < len(s.src) && s.src[s.pos+3] == 'b' {
		s.pushSegment().Flags |= subtitle.FlagBold
		s.pos++
	}
	if s.pos+3 < len(s.src) && s.src[s.pos+3] == 'u' {
		s.pushSegment().Flags |= subtitle.FlagUnderline
		s.pos++
	}
	if end := strings.IndexByte(s.src[s.pos:], '}'); end >= 0 {
		s.pos += end + 1
	} else {
		s.pos = len(s.src)
	}
}

// hasFoldPrefix reports whether s begins with prefix, ASCII
// case-insensitively.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// atoi parses a leading optional-signed decimal prefix of s, ignoring
// leading spaces and any trailing junk. Attribute values routinely
// carry trailing characters ("12 " or even "12>"), so a strict parse
// would reject well-meant markup.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}
