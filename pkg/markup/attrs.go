package markup

// consumeAttribute consumes one name=value attribute starting at
// s.pos and returns the pair. ok is false when no further attribute
// can be produced, which covers both the orderly end of the attribute
// list (next non-space character is not alphabetic, e.g. the '>'
// terminator) and a value that cannot be terminated before the input
// ends. The latter discards the whole attribute: fail-closed.
//
// Values may be single- or double-quoted, running to the matching
// delimiter. Unquoted values run until the next alphabetic character.
// That terminator is deliberately loose: subtitle markup is frequently
// hand-authored and strict quoting would reject too much of it.
func (s *scanner) consumeAttribute() (name, value string, ok bool) {
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		s.pos++
	}

	// Names start with a letter and may continue with hyphens, as in
	// outline-color or shadow-level.
	nameStart := s.pos
	if s.pos >= len(s.src) || !isAlpha(s.src[s.pos]) {
		return "", "", false
	}
	for s.pos < len(s.src) && (isAlpha(s.src[s.pos]) || s.src[s.pos] == '-') {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return "", "", false
	}
	name = s.src[nameStart:s.pos]

	// Skip over to the attribute value.
	for s.pos < len(s.src) && s.src[s.pos] != '=' {
		s.pos++
	}
	if s.pos < len(s.src) {
		s.pos++ // consume '='
	}
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}

	var delimiter byte
	if s.pos < len(s.src) && (s.src[s.pos] == '\'' || s.src[s.pos] == '"') {
		delimiter = s.src[s.pos]
		s.pos++
	}

	valueStart := s.pos
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if delimiter != 0 && ch == delimiter {
			break
		}
		if delimiter == 0 && isAlpha(ch) {
			break
		}
		s.pos++
	}
	if s.pos >= len(s.src) {
		// Value never terminated; drop the attribute entirely.
		return "", "", false
	}
	value = s.src[valueStart:s.pos]
	if delimiter != 0 {
		s.pos++ // consume closing delimiter
	}
	return name, value, true
}

// isAlpha returns true for ASCII letters.
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isSpace returns true for ASCII whitespace.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
