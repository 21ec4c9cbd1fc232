// Package textenc converts subtitle payloads from their source
// character encoding to UTF-8.
//
// Subtitle files rarely declare their encoding, so the package layers
// two mechanisms: a named legacy charset selected up front, and
// per-packet UTF-8 autodetection that passes already-valid input
// through untouched. Autodetection latches off for the rest of the
// stream the first time an invalid sequence shows up, because a file
// that was not UTF-8 once will not become UTF-8 later.
package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 reports input that claimed to be UTF-8 but was not.
// Conversions that return it also return a repaired payload with the
// offending bytes replaced, so callers can warn and keep going.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

// Decoder converts payloads of one source encoding to UTF-8. A Decoder
// is stateful (the autodetection latch) and not safe for concurrent
// use; each stream gets its own.
type Decoder struct {
	name       string
	enc        encoding.Encoding // nil means UTF-8 passthrough
	autodetect bool
}

// NewDecoder resolves an encoding name to a decoder. The empty string,
// "system" and the UTF-8 spellings select passthrough mode. Other
// names resolve through the WHATWG index first and the IANA index as
// a fallback; names neither index can serve return an error.
func NewDecoder(name string, autodetectUTF8 bool) (*Decoder, error) {
	d := &Decoder{name: name, autodetect: autodetectUTF8}

	switch strings.ToLower(name) {
	case "", "system", "utf-8", "utf8":
		d.name = "UTF-8"
		return d, nil
	case "utf-16":
		// Without a BOM the byte order defaults to big endian.
		d.enc = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
		return d, nil
	case "utf-16be":
		d.enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		return d, nil
	case "utf-16le":
		d.enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		return d, nil
	}

	// Traditional spellings the indexes know under other labels.
	lookup := name
	switch strings.ToLower(name) {
	case "euc-cn":
		lookup = "gbk"
	case "cp949":
		lookup = "euc-kr"
	}

	if enc, err := htmlindex.Get(lookup); err == nil {
		d.enc = enc
		return d, nil
	}
	if enc, err := ianaindex.IANA.Encoding(lookup); err == nil && enc != nil {
		d.enc = enc
		return d, nil
	}
	return nil, fmt.Errorf("cannot convert from %s: unknown encoding", name)
}

// Name returns the resolved encoding name.
func (d *Decoder) Name() string {
	return d.name
}

// Passthrough reports whether the decoder performs no charset
// conversion at all.
func (d *Decoder) Passthrough() bool {
	return d.enc == nil
}

// AutodetectUTF8 reports whether per-packet UTF-8 autodetection is
// still armed.
func (d *Decoder) AutodetectUTF8() bool {
	return d.autodetect
}

// Convert transcodes one payload to UTF-8.
//
// In passthrough mode invalid input is repaired in place ('?' per bad
// byte) and reported via ErrInvalidUTF8 alongside the repaired bytes.
// In conversion mode, valid UTF-8 input short-circuits the charset
// conversion while autodetection is armed; the first invalid packet
// disarms it for good and every packet from then on is transcoded.
func (d *Decoder) Convert(data []byte) ([]byte, error) {
	if d.enc == nil {
		if utf8.Valid(data) {
			return data, nil
		}
		return repairUTF8(data), ErrInvalidUTF8
	}

	if d.autodetect {
		if utf8.Valid(data) {
			return data, nil
		}
		d.autodetect = false
	}

	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("convert from %s: %w", d.name, err)
	}
	return out, nil
}

// repairUTF8 returns a copy of data with every invalid byte replaced
// by '?'. Valid multi-byte sequences pass through unchanged.
func repairUTF8(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			out = append(out, '?')
			i++
			continue
		}
		out = append(out, data[i:i+size]...)
		i += size
	}
	return out
}
