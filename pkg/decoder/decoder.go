// Package decoder turns timed subtitle packets into displayable
// subpictures: it transcodes the payload to UTF-8, runs the markup
// parser and attaches timing and screen placement.
package decoder

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/subtext/internal/logging"
	"github.com/yaklabco/subtext/pkg/markup"
	"github.com/yaklabco/subtext/pkg/subtitle"
	"github.com/yaklabco/subtext/pkg/textenc"
)

// Options configures a Decoder.
type Options struct {
	// Encoding names the source charset. Empty selects UTF-8
	// passthrough. See textenc.Table for the supported names.
	Encoding string

	// AutodetectUTF8 lets valid UTF-8 payloads bypass the configured
	// charset until the first invalid sequence is seen.
	AutodetectUTF8 bool

	// Justify is the default horizontal anchor: subtitle.AlignCenter,
	// AlignLeft or AlignRight.
	Justify subtitle.Alignment

	// Formatted enables markup parsing. When off, payloads become a
	// single unstyled segment with the markup left in the text.
	Formatted bool
}

// Block is one complete subtitle unit handed to the decoder.
type Block struct {
	Data     []byte
	PTS      time.Duration
	Duration time.Duration

	// Corrupted and Discontinuity mark packets the demuxer could not
	// deliver intact; the decoder drops them.
	Corrupted     bool
	Discontinuity bool
}

// Subpicture is one decoded, displayable subtitle.
type Subpicture struct {
	Start time.Duration
	Stop  time.Duration

	// Ephemer marks a subpicture with no duration of its own: it stays
	// up until the next one replaces it.
	Ephemer bool

	Alignment subtitle.Alignment
	Segments  subtitle.Chain
}

// Decoder decodes a stream of subtitle blocks. Not safe for
// concurrent use; the charset autodetection latch is per-stream state.
type Decoder struct {
	opts   Options
	conv   *textenc.Decoder
	logger *log.Logger

	decoded int
	dropped int
}

// New validates opts and opens the charset converter. A nil logger
// falls back to the package default.
func New(opts Options, logger *log.Logger) (*Decoder, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch opts.Justify {
	case subtitle.AlignCenter, subtitle.AlignLeft, subtitle.AlignRight:
	default:
		return nil, fmt.Errorf("invalid justification %v: want center, left or right", opts.Justify)
	}

	conv, err := textenc.NewDecoder(opts.Encoding, opts.AutodetectUTF8)
	if err != nil {
		return nil, err
	}
	logger.Debug("using character encoding", logging.FieldEncoding, conv.Name())
	if conv.AutodetectUTF8() {
		logger.Debug("using automatic UTF-8 detection")
	}

	return &Decoder{opts: opts, conv: conv, logger: logger}, nil
}

// Close releases the decoder. It exists for lifecycle symmetry; the
// decoder holds no OS resources.
func (d *Decoder) Close() error {
	return nil
}

// Stats returns how many blocks produced a subpicture and how many
// were dropped.
func (d *Decoder) Stats() (decoded, dropped int) {
	return d.decoded, d.dropped
}

// Decode decodes one block. It returns (nil, nil) for blocks that
// produce no subpicture: corrupted or discontinuous packets, packets
// without a timestamp and empty payloads. A charset conversion
// failure drops the packet with an error.
func (d *Decoder) Decode(b Block) (*Subpicture, error) {
	if b.Corrupted || b.Discontinuity {
		d.dropped++
		return nil, nil
	}

	// A subpicture with no date cannot be scheduled.
	if b.PTS <= 0 {
		d.logger.Warn("subtitle without a date")
		d.dropped++
		return nil, nil
	}
	if len(b.Data) == 0 {
		d.logger.Warn("no subtitle data")
		d.dropped++
		return nil, nil
	}

	text, err := d.convert(b.Data)
	if err != nil {
		d.dropped++
		return nil, err
	}

	align := subtitle.AlignBottom | d.opts.Justify
	var segments subtitle.Chain
	if d.opts.Formatted {
		segments = markup.Parse(string(text), &align)
	} else {
		seg := subtitle.NewSegment(nil)
		seg.Text = append(seg.Text, text...)
		segments = subtitle.Chain{seg}
	}

	d.decoded++
	return &Subpicture{
		Start:     b.PTS,
		Stop:      b.PTS + b.Duration,
		Ephemer:   b.Duration == 0,
		Alignment: align,
		Segments:  segments,
	}, nil
}

// convert transcodes one payload to UTF-8, logging the autodetection
// latch transition and repairing what can be repaired. Payload bytes
// past an embedded NUL are padding from the packetizer, not text.
func (d *Decoder) convert(data []byte) ([]byte, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}

	armed := d.conv.AutodetectUTF8()
	text, err := d.conv.Convert(data)
	if errors.Is(err, textenc.ErrInvalidUTF8) {
		// The repaired text is still worth showing.
		d.logger.Error("failed to convert subtitle encoding, " +
			"try setting a character encoding before opening the stream")
		return text, nil
	}
	if err != nil {
		d.logger.Error("failed to convert subtitle encoding",
			logging.FieldEncoding, d.conv.Name(), logging.FieldError, err)
		return nil, err
	}
	if armed && !d.conv.AutodetectUTF8() {
		d.logger.Debug("invalid UTF-8 sequence: disabling UTF-8 subtitles autodetection")
	}
	return text, nil
}
