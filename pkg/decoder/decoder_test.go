package decoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/subtext/pkg/subtitle"
)

func newDecoder(t *testing.T, opts Options) *Decoder {
	t.Helper()
	d, err := New(opts, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func block(text string) Block {
	return Block{
		Data:     []byte(text),
		PTS:      10 * time.Second,
		Duration: 2 * time.Second,
	}
}

func TestNew_InvalidEncoding(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Encoding: "no-such-charset"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-charset")
}

func TestNew_InvalidJustification(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Justify: subtitle.AlignTop}, nil)
	require.Error(t, err)
}

func TestDecode_DroppedBlocks(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	tests := []struct {
		name string
		blk  Block
	}{
		{"corrupted", Block{Data: []byte("x"), PTS: time.Second, Corrupted: true}},
		{"discontinuity", Block{Data: []byte("x"), PTS: time.Second, Discontinuity: true}},
		{"missing pts", Block{Data: []byte("x")}},
		{"empty payload", Block{PTS: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spu, err := d.Decode(tt.blk)
			require.NoError(t, err)
			assert.Nil(t, spu)
		})
	}

	decoded, dropped := d.Stats()
	assert.Equal(t, 0, decoded)
	assert.Equal(t, len(tests), dropped)
}

func TestDecode_Plain(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	spu, err := d.Decode(block("hello"))
	require.NoError(t, err)
	require.NotNil(t, spu)

	assert.Equal(t, 10*time.Second, spu.Start)
	assert.Equal(t, 12*time.Second, spu.Stop)
	assert.False(t, spu.Ephemer)
	assert.Equal(t, subtitle.AlignBottom, spu.Alignment)
	assert.Equal(t, "hello", spu.Segments.Text())

	decoded, dropped := d.Stats()
	assert.Equal(t, 1, decoded)
	assert.Equal(t, 0, dropped)
}

func TestDecode_Ephemer(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	spu, err := d.Decode(Block{Data: []byte("x"), PTS: time.Second})
	require.NoError(t, err)
	require.NotNil(t, spu)
	assert.True(t, spu.Ephemer)
	assert.Equal(t, spu.Start, spu.Stop)
}

func TestDecode_Justification(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true, Justify: subtitle.AlignLeft})

	spu, err := d.Decode(block("x"))
	require.NoError(t, err)
	assert.Equal(t, subtitle.AlignBottom|subtitle.AlignLeft, spu.Alignment)
}

func TestDecode_MarkupOverridesAlignment(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	spu, err := d.Decode(block(`{\an9}high and right`))
	require.NoError(t, err)
	assert.Equal(t, subtitle.AlignTop|subtitle.AlignRight, spu.Alignment)
	assert.Equal(t, "high and right", spu.Segments.Text())
}

func TestDecode_FormattedOff(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: false})

	spu, err := d.Decode(block("<b>literal</b>"))
	require.NoError(t, err)
	require.Len(t, spu.Segments, 1)
	assert.Equal(t, "<b>literal</b>", spu.Segments.Text())
	assert.Nil(t, spu.Segments[0].Style)
}

func TestDecode_StopsAtNul(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	spu, err := d.Decode(Block{Data: []byte("hi\x00padding"), PTS: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "hi", spu.Segments.Text())
}

func TestDecode_NulOnlyForcesEmptySubpicture(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	// A payload of a single NUL clears the screen: an empty but
	// schedulable subpicture.
	spu, err := d.Decode(Block{Data: []byte{0}, PTS: time.Second})
	require.NoError(t, err)
	require.NotNil(t, spu)
	assert.Equal(t, "", spu.Segments.Text())
	assert.True(t, spu.Ephemer)
}

func TestDecode_CharsetConversion(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Encoding: "Windows-1252", Formatted: true})

	spu, err := d.Decode(Block{Data: []byte{'c', 'a', 'f', 0xE9}, PTS: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "café", spu.Segments.Text())
}

func TestDecode_AutodetectKeepsUTF8(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{
		Encoding:       "Windows-1252",
		AutodetectUTF8: true,
		Formatted:      true,
	})

	spu, err := d.Decode(Block{Data: []byte("déjà vu"), PTS: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "déjà vu", spu.Segments.Text())
}

func TestDecode_RepairsInvalidPassthrough(t *testing.T) {
	t.Parallel()

	d := newDecoder(t, Options{Formatted: true})

	spu, err := d.Decode(Block{Data: []byte{'a', 0xFF, 'b'}, PTS: time.Second})
	require.NoError(t, err)
	require.NotNil(t, spu)
	assert.Equal(t, "a?b", spu.Segments.Text())
}
