package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSRTTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:00,000", 0, false},
		{"00:00:10,500", 10500 * time.Millisecond, false},
		{"01:02:03,004", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond, false},
		{"00:00:10.500", 10500 * time.Millisecond, false}, // dot separator
		{"10:00:00,000", 10 * time.Hour, false},
		{"00:61:00,000", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSRTTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrameBlocks_SRT(t *testing.T) {
	t.Parallel()

	input := "1\n00:00:01,000 --> 00:00:02,000\nfirst line\nsecond line\n\n" +
		"2\n00:00:05,000 --> 00:00:06,500\nbye\n"

	blocks, err := FrameBlocks([]byte(input))
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, time.Second, blocks[0].PTS)
	assert.Equal(t, time.Second, blocks[0].Duration)
	assert.Equal(t, "first line\nsecond line", string(blocks[0].Data))

	assert.Equal(t, 5*time.Second, blocks[1].PTS)
	assert.Equal(t, 1500*time.Millisecond, blocks[1].Duration)
	assert.Equal(t, "bye", string(blocks[1].Data))
}

func TestFrameBlocks_SRTWithCRLF(t *testing.T) {
	t.Parallel()

	input := "1\r\n00:00:01,000 --> 00:00:02,000\r\nhi\r\n\r\n"

	blocks, err := FrameBlocks([]byte(input))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "hi", string(blocks[0].Data))
}

func TestFrameBlocks_RawFallback(t *testing.T) {
	t.Parallel()

	blocks, err := FrameBlocks([]byte("<b>raw</b> payload\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, "<b>raw</b> payload", string(blocks[0].Data))
	assert.Equal(t, rawPTS, blocks[0].PTS)
	assert.Equal(t, time.Duration(0), blocks[0].Duration)
}

func TestFrameBlocks_ArrowWithoutTimestampsIsRaw(t *testing.T) {
	t.Parallel()

	blocks, err := FrameBlocks([]byte("see --> here"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "see --> here", string(blocks[0].Data))
	assert.Equal(t, rawPTS, blocks[0].PTS)
}

func TestFrameBlocks_EmptyCuePayload(t *testing.T) {
	t.Parallel()

	input := "1\n00:00:01,000 --> 00:00:02,000\n\n"

	blocks, err := FrameBlocks([]byte(input))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Data)
}
