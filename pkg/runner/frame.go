package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/subtext/pkg/decoder"
)

// rawPTS is the synthetic timestamp given to untimed payloads. The
// decoder treats PTS <= 0 as undated and drops the packet, so raw
// input needs a nonzero stand-in.
const rawPTS = time.Second

const srtArrow = "-->"

// FrameBlocks frames input bytes into decoder blocks. Input carrying
// SRT-style cue timings ("00:00:10,000 --> 00:00:12,000") is split
// into one block per cue with real timestamps. Anything else is
// treated as a single raw payload with a synthetic timestamp and no
// duration.
func FrameBlocks(data []byte) ([]decoder.Block, error) {
	if blocks, ok := frameSRT(data); ok {
		return blocks, nil
	}

	payload := bytes.TrimRight(data, "\r\n")
	return []decoder.Block{{Data: payload, PTS: rawPTS}}, nil
}

// frameSRT attempts to parse the input as SRT cues. Returns false if
// no timing line is found.
func frameSRT(data []byte) ([]decoder.Block, bool) {
	var blocks []decoder.Block

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cur *decoder.Block
	var payload []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Data = []byte(strings.Join(payload, "\n"))
		blocks = append(blocks, *cur)
		cur = nil
		payload = nil
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		start, stop, ok := parseCueTiming(line)
		if ok {
			flush()
			cur = &decoder.Block{PTS: start, Duration: stop - start}
			continue
		}

		if cur == nil {
			// Index lines and leading junk before the first timing.
			continue
		}
		if line == "" {
			flush()
			continue
		}
		payload = append(payload, line)
	}
	flush()

	return blocks, len(blocks) > 0
}

// parseCueTiming parses an SRT timing line into start and stop times.
func parseCueTiming(line string) (start, stop time.Duration, ok bool) {
	idx := strings.Index(line, srtArrow)
	if idx < 0 {
		return 0, 0, false
	}

	start, err := parseSRTTime(strings.TrimSpace(line[:idx]))
	if err != nil {
		return 0, 0, false
	}
	stop, err = parseSRTTime(strings.TrimSpace(line[idx+len(srtArrow):]))
	if err != nil {
		return 0, 0, false
	}
	return start, stop, true
}

// parseSRTTime parses "HH:MM:SS,mmm" (or with '.' as the millisecond
// separator) into a duration from stream start.
func parseSRTTime(s string) (time.Duration, error) {
	var h, m, sec, ms int

	normalized := strings.Replace(s, ".", ",", 1)
	if _, err := fmt.Sscanf(normalized, "%d:%d:%d,%d", &h, &m, &sec, &ms); err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	if m > 59 || sec > 59 || ms > 999 || h < 0 || m < 0 || sec < 0 || ms < 0 {
		return 0, fmt.Errorf("timestamp %q out of range", s)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
