// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audblock/block"
)

// ReadBlock drains src into an owned interleaved block. When maxFrames is
// positive at most that many frames are read; otherwise src is read until
// io.EOF. A trailing partial frame is dropped.
func ReadBlock(src Source, maxFrames int) (*block.Block[float32], error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: source has %d channels", block.ErrInvalidShape, channels)
	}

	chunk := src.BufSize()
	if chunk < channels {
		chunk = max(4096, channels)
	}
	chunk -= chunk % channels

	// Sample limit; 0 means unlimited.
	limit := 0
	if maxFrames > 0 {
		limit = math.MaxInt
		if maxFrames <= math.MaxInt/channels {
			limit = maxFrames * channels
		}
	}

	buf := make([]float32, chunk)
	var samples []float32
	if limit > 0 {
		samples = make([]float32, 0, min(limit, chunk))
	}

	for {
		want := len(buf)
		if limit > 0 {
			left := limit - len(samples)
			if left <= 0 {
				break
			}
			want = min(want, left)
		}

		n, err := src.ReadSamples(buf[:want])
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
		if n == 0 {
			// Sources may return (0, nil) before EOF; treat a stall as the end.
			break
		}
	}

	frames := len(samples) / channels
	if frames == 0 {
		return nil, ErrEmptySource
	}

	b, err := block.NewInterleaved[float32](channels, frames)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	data, _ := b.Interleaved()
	copy(data, samples)

	return b, nil
}
