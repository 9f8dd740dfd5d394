// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audblock/block"
)

// BlockSource streams a block as an interleaved float32 Source, frame by
// frame, whatever the block's storage mode. It reads the block lazily, so
// writes made to the block before a frame is read are part of the stream.
type BlockSource[T block.Real] struct {
	b          *block.Block[T]
	sampleRate int
	pos        int
}

// NewBlockSource wraps b as a Source running at sampleRate Hz.
func NewBlockSource[T block.Real](b *block.Block[T], sampleRate int) *BlockSource[T] {
	return &BlockSource[T]{
		b:          b,
		sampleRate: sampleRate,
	}
}

func (s *BlockSource[T]) SampleRate() int { return s.sampleRate }
func (s *BlockSource[T]) Channels() int   { return s.b.Channels() }
func (s *BlockSource[T]) BufSize() int    { return s.b.Len() }
func (s *BlockSource[T]) Close() error    { return nil }

// Reset rewinds the stream to frame 0.
func (s *BlockSource[T]) Reset() {
	s.pos = 0
}

func (s *BlockSource[T]) ReadSamples(dst []float32) (int, error) {
	channels := s.b.Channels()
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.b.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)

	if data, ok := s.b.Interleaved(); ok {
		base := s.pos * channels
		for i := range frames * channels {
			dst[i] = float32(data[base+i])
		}
	} else {
		for c := range channels {
			ch, _ := s.b.Channel(c)
			for f := range frames {
				dst[f*channels+c] = float32(ch[s.pos+f])
			}
		}
	}

	s.pos += frames
	n := frames * channels

	if s.pos >= s.b.Frames() {
		return n, io.EOF
	}
	return n, nil
}
