// SPDX-License-Identifier: EPL-2.0

package block

import (
	"fmt"
	"math"
)

// Block is a fixed-shape multi-channel block of samples.
type Block[T Sample] struct {
	channels int
	frames   int
	mode     Mode
	store    storage[T]
}

// New creates a block of the given shape. Owned modes allocate zeroed memory
// and require a zero Storage; external modes borrow st.
func New[T Sample](channels, frames int, mode Mode, st Storage[T]) (*Block[T], error) {
	if channels <= 0 || frames <= 0 {
		return nil, fmt.Errorf("%w: %d channels, %d frames", ErrInvalidShape, channels, frames)
	}
	if frames > math.MaxInt/channels {
		return nil, fmt.Errorf("%w: %d channels x %d frames overflows", ErrInvalidShape, channels, frames)
	}
	if !mode.valid() {
		return nil, fmt.Errorf("%w: unknown mode %v", ErrInvalidStorage, mode)
	}
	if mode.Owned() && !st.empty() {
		return nil, fmt.Errorf("%w: %v does not take external storage", ErrInvalidStorage, mode)
	}

	b := &Block[T]{
		channels: channels,
		frames:   frames,
		mode:     mode,
	}

	switch mode {
	case OwnedInterleaved:
		b.store = interleaved[T]{data: make([]T, channels*frames), channels: channels}

	case OwnedPerChannel:
		chans := make([][]T, channels)
		for c := range chans {
			chans[c] = make([]T, frames)
		}
		b.store = perChannel[T]{chans: chans}

	case ExternalInterleaved:
		if st.PerChannel != nil {
			return nil, fmt.Errorf("%w: %v takes an interleaved slice", ErrInvalidStorage, mode)
		}
		n := channels * frames
		if len(st.Interleaved) < n {
			return nil, fmt.Errorf("%w: need %d samples, have %d", ErrInvalidStorage, n, len(st.Interleaved))
		}
		b.store = interleaved[T]{data: st.Interleaved[:n:n], channels: channels}

	case ExternalPerChannel:
		if st.Interleaved != nil {
			return nil, fmt.Errorf("%w: %v takes per-channel slices", ErrInvalidStorage, mode)
		}
		if len(st.PerChannel) < channels {
			return nil, fmt.Errorf("%w: need %d channels, have %d", ErrInvalidStorage, channels, len(st.PerChannel))
		}
		chans := make([][]T, channels)
		for c := range chans {
			ch := st.PerChannel[c]
			if len(ch) < frames {
				return nil, fmt.Errorf("%w: channel %d has %d frames, need %d", ErrInvalidStorage, c, len(ch), frames)
			}
			chans[c] = ch[:frames:frames]
		}
		b.store = perChannel[T]{chans: chans}
	}

	return b, nil
}

// NewInterleaved creates an owned, zeroed, interleaved block.
func NewInterleaved[T Sample](channels, frames int) (*Block[T], error) {
	return New[T](channels, frames, OwnedInterleaved, Storage[T]{})
}

// NewPerChannel creates an owned, zeroed block with one buffer per channel.
func NewPerChannel[T Sample](channels, frames int) (*Block[T], error) {
	return New[T](channels, frames, OwnedPerChannel, Storage[T]{})
}

// WrapInterleaved creates a view over data, which holds frames*channels
// interleaved samples. The view must not outlive data.
func WrapInterleaved[T Sample](data []T, channels, frames int) (*Block[T], error) {
	return New(channels, frames, ExternalInterleaved, Storage[T]{Interleaved: data})
}

// WrapPerChannel creates a view over one caller-owned slice per channel.
// The frame count is taken from the first channel. The view must not outlive
// the channel slices.
func WrapPerChannel[T Sample](chans [][]T) (*Block[T], error) {
	frames := 0
	if len(chans) > 0 {
		frames = len(chans[0])
	}
	return New(len(chans), frames, ExternalPerChannel, Storage[T]{PerChannel: chans})
}

// Channels returns the channel count.
func (b *Block[T]) Channels() int { return b.channels }

// Frames returns the frame count.
func (b *Block[T]) Frames() int { return b.frames }

// Len returns the total number of samples, Channels()*Frames().
func (b *Block[T]) Len() int { return b.channels * b.frames }

// Mode returns the storage mode chosen at construction.
func (b *Block[T]) Mode() Mode { return b.mode }

// SampleType returns the element type of the block.
func (b *Block[T]) SampleType() SampleType { return sampleTypeOf[T]() }

func (b *Block[T]) checkChannel(c int) error {
	if c < 0 || c >= b.channels {
		return fmt.Errorf("%w: channel %d not in [0, %d)", ErrOutOfRange, c, b.channels)
	}
	return nil
}

func (b *Block[T]) check(c, f int) error {
	if err := b.checkChannel(c); err != nil {
		return err
	}
	if f < 0 || f >= b.frames {
		return fmt.Errorf("%w: frame %d not in [0, %d)", ErrOutOfRange, f, b.frames)
	}
	return nil
}

// Sample returns the sample at channel c, frame f.
func (b *Block[T]) Sample(c, f int) (T, error) {
	if err := b.check(c, f); err != nil {
		var zero T
		return zero, err
	}
	data, off, stride := b.store.span(c)
	return data[off+f*stride], nil
}

// SetSample writes v at channel c, frame f.
func (b *Block[T]) SetSample(c, f int, v T) error {
	if err := b.check(c, f); err != nil {
		return err
	}
	data, off, stride := b.store.span(c)
	data[off+f*stride] = v
	return nil
}

// FillChannel writes v to every frame of channel c.
func (b *Block[T]) FillChannel(c int, v T) error {
	if err := b.checkChannel(c); err != nil {
		return err
	}
	data, off, stride := b.store.span(c)
	if stride == 1 {
		ch := data[off : off+b.frames]
		for i := range ch {
			ch[i] = v
		}
		return nil
	}
	for f, idx := 0, off; f < b.frames; f, idx = f+1, idx+stride {
		data[idx] = v
	}
	return nil
}

// Fill writes v to every sample, channel by channel.
func (b *Block[T]) Fill(v T) {
	for c := range b.channels {
		_ = b.FillChannel(c, v)
	}
}

// ApplyGain multiplies every sample of channel c by g in frame order.
// No clamping is applied.
func (b *Block[T]) ApplyGain(c int, g T) error {
	if err := b.checkChannel(c); err != nil {
		return err
	}
	data, off, stride := b.store.span(c)
	scale(data, off, stride, b.frames, g)
	return nil
}

// ApplyGainAll applies g to every channel in increasing channel order.
func (b *Block[T]) ApplyGainAll(g T) {
	for c := range b.channels {
		_ = b.ApplyGain(c, g)
	}
}

// Generate writes gen(f) to channel c for f = 0 .. Frames()-1. gen is called
// exactly once per frame, in ascending order, and never when c is invalid.
func (b *Block[T]) Generate(c int, gen func(frame int) T) error {
	if err := b.checkChannel(c); err != nil {
		return err
	}
	data, off, stride := b.store.span(c)
	for f, idx := 0, off; f < b.frames; f, idx = f+1, idx+stride {
		data[idx] = gen(f)
	}
	return nil
}

// Channel returns the contiguous slice backing channel c. Writes to the slice
// are writes to the block. Interleaved blocks return ErrNotContiguous.
func (b *Block[T]) Channel(c int) ([]T, error) {
	if err := b.checkChannel(c); err != nil {
		return nil, err
	}
	data, off, stride := b.store.span(c)
	if stride != 1 {
		return nil, fmt.Errorf("%w: channel %d of %v block", ErrNotContiguous, c, b.mode)
	}
	return data[off : off+b.frames], nil
}

// Interleaved returns the flat slice behind an interleaved block.
// ok is false for per-channel blocks.
func (b *Block[T]) Interleaved() (data []T, ok bool) {
	s, ok := b.store.(interleaved[T])
	if !ok {
		return nil, false
	}
	return s.data, true
}

// Clone returns an owned deep copy with the same layout. Cloning a view
// yields a block that no longer refers to the caller's memory.
func (b *Block[T]) Clone() *Block[T] {
	mode := OwnedPerChannel
	if b.mode.Interleaved() {
		mode = OwnedInterleaved
	}
	out, _ := New[T](b.channels, b.frames, mode, Storage[T]{})
	for c := range b.channels {
		src, soff, sstride := b.store.span(c)
		dst, doff, dstride := out.store.span(c)
		for f := range b.frames {
			dst[doff+f*dstride] = src[soff+f*sstride]
		}
	}
	return out
}
