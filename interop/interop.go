// SPDX-License-Identifier: EPL-2.0

package interop

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/utils"
)

// DefaultBitDepth is used for integer buffers that do not record one.
const DefaultBitDepth = 16

func checkFormat(f *goaudio.Format) error {
	if f == nil {
		return ErrNoFormat
	}
	return nil
}

// ViewFloat32 borrows buf.Data as an interleaved float32 block.
func ViewFloat32(buf *goaudio.Float32Buffer) (*block.Block[float32], error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if err := checkFormat(buf.Format); err != nil {
		return nil, err
	}

	b, err := block.WrapInterleaved(buf.Data, buf.Format.NumChannels, buf.NumFrames())
	if err != nil {
		return nil, fmt.Errorf("viewing float32 buffer: %w", err)
	}
	return b, nil
}

// ViewFloat borrows buf.Data as an interleaved float64 block.
func ViewFloat(buf *goaudio.FloatBuffer) (*block.Block[float64], error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if err := checkFormat(buf.Format); err != nil {
		return nil, err
	}

	b, err := block.WrapInterleaved(buf.Data, buf.Format.NumChannels, buf.NumFrames())
	if err != nil {
		return nil, fmt.Errorf("viewing float buffer: %w", err)
	}
	return b, nil
}

// FromIntBuffer copies integer PCM into an owned interleaved block scaled to
// [-1, 1). The buffer's SourceBitDepth is used when set.
func FromIntBuffer[T block.Real](buf *goaudio.IntBuffer) (*block.Block[T], error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if err := checkFormat(buf.Format); err != nil {
		return nil, err
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	b, err := block.NewInterleaved[T](buf.Format.NumChannels, buf.NumFrames())
	if err != nil {
		return nil, fmt.Errorf("copying int buffer: %w", err)
	}

	data, _ := b.Interleaved()
	for i := range data {
		data[i] = utils.IntToFloat[T](buf.Data[i], bitDepth)
	}
	return b, nil
}

// ToIntBuffer interleaves b into a new integer buffer at bitDepth, clamping
// samples to [-1, 1].
func ToIntBuffer[T block.Real](b *block.Block[T], sampleRate, bitDepth int) *goaudio.IntBuffer {
	channels := b.Channels()
	out := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, b.Len()),
		SourceBitDepth: bitDepth,
	}

	for c := range channels {
		for f := range b.Frames() {
			v, _ := b.Sample(c, f)
			out.Data[f*channels+c] = utils.FloatToInt(v, bitDepth)
		}
	}
	return out
}

// ToFloat32Buffer copies b into a new interleaved go-audio float32 buffer.
func ToFloat32Buffer[T block.Real](b *block.Block[T], sampleRate int) *goaudio.Float32Buffer {
	channels := b.Channels()
	out := &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data: make([]float32, b.Len()),
	}

	for c := range channels {
		for f := range b.Frames() {
			v, _ := b.Sample(c, f)
			out.Data[f*channels+c] = float32(v)
		}
	}
	return out
}
