// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the go-audio integer PCM plumbing shared by the wav and
// aiff packages.
package pcm

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/interop"
	"github.com/ik5/audblock/utils"
)

// Reader is the part of the go-audio wav and aiff decoders used here.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Encoder is the part of the go-audio wav and aiff encoders used here.
type Encoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Source adapts a Reader to audio.Source.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	bitDepth   int
	signed8    bool
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec, whose samples are bitDepth-bit signed integers.
func NewSource(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

// WithSigned8 marks 8-bit samples as two's complement bytes. Readers that
// hand such bytes back unsigned are reinterpreted before scaling.
func (s *Source) WithSigned8() *Source {
	s.signed8 = true
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: s.bitDepth,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	signed8 := s.signed8 && s.bitDepth == 8
	for i := range n {
		v := s.intBuf.Data[i]
		if signed8 {
			v = int(int8(v))
		}
		dst[i] = utils.IntToFloat[float32](v, s.bitDepth)
	}

	// A short read without an error is the end of the data chunk.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// WriteBlock interleaves b into enc as bitDepth-bit PCM and closes enc.
func WriteBlock[T block.Real](enc Encoder, b *block.Block[T], sampleRate, bitDepth int) error {
	buf := interop.ToIntBuffer(b, sampleRate, bitDepth)

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("writing samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}
	return nil
}
