// SPDX-License-Identifier: EPL-2.0

package audblock

import (
	"fmt"
	"io"

	"github.com/ik5/audblock/audio"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/formats/aiff"
	"github.com/ik5/audblock/formats/mp3"
	"github.com/ik5/audblock/formats/vorbis"
	"github.com/ik5/audblock/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder under its
// usual file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// DecodeBlock decodes a whole stream of the given format into an owned
// interleaved float32 block and returns it with the stream's sample rate.
//
// Example:
//
//	file, _ := os.Open("song.ogg")
//	b, rate, err := audblock.DecodeBlock("ogg", file)
//	b.ApplyGainAll(0.5)
func DecodeBlock(format string, r io.Reader) (*block.Block[float32], int, error) {
	src, err := DefaultRegistry().Decode(format, r)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	b, err := audio.ReadBlock(src, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s stream: %w", format, err)
	}
	return b, src.SampleRate(), nil
}
