// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/formats/internal/pcm"
)

// WriteBlock writes b as an integer PCM WAV file at sampleRate. Samples are
// clamped to [-1, 1] and quantized to bitDepth bits (16, 24 or 32).
func WriteBlock[T block.Real](w io.WriteSeeker, b *block.Block[T], sampleRate, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, b.Channels(), formatPCM)
	if err := pcm.WriteBlock(enc, b, sampleRate, bitDepth); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
