// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/formats/internal/pcm"
)

// WriteBlock writes b as a big-endian PCM AIFF file at sampleRate, clamped to
// [-1, 1] and quantized to bitDepth bits.
func WriteBlock[T block.Real](w io.WriteSeeker, b *block.Block[T], sampleRate, bitDepth int) error {
	if !supportedDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	enc := aiff.NewEncoder(w, sampleRate, bitDepth, b.Channels())
	if err := pcm.WriteBlock(enc, b, sampleRate, bitDepth); err != nil {
		return fmt.Errorf("aiff: %w", err)
	}
	return nil
}
