// SPDX-License-Identifier: EPL-2.0

// Package interop adapts github.com/go-audio/audio buffers to blocks.
//
// Float buffers are borrowed: ViewFloat32 and ViewFloat return
// ExternalInterleaved blocks over the buffer's Data slice, so gain and fill
// operations on the block change the go-audio buffer in place. The block
// must not be used after the buffer's Data is replaced or resized.
//
//	buf := &goaudio.Float32Buffer{
//	    Format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
//	    Data:   make([]float32, 2*4096),
//	}
//	b, _ := interop.ViewFloat32(buf)
//	b.ApplyGainAll(0.5)
//
// Integer buffers hold scaled PCM and are always copied.
package interop
