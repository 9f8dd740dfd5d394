// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into interleaved float32 samples.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	b, err := audio.ReadBlock(src, 0)
//
// Destination buffers passed to ReadSamples must hold whole frames.
package vorbis
