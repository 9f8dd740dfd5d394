// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files. The
// decoder always yields interleaved stereo; mono files are duplicated to
// both channels by go-mp3.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	b, err := audio.ReadBlock(src, 0)
package mp3
