// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes integer PCM WAV files using
// github.com/go-audio/wav.
//
// # Decoding
//
//	file, _ := os.Open("audio.wav")
//	src, err := wav.Decoder{}.Decode(file)
//	b, err := audio.ReadBlock(src, 0)
//
// The decoder returns an audio.Source of float32 samples in [-1.0, 1.0).
// 16, 24 and 32-bit PCM are supported. Readers that cannot seek are
// buffered in memory first.
//
// # Encoding
//
//	file, _ := os.Create("out.wav")
//	err := wav.WriteBlock(file, b, 48000, 24)
//
// WriteBlock accepts a block in any storage mode and interleaves it.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed or float WAV
//   - ErrUnsupportedBitDepth: a bit depth other than 16, 24 or 32
package wav
