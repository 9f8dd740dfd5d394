// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding and encoding.
//
// This package uses github.com/go-audio/aiff. AIFF stores big-endian signed
// PCM; 8, 16, 24 and 32-bit files are supported.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	b, err := audio.ReadBlock(src, 0)
//
//	out, _ := os.Create("out.aiff")
//	err = aiff.WriteBlock(out, b, 44100, 16)
package aiff
