// SPDX-License-Identifier: EPL-2.0

// Package audblock provides multi-channel audio blocks for Go applications.
//
// The heart of the module is the block package: a fixed-shape container of
// float32, float64 or complex samples that offers the same per-sample and
// per-channel operations whether the samples live in one interleaved buffer,
// one buffer per channel, or in caller-owned memory borrowed as a view.
//
// # Packages
//
//   - block: the Block type, its four storage modes and its errors
//   - signal: sine, chirp, constant and noise generators for Block.Generate
//   - analysis: per-sample magnitude and phase, FFT spectrum, Welch PSD and
//     spectrogram of one channel
//   - audio: the Source stream interface, decoder registry, ReadBlock and
//     BlockSource
//   - interop: views and copies between blocks and go-audio buffers
//   - formats/wav, formats/aiff: PCM decoders and block encoders
//   - formats/mp3, formats/vorbis: decoders
//
// # Quick Start
//
//	b, _ := block.NewPerChannel[float32](2, 4096)
//	_ = b.Generate(0, signal.Sine[float32](440, 48000, 1))
//	_ = b.ApplyGain(0, 0.5)
//
//	out, _ := os.Create("tone.wav")
//	_ = wav.WriteBlock(out, b, 48000, 16)
//
// # Decoding
//
// DecodeBlock reads a whole stream of a registered format into a block:
//
//	file, _ := os.Open("audio.mp3")
//	b, rate, err := audblock.DecodeBlock("mp3", file)
//
// For streaming use, decode through audio.Registry and read the Source
// directly.
package audblock
