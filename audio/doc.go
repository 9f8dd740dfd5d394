// SPDX-License-Identifier: EPL-2.0

// Package audio connects audio streams to blocks.
//
// This package contains:
//   - Source interface for interleaved float32 audio input
//   - Format registry for decoder registration
//   - ReadBlock, which drains a Source into a block.Block
//   - BlockSource, which streams a block.Block as a Source
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders under formats/ return a Source.
//
// # Loading Into A Block
//
//	src, _ := wav.Decoder{}.Decode(file)
//	b, err := audio.ReadBlock(src, 0)
//
// The result is an owned interleaved float32 block sized to the stream.
//
// # Streaming A Block
//
//	src := audio.NewBlockSource(b, 48000)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// BlockSource works for every storage mode and interleaves per-channel
// blocks on the fly.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process n samples from buf
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
