// SPDX-License-Identifier: EPL-2.0

// Package signal provides sample generators for block.Block.Generate.
//
// Generators are stateful: each call produces the next sample, so a
// generator must be driven once per frame in ascending order and must not be
// shared between blocks that expect independent signals.
//
//	b, _ := block.NewPerChannel[float32](2, 4096)
//	_ = b.Generate(0, signal.Sine[float32](440, 48000, 0.5))
//	_ = b.Generate(1, signal.Chirp[float32](3.14/4096*4, 1.01, 8))
package signal
