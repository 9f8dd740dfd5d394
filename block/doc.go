// SPDX-License-Identifier: EPL-2.0

// Package block provides a fixed-shape, multi-channel audio block with uniform
// per-sample and per-channel access regardless of how the samples are stored.
//
// A Block is created with a channel count, a frame count and one of four
// storage modes:
//
//   - OwnedInterleaved: the block owns one flat buffer, frame-major
//   - OwnedPerChannel: the block owns one buffer per channel
//   - ExternalPerChannel: the block borrows caller-owned per-channel slices
//   - ExternalInterleaved: the block borrows one caller-owned flat slice
//
// # Creating Blocks
//
//	owned, _ := block.NewPerChannel[float32](2, 4096)
//
//	data := make([]float32, 2*4096)
//	view, _ := block.WrapInterleaved(data, 2, 4096)
//
// Owned blocks start zeroed. The shape never changes after construction.
//
// # Borrowed Storage
//
// External modes are views. The block keeps references to the caller's
// slices and never copies, grows or frees them: writes through the block are
// visible in the caller's memory and the other way round. The caller must keep
// the memory alive and unchanged in shape for as long as the view is in use.
//
// # Processing
//
//	b.Fill(0)
//	b.SetSample(1, 0, 1.0)
//	b.Generate(0, signal.Sine[float32](440, 48000, 1))
//	b.ApplyGain(0, 0.5)
//
// Generate calls the generator exactly once per frame, in ascending frame
// order, so stateful oscillators work as expected.
//
// # Errors
//
// Shape, storage and index problems are reported as ErrInvalidShape,
// ErrInvalidStorage and ErrOutOfRange, wrapped with context. Use errors.Is to
// match them. A call that fails leaves the block untouched.
//
// # Concurrency
//
// A Block is not safe for concurrent use.
package block
