// SPDX-License-Identifier: EPL-2.0

package block

// Storage carries caller-owned memory for the external modes.
//
// ExternalInterleaved reads Interleaved, which must hold at least
// channels*frames samples laid out frame by frame. ExternalPerChannel reads
// PerChannel, which must hold at least channels slices of at least frames
// samples each. Owned modes take a zero Storage.
//
// The block copies the outer PerChannel slice header list but never the
// sample memory itself, so it does not keep that memory alive for the caller.
type Storage[T Sample] struct {
	Interleaved []T
	PerChannel  [][]T
}

func (s Storage[T]) empty() bool {
	return s.Interleaved == nil && s.PerChannel == nil
}

// storage is implemented by interleaved and perChannel.
type storage[T Sample] interface {
	// span returns the slice holding channel c, the index of its frame 0
	// and the distance between consecutive frames.
	span(c int) (data []T, offset, stride int)
}

type interleaved[T Sample] struct {
	data     []T
	channels int
}

func (s interleaved[T]) span(c int) ([]T, int, int) {
	return s.data, c, s.channels
}

type perChannel[T Sample] struct {
	chans [][]T
}

func (s perChannel[T]) span(c int) ([]T, int, int) {
	return s.chans[c], 0, 1
}
