// SPDX-License-Identifier: EPL-2.0

package block

import "fmt"

// Mode selects how a Block stores its samples and who owns that memory.
type Mode int

const (
	OwnedInterleaved Mode = iota
	OwnedPerChannel
	ExternalPerChannel
	ExternalInterleaved
)

// Owned reports whether the block allocates and owns its storage.
func (m Mode) Owned() bool {
	return m == OwnedInterleaved || m == OwnedPerChannel
}

// Interleaved reports whether samples of one frame are adjacent in memory.
func (m Mode) Interleaved() bool {
	return m == OwnedInterleaved || m == ExternalInterleaved
}

func (m Mode) valid() bool {
	return m >= OwnedInterleaved && m <= ExternalInterleaved
}

func (m Mode) String() string {
	switch m {
	case OwnedInterleaved:
		return "owned interleaved"
	case OwnedPerChannel:
		return "owned per-channel"
	case ExternalPerChannel:
		return "external per-channel"
	case ExternalInterleaved:
		return "external interleaved"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
