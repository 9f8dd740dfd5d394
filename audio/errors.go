// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrEmptySource is returned when a source ends before yielding a full frame.
	ErrEmptySource = errors.New("source produced no frames")

	// ErrUnknownFormat is returned when no decoder is registered for a format.
	ErrUnknownFormat = errors.New("unknown audio format")
)
