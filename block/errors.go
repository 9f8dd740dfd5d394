// SPDX-License-Identifier: EPL-2.0

package block

import "errors"

var (
	// ErrInvalidShape indicates a non-positive channel or frame count.
	ErrInvalidShape = errors.New("invalid block shape")

	// ErrInvalidStorage indicates storage that cannot back the requested shape and mode.
	ErrInvalidStorage = errors.New("invalid block storage")

	// ErrOutOfRange indicates a channel or frame index outside the block.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotContiguous indicates a channel that is not stored as one contiguous slice.
	ErrNotContiguous = errors.New("channel is not contiguous")
)
