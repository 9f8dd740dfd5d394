// SPDX-License-Identifier: EPL-2.0

package interop

import "errors"

var (
	// ErrNilBuffer indicates a nil buffer was passed.
	ErrNilBuffer = errors.New("nil go-audio buffer")

	// ErrNoFormat indicates a buffer without a Format, whose channel count is unknown.
	ErrNoFormat = errors.New("go-audio buffer has no format")
)
