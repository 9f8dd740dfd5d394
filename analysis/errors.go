// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	ErrInvalidNFFT       = errors.New("nfft must be a positive power of two")
	ErrInvalidOverlap    = errors.New("overlap must be in [0, 1)")
	ErrInvalidWindow     = errors.New("unknown window")
	ErrInvalidSampleRate = errors.New("sample rate must be positive and finite")
	ErrNonFinite         = errors.New("channel holds non-finite samples")
)
