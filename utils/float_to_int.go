// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	"github.com/ik5/audblock/block"
)

// FullScale returns the magnitude of the most negative integer sample at
// bitDepth, e.g. 32768 for 16 bits. Unknown depths are treated as 16-bit.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1))
	default:
		return 32768.0
	}
}

// FloatToInt converts a sample in [-1, 1] to a signed integer PCM value at
// bitDepth. Values outside the range are clamped and NaN becomes 0.
func FloatToInt[T block.Real](x T, bitDepth int) int {
	v := float64(x)
	if math.IsNaN(v) {
		return 0
	}

	// Clamp and scale
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	// Positive peak is one step below full scale.
	return int(v * (FullScale(bitDepth) - 1))
}

// IntToFloat converts a signed integer PCM value at bitDepth to [-1, 1).
func IntToFloat[T block.Real](v, bitDepth int) T {
	return T(float64(v) / FullScale(bitDepth))
}

// Float32ToInt16 is FloatToInt at 16 bits.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToInt(x, 16))
}
