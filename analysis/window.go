// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
)

// Window selects the taper applied to each FFT segment.
type Window int

const (
	Hann Window = iota
	Rectangular
	Blackman
)

func (w Window) valid() bool {
	return w >= Hann && w <= Blackman
}

func (w Window) String() string {
	switch w {
	case Hann:
		return "hann"
	case Rectangular:
		return "rectangular"
	case Blackman:
		return "blackman"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// Coefficients returns the symmetric window of length n.
func (w Window) Coefficients(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 || w == Rectangular {
		for i := range out {
			out[i] = 1
		}
		return out
	}

	den := float64(n - 1)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / den
		switch w {
		case Hann:
			out[i] = 0.5 - 0.5*math.Cos(phase)
		case Blackman:
			out[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		}
	}
	return out
}
