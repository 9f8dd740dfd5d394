// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/ik5/audblock/block"
)

// Generator returns the sample for the given frame.
type Generator[T block.Real] func(frame int) T

// Sine returns a phase-accumulating sine oscillator at freq Hz.
// The phase wraps at 2π so long runs keep their precision.
func Sine[T block.Real](freq, sampleRate, amplitude float64) Generator[T] {
	step := T(2 * math.Pi * freq / sampleRate)
	twoPi := T(2 * math.Pi)
	amp := T(amplitude)
	var phase T

	return func(int) T {
		v := amp * sin(phase)
		phase += step
		if phase >= twoPi {
			phase -= twoPi
		}
		return v
	}
}

// Chirp returns a sine sweep: the phase advances by step on every call and
// step is multiplied by growth on the first call and every every calls after.
func Chirp[T block.Real](step, growth T, every int) Generator[T] {
	if every <= 0 {
		every = 1
	}
	var phase T
	calls := 0

	return func(int) T {
		v := sin(phase)
		phase += step
		if calls%every == 0 {
			step *= growth
		}
		calls++
		return v
	}
}

// Constant returns a generator that always yields v.
func Constant[T block.Real](v T) Generator[T] {
	return func(int) T { return v }
}

// Noise returns deterministic white noise in [-1, 1) seeded by seed.
func Noise[T block.Real](seed uint64) Generator[T] {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return func(int) T {
		return T(2*rng.Float64() - 1)
	}
}

func sin[T block.Real](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}
