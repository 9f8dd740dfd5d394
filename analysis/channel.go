// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"math/cmplx"
	"reflect"

	"github.com/ik5/audblock/block"
)

func toComplex[T block.Sample](v T) complex128 {
	switch x := any(v).(type) {
	case float32:
		return complex(float64(x), 0)
	case float64:
		return complex(x, 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}

	rv := reflect.ValueOf(v)
	if rv.CanFloat() {
		return complex(rv.Float(), 0)
	}
	return rv.Complex()
}

// channel copies channel c of b as complex values.
func channel[T block.Sample](b *block.Block[T], c int) ([]complex128, error) {
	if _, err := b.Sample(c, 0); err != nil {
		return nil, err
	}

	out := make([]complex128, b.Frames())
	for f := range out {
		v, _ := b.Sample(c, f)
		out[f] = toComplex(v)
	}
	return out, nil
}

func finite(x []complex128) bool {
	for _, v := range x {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Magnitude returns |x| for every frame of channel c.
func Magnitude[T block.Sample](b *block.Block[T], c int) ([]float64, error) {
	x, err := channel(b, c)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = cmplx.Abs(v)
	}
	return out, nil
}

// Phase returns the angle of every frame of channel c in (-π, π].
// Real samples have phase 0 or π.
func Phase[T block.Sample](b *block.Block[T], c int) ([]float64, error) {
	x, err := channel(b, c)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		if imag(v) == 0 && real(v) < 0 {
			out[i] = math.Pi
			continue
		}
		out[i] = cmplx.Phase(v)
	}
	return out, nil
}
