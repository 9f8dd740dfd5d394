// SPDX-License-Identifier: EPL-2.0

package block

import "reflect"

// Real is the set of real-valued sample types.
type Real interface {
	~float32 | ~float64
}

// Sample is the set of sample types a Block can hold.
type Sample interface {
	Real | ~complex64 | ~complex128
}

// SampleType names the element type of a Block.
type SampleType int

const (
	Float32 SampleType = iota
	Float64
	Complex64
	Complex128
)

// ByteSize returns the size of one sample in bytes.
func (s SampleType) ByteSize() int {
	switch s {
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// IsComplex reports whether the type carries a real and an imaginary part.
func (s SampleType) IsComplex() bool {
	return s == Complex64 || s == Complex128
}

func (s SampleType) String() string {
	switch s {
	case Float32:
		return "float"
	case Float64:
		return "double"
	case Complex64:
		return "complex float"
	case Complex128:
		return "complex double"
	default:
		return "unknown"
	}
}

func sampleTypeOf[T Sample]() SampleType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float64:
		return Float64
	case reflect.Complex64:
		return Complex64
	case reflect.Complex128:
		return Complex128
	default:
		return Float32
	}
}
