// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/ik5/audblock/block"
)

// Spectrum is the discrete Fourier transform of one channel.
type Spectrum struct {
	Bins       []complex128
	SampleRate float64
	// OneSided is set for real channels, whose upper bins mirror the lower ones.
	OneSided bool
}

// ComputeSpectrum transforms the first NFFT frames of channel c, zero-padded
// when the channel is shorter. NFFT defaults to the channel length rounded up
// to a power of two and the window defaults to Rectangular.
func ComputeSpectrum[T block.Sample](b *block.Block[T], c int, sampleRate float64, opts ...Option) (*Spectrum, error) {
	if err := checkSampleRate(sampleRate); err != nil {
		return nil, err
	}
	cfg, err := newConfig(config{nfft: nextPowerOf2(b.Frames()), window: Rectangular}, opts)
	if err != nil {
		return nil, err
	}

	x, err := channel(b, c)
	if err != nil {
		return nil, err
	}

	t, err := newTransform(cfg, b.SampleType().IsComplex())
	if err != nil {
		return nil, err
	}
	bins := make([]complex128, cfg.nfft)
	if err := t.forward(bins, x); err != nil {
		return nil, err
	}

	return &Spectrum{Bins: bins, SampleRate: sampleRate, OneSided: t.oneSided}, nil
}

// Len returns the number of bins.
func (s *Spectrum) Len() int { return len(s.Bins) }

// Frequency returns the center frequency of bin k in Hz.
func (s *Spectrum) Frequency(k int) float64 {
	return binFrequency(k, len(s.Bins), s.SampleRate)
}

// Magnitude returns |X[k]| for every bin.
func (s *Spectrum) Magnitude() []float64 {
	out := make([]float64, len(s.Bins))
	for k, v := range s.Bins {
		out[k] = cmplx.Abs(v)
	}
	return out
}

// Phase returns the angle of every bin in radians.
func (s *Spectrum) Phase() []float64 {
	out := make([]float64, len(s.Bins))
	for k, v := range s.Bins {
		out[k] = cmplx.Phase(v)
	}
	return out
}

// Peak returns the bin with the largest magnitude. One-sided spectra only
// search bins 0..Len()/2.
func (s *Spectrum) Peak() int {
	n := len(s.Bins)
	if s.OneSided {
		n = len(s.Bins)/2 + 1
	}

	peak, best := 0, -1.0
	for k := range n {
		if m := cmplx.Abs(s.Bins[k]); m > best {
			peak, best = k, m
		}
	}
	return peak
}

// transform windows a segment and runs a forward FFT of size nfft.
type transform struct {
	plan     *algofft.Plan[complex128]
	window   []float64
	re, im   []float64
	in       []complex128
	oneSided bool
}

func newTransform(cfg config, isComplex bool) (*transform, error) {
	plan, err := algofft.NewPlan64(cfg.nfft)
	if err != nil {
		return nil, fmt.Errorf("fft plan of size %d: %w", cfg.nfft, err)
	}

	return &transform{
		plan:     plan,
		window:   cfg.window.Coefficients(cfg.nfft),
		re:       make([]float64, cfg.nfft),
		im:       make([]float64, cfg.nfft),
		in:       make([]complex128, cfg.nfft),
		oneSided: !isComplex,
	}, nil
}

// forward transforms seg into dst. seg shorter than nfft is zero-padded.
func (t *transform) forward(dst, seg []complex128) error {
	n := len(t.in)
	seg = seg[:min(len(seg), n)]

	clear(t.re)
	clear(t.im)
	for i, v := range seg {
		t.re[i] = real(v)
		t.im[i] = imag(v)
	}

	vecmath.MulBlockInPlace(t.re, t.window)
	if !t.oneSided {
		vecmath.MulBlockInPlace(t.im, t.window)
	}

	for i := range t.in {
		t.in[i] = complex(t.re[i], t.im[i])
	}

	if err := t.plan.Forward(dst, t.in); err != nil {
		return fmt.Errorf("fft: %w", err)
	}
	return nil
}

func (t *transform) windowPower() float64 {
	return windowPower(t.window)
}

// windowPower returns the sum of squared coefficients.
func windowPower(w []float64) float64 {
	sum := 0.0
	for _, v := range w {
		sum += v * v
	}
	return sum
}
