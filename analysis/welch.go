// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/ik5/audblock/block"
)

// PSD is a power spectral density estimate in power per Hz.
type PSD struct {
	Freqs []float64
	Power []float64
}

// Peak returns the index of the strongest bin.
func (p *PSD) Peak() int {
	peak := 0
	for k, v := range p.Power {
		if v > p.Power[peak] {
			peak = k
		}
	}
	return peak
}

// Spectrogram holds one density estimate per segment. Power[i][k] is bin k
// of the segment centered at Times[i] seconds.
type Spectrogram struct {
	Times []float64
	Freqs []float64
	Power [][]float64
}

var welchDefaults = config{nfft: 256, overlap: 0.5, window: Hann}

// ComputePSD estimates the power spectral density of channel c by averaging
// windowed periodograms of overlapping segments (Welch's method). NFFT
// defaults to 256, overlap to 0.5 and the window to Hann. Channels shorter
// than NFFT are zero-padded to one segment.
func ComputePSD[T block.Sample](b *block.Block[T], c int, sampleRate float64, opts ...Option) (*PSD, error) {
	segs, err := welch(b, c, sampleRate, opts)
	if err != nil {
		return nil, err
	}

	power := make([]float64, len(segs.freqs))
	for _, p := range segs.power {
		for k, v := range p {
			power[k] += v
		}
	}
	for k := range power {
		power[k] /= float64(len(segs.power))
	}

	return &PSD{Freqs: segs.freqs, Power: power}, nil
}

// ComputeSpectrogram returns the per-segment density estimates that
// ComputePSD averages.
func ComputeSpectrogram[T block.Sample](b *block.Block[T], c int, sampleRate float64, opts ...Option) (*Spectrogram, error) {
	segs, err := welch(b, c, sampleRate, opts)
	if err != nil {
		return nil, err
	}
	return &Spectrogram{Times: segs.times, Freqs: segs.freqs, Power: segs.power}, nil
}

type segments struct {
	times []float64
	freqs []float64
	power [][]float64
}

func welch[T block.Sample](b *block.Block[T], c int, fs float64, opts []Option) (*segments, error) {
	if err := checkSampleRate(fs); err != nil {
		return nil, err
	}
	cfg, err := newConfig(welchDefaults, opts)
	if err != nil {
		return nil, err
	}

	x, err := channel(b, c)
	if err != nil {
		return nil, err
	}
	if !finite(x) {
		return nil, fmt.Errorf("%w: channel %d", ErrNonFinite, c)
	}

	if windowPower(cfg.window.Coefficients(cfg.nfft)) == 0 {
		return nil, fmt.Errorf("%w: %v window of size %d is all zeros", ErrInvalidNFFT, cfg.window, cfg.nfft)
	}

	t, err := newTransform(cfg, b.SampleType().IsComplex())
	if err != nil {
		return nil, err
	}

	nfft := cfg.nfft
	step := nfft - int(cfg.overlap*float64(nfft))
	count := 1
	if len(x) > nfft {
		count = 1 + (len(x)-nfft)/step
	}

	bins := nfft
	if t.oneSided {
		bins = nfft/2 + 1
	}
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = binFrequency(k, nfft, fs)
	}
	scale := 1 / (fs * t.windowPower())
	out := &segments{
		times: make([]float64, count),
		freqs: freqs,
		power: make([][]float64, count),
	}
	fftOut := make([]complex128, nfft)

	for i := range count {
		start := i * step
		if err := t.forward(fftOut, x[start:min(start+nfft, len(x))]); err != nil {
			return nil, err
		}

		p := make([]float64, bins)
		for k := range p {
			m := cmplx.Abs(fftOut[k])
			p[k] = m * m * scale
			if t.oneSided && k > 0 && k < nfft/2 {
				p[k] *= 2
			}
		}

		out.power[i] = p
		out.times[i] = (float64(start) + float64(nfft)/2) / fs
	}

	return out, nil
}
