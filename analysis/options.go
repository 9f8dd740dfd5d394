// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
)

// Option configures a spectral estimate.
type Option func(*config)

type config struct {
	nfft    int
	overlap float64
	window  Window
}

// WithNFFT sets the FFT size. It must be a power of two.
func WithNFFT(n int) Option {
	return func(c *config) {
		c.nfft = n
	}
}

// WithOverlap sets the fraction of each segment shared with the next one.
func WithOverlap(v float64) Option {
	return func(c *config) {
		c.overlap = v
	}
}

// WithWindow sets the segment window.
func WithWindow(w Window) Option {
	return func(c *config) {
		c.window = w
	}
}

func newConfig(cfg config, opts []Option) (config, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.nfft <= 0 || cfg.nfft&(cfg.nfft-1) != 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidNFFT, cfg.nfft)
	}
	if !(cfg.overlap >= 0 && cfg.overlap < 1) {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidOverlap, cfg.overlap)
	}
	if !cfg.window.valid() {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidWindow, cfg.window)
	}
	return cfg, nil
}

func checkSampleRate(fs float64) error {
	if !(fs > 0) || math.IsInf(fs, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, fs)
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// binFrequency returns the frequency of FFT bin k of n at sample rate fs.
// Bins above n/2 are negative frequencies.
func binFrequency(k, n int, fs float64) float64 {
	if k > n/2 {
		k -= n
	}
	return float64(k) * fs / float64(n)
}
