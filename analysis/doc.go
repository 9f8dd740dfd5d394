// SPDX-License-Identifier: EPL-2.0

// Package analysis computes views of one block channel: per-sample
// magnitude and phase, the FFT spectrum, and Welch power spectral density
// and spectrogram estimates.
//
// Spectral estimates take an FFT size (a power of two), a segment overlap
// fraction and a window:
//
//	psd, err := analysis.ComputePSD(b, 0, 48000,
//	    analysis.WithNFFT(1024),
//	    analysis.WithOverlap(0.5),
//	    analysis.WithWindow(analysis.Blackman),
//	)
//
// Real channels produce one-sided estimates over bins 0..NFFT/2. Complex
// channels produce two-sided estimates in FFT bin order, with the upper half
// holding negative frequencies.
package analysis
