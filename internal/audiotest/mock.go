// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory audio sources for tests.
package audiotest

import (
	"io"

	"github.com/ik5/audblock/signal"
)

// MockSource generates interleaved float32 frames on demand. It satisfies
// audio.Source without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	bufSize     int
	waveform    func(frame, channel int) float32

	// Err, when set, is returned by ReadSamples once FailAfter frames
	// have been produced.
	Err       error
	FailAfter int
}

// NewMockSource creates a source of totalFrames frames. waveform yields the
// value for a frame and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		bufSize:     4096,
		waveform:    waveform,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalFrames, 0)
}

// NewConstantSource creates a source that repeats value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// NewRampSource creates a source whose sample is frame*channels+channel,
// which makes ordering mistakes easy to spot.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return float32(frame*channels + channel)
	})
}

// NewSineSource creates a source with the same sine tone on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	gen := signal.Sine[float32](frequency, float64(sampleRate), 1)
	last, value := -1, float32(0)

	return NewMockSource(sampleRate, channels, totalFrames, func(frame, _ int) float32 {
		if frame != last {
			value = gen(frame)
			last = frame
		}
		return value
	})
}

// WithBufSize overrides the value returned by BufSize.
func (m *MockSource) WithBufSize(n int) *MockSource {
	m.bufSize = n
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return m.bufSize }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to frame 0.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil && m.generated >= m.FailAfter {
		return 0, m.Err
	}
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	if m.Err != nil {
		frames = min(frames, m.FailAfter-m.generated)
	}

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	n := frames * m.channels

	if m.generated >= m.totalFrames {
		return n, io.EOF
	}
	return n, nil
}
