// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audblock/block"
)

// mockReader simulates a go-audio decoder.
type mockReader struct {
	channels int
	samples  []int
	offset   int
	err      error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 8000, NumChannels: m.channels}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

// mockEncoder records what it is given.
type mockEncoder struct {
	written  *goaudio.IntBuffer
	closed   bool
	writeErr error
}

func (m *mockEncoder) Write(buf *goaudio.IntBuffer) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = buf
	return nil
}

func (m *mockEncoder) Close() error {
	m.closed = true
	return nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{channels: 2, samples: []int{16384, -16384, 0, -32768, 8192}}, 8000, 2, 16)

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 4, nil", n, err)
	}

	want := []float32{0.5, -0.5, 0, -1}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], w)
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 1 || !errors.Is(err, io.EOF) {
		t.Fatalf("short ReadSamples() = %d, %v, want 1, EOF", n, err)
	}
	if buf[0] != 0.25 {
		t.Errorf("buf[0] = %v, want 0.25", buf[0])
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() at end = %d, %v, want 0, EOF", n, err)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
	}{
		{8, 64},
		{16, 16384},
		{24, 4194304},
		{32, 1073741824},
	}

	for _, tt := range tests {
		src := NewSource(&mockReader{channels: 1, samples: []int{tt.sample}}, 8000, 1, tt.bitDepth)
		buf := make([]float32, 1)
		if _, err := src.ReadSamples(buf); err != nil {
			t.Fatalf("%d-bit: ReadSamples() error = %v", tt.bitDepth, err)
		}
		if buf[0] != 0.5 {
			t.Errorf("%d-bit: sample = %v, want 0.5", tt.bitDepth, buf[0])
		}
	}
}

func TestSource_Signed8(t *testing.T) {
	t.Parallel()

	// 193 is the unsigned byte of -63.
	samples := []int{64, 193, 0, 128}
	want := []float32{0.5, -63.0 / 128, 0, -1}

	src := NewSource(&mockReader{channels: 1, samples: samples}, 8000, 1, 8).WithSigned8()
	buf := make([]float32, len(samples))
	if _, err := src.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], w)
		}
	}

	// Deeper samples are left alone.
	src = NewSource(&mockReader{channels: 1, samples: []int{193}}, 8000, 1, 16).WithSigned8()
	if _, err := src.ReadSamples(buf[:1]); err != nil {
		t.Fatalf("16-bit ReadSamples() error = %v", err)
	}
	if buf[0] != 193.0/32768 {
		t.Errorf("16-bit sample = %v, want %v", buf[0], 193.0/32768)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad chunk")
	src := NewSource(&mockReader{channels: 1, err: boom}, 8000, 1, 16)

	if _, err := src.ReadSamples(make([]float32, 8)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_EmptyDst(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{channels: 1, samples: []int{1}}, 8000, 1, 16)

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096 before first read", src.BufSize())
	}
}

func TestWriteBlock(t *testing.T) {
	t.Parallel()

	b, _ := block.NewPerChannel[float32](2, 2)
	_ = b.FillChannel(0, 1)
	_ = b.FillChannel(1, -1)

	enc := &mockEncoder{}
	if err := WriteBlock(enc, b, 44100, 16); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}

	if !enc.closed {
		t.Error("encoder not closed")
	}
	want := []int{32767, -32767, 32767, -32767}
	for i, w := range want {
		if enc.written.Data[i] != w {
			t.Errorf("Data[%d] = %d, want %d", i, enc.written.Data[i], w)
		}
	}
}

func TestWriteBlock_WriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	b, _ := block.NewInterleaved[float64](1, 1)
	enc := &mockEncoder{writeErr: boom}

	if err := WriteBlock(enc, b, 8000, 16); !errors.Is(err, boom) {
		t.Errorf("WriteBlock() error = %v, want %v", err, boom)
	}
	if !enc.closed {
		t.Error("encoder not closed after failed write")
	}
}
