// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/internal/audiotest"
)

func TestReadBlock_WholeSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 1000).WithBufSize(64)

	b, err := ReadBlock(src, 0)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	if b.Mode() != block.OwnedInterleaved {
		t.Errorf("Mode() = %v, want owned interleaved", b.Mode())
	}
	if b.Channels() != 2 || b.Frames() != 1000 {
		t.Fatalf("shape = %dx%d, want 2x1000", b.Channels(), b.Frames())
	}

	for _, idx := range []struct{ c, f int }{{0, 0}, {1, 0}, {0, 999}, {1, 500}} {
		v, _ := b.Sample(idx.c, idx.f)
		if want := float32(idx.f*2 + idx.c); v != want {
			t.Errorf("Sample(%d, %d) = %v, want %v", idx.c, idx.f, v, want)
		}
	}
}

func TestReadBlock_MaxFrames(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 3, 100).WithBufSize(7)

	b, err := ReadBlock(src, 10)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	if b.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", b.Frames())
	}
	if v, _ := b.Sample(2, 9); v != 29 {
		t.Errorf("Sample(2, 9) = %v, want 29", v)
	}
}

func TestReadBlock_LargeMaxFrames(t *testing.T) {
	t.Parallel()

	for _, maxFrames := range []int{math.MaxInt / 2, math.MaxInt} {
		src := audiotest.NewRampSource(8000, 2, 10)

		b, err := ReadBlock(src, maxFrames)
		if err != nil {
			t.Fatalf("ReadBlock(%d) error = %v", maxFrames, err)
		}
		if b.Frames() != 10 {
			t.Errorf("ReadBlock(%d) Frames() = %d, want 10", maxFrames, b.Frames())
		}
		if v, _ := b.Sample(1, 9); v != 19 {
			t.Errorf("ReadBlock(%d) Sample(1, 9) = %v, want 19", maxFrames, v)
		}
	}
}

func TestReadBlock_Empty(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 0)

	if _, err := ReadBlock(src, 0); !errors.Is(err, ErrEmptySource) {
		t.Errorf("ReadBlock() error = %v, want ErrEmptySource", err)
	}
}

func TestReadBlock_NoChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 0, 10)

	if _, err := ReadBlock(src, 0); !errors.Is(err, block.ErrInvalidShape) {
		t.Errorf("ReadBlock() error = %v, want ErrInvalidShape", err)
	}
}

func TestReadBlock_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	src := audiotest.NewConstantSource(8000, 2, 100, 0.5)
	src.Err = boom
	src.FailAfter = 20

	if _, err := ReadBlock(src, 0); !errors.Is(err, boom) {
		t.Errorf("ReadBlock() error = %v, want wrapped source error", err)
	}
}

func TestReadBlock_RoundTripThroughBlockSource(t *testing.T) {
	t.Parallel()

	orig := rampBlock(t, block.OwnedPerChannel, 2, 300)

	got, err := ReadBlock(NewBlockSource(orig, 44100), 0)
	if err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}

	for c := range 2 {
		for f := range 300 {
			want, _ := orig.Sample(c, f)
			v, _ := got.Sample(c, f)
			if v != float32(want) {
				t.Fatalf("Sample(%d, %d) = %v, want %v", c, f, v, want)
			}
		}
	}
}
