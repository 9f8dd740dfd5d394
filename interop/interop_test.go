// SPDX-License-Identifier: EPL-2.0

package interop_test

import (
	"errors"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audblock/block"
	"github.com/ik5/audblock/interop"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("ViewFloat32", func() {
	It("borrows the buffer data", func() {
		buf := &goaudio.Float32Buffer{
			Format: &goaudio.Format{NumChannels: 2, SampleRate: 44100},
			Data:   []float32{1, 1, 1, 1, 1, 1, 1, 1},
		}

		b, err := interop.ViewFloat32(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Mode()).To(Equal(block.ExternalInterleaved))
		Expect(b.Channels()).To(Equal(2))
		Expect(b.Frames()).To(Equal(4))

		Expect(b.ApplyGain(1, 0.5)).To(Succeed())
		Expect(buf.Data).To(Equal([]float32{1, 0.5, 1, 0.5, 1, 0.5, 1, 0.5}))

		buf.Data[0] = -1
		v, err := b.Sample(0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(float32(-1)))
	})

	It("drops a trailing partial frame", func() {
		buf := &goaudio.Float32Buffer{
			Format: &goaudio.Format{NumChannels: 2},
			Data:   make([]float32, 5),
		}

		b, err := interop.ViewFloat32(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Frames()).To(Equal(2))
	})

	DescribeTable("rejects unusable buffers",
		func(buf *goaudio.Float32Buffer, want error) {
			_, err := interop.ViewFloat32(buf)
			Expect(errors.Is(err, want)).To(BeTrue(), "got %v", err)
		},
		Entry("nil buffer", nil, interop.ErrNilBuffer),
		Entry("nil format", &goaudio.Float32Buffer{Data: make([]float32, 4)}, interop.ErrNoFormat),
		Entry("empty data", &goaudio.Float32Buffer{Format: &goaudio.Format{NumChannels: 2}}, block.ErrInvalidShape),
		Entry("zero channels", &goaudio.Float32Buffer{Format: &goaudio.Format{}, Data: make([]float32, 4)}, block.ErrInvalidShape),
	)
})

var _ = Describe("ViewFloat", func() {
	It("borrows float64 data", func() {
		buf := &goaudio.FloatBuffer{
			Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
			Data:   make([]float64, 8),
		}

		b, err := interop.ViewFloat(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.FillChannel(0, 0.25)).To(Succeed())
		Expect(buf.Data).To(Equal([]float64{0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25, 0.25}))
	})

	It("rejects a nil buffer", func() {
		_, err := interop.ViewFloat(nil)
		Expect(err).To(MatchError(interop.ErrNilBuffer))
	})
})

var _ = Describe("integer buffers", func() {
	It("round trips through 16-bit PCM", func() {
		b, err := block.NewPerChannel[float64](2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.FillChannel(0, 0.5)).To(Succeed())
		Expect(b.FillChannel(1, -0.5)).To(Succeed())

		ib := interop.ToIntBuffer(b, 22050, 16)
		Expect(ib.Format.NumChannels).To(Equal(2))
		Expect(ib.Format.SampleRate).To(Equal(22050))
		Expect(ib.SourceBitDepth).To(Equal(16))
		Expect(ib.Data).To(Equal([]int{16383, -16383, 16383, -16383, 16383, -16383}))

		back, err := interop.FromIntBuffer[float64](ib)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Mode()).To(Equal(block.OwnedInterleaved))

		for f := range 3 {
			l, _ := back.Sample(0, f)
			r, _ := back.Sample(1, f)
			Expect(l).To(BeNumerically("~", 0.5, 1e-4))
			Expect(r).To(BeNumerically("~", -0.5, 1e-4))
		}
	})

	It("clamps out of range samples", func() {
		b, _ := block.NewInterleaved[float32](1, 2)
		_ = b.SetSample(0, 0, 3)
		_ = b.SetSample(0, 1, -3)

		ib := interop.ToIntBuffer(b, 8000, 24)
		Expect(ib.Data).To(Equal([]int{8388607, -8388607}))
	})

	It("defaults to 16-bit when no depth is recorded", func() {
		ib := &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: 1},
			Data:   []int{-32768, 16384},
		}

		b, err := interop.FromIntBuffer[float32](ib)
		Expect(err).NotTo(HaveOccurred())
		v0, _ := b.Sample(0, 0)
		v1, _ := b.Sample(0, 1)
		Expect(v0).To(Equal(float32(-1)))
		Expect(v1).To(Equal(float32(0.5)))
	})

	It("rejects buffers without a format", func() {
		_, err := interop.FromIntBuffer[float32](&goaudio.IntBuffer{Data: []int{1}})
		Expect(err).To(MatchError(interop.ErrNoFormat))
	})
})

var _ = Describe("ToFloat32Buffer", func() {
	It("interleaves a per-channel block", func() {
		b, _ := block.NewPerChannel[float64](2, 2)
		_ = b.FillChannel(0, 1)
		_ = b.FillChannel(1, -1)

		fb := interop.ToFloat32Buffer(b, 48000)
		Expect(fb.Format.SampleRate).To(Equal(48000))
		Expect(fb.NumFrames()).To(Equal(2))
		Expect(fb.Data).To(Equal([]float32{1, -1, 1, -1}))
	})
})
