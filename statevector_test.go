package qpi

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateVectorKernels(t *testing.T) {
	Convey("Given a fresh statevector", t, func() {
		s := NewStateVector(2)

		So(real(s.Amplitudes[0]), ShouldEqual, 1.0)
		So(cmplx.Abs(s.Amplitudes[1]), ShouldEqual, 0.0)

		Convey("Hadamard creates an equal superposition", func() {
			s.ApplyH(0)
			So(real(s.Amplitudes[0]), ShouldAlmostEqual, 1/math.Sqrt2)
			So(real(s.Amplitudes[1]), ShouldAlmostEqual, 1/math.Sqrt2)
			So(real(s.Amplitudes[2]), ShouldAlmostEqual, 0)

			Convey("and two Hadamards restore the basis state", func() {
				s.ApplyH(0)
				So(real(s.Amplitudes[0]), ShouldAlmostEqual, 1)
				So(cmplx.Abs(s.Amplitudes[1]), ShouldAlmostEqual, 0)
			})
		})

		Convey("X flips the addressed qubit", func() {
			s.ApplyX(1)
			So(cmplx.Abs(s.Amplitudes[0]), ShouldEqual, 0.0)
			So(real(s.Amplitudes[2]), ShouldEqual, 1.0)
		})

		Convey("Controlled phase only touches the |11⟩ amplitude", func() {
			s.ApplyX(0)
			s.ApplyX(1)
			s.ApplyCP(0, 1, math.Pi/2)
			So(real(s.Amplitudes[3]), ShouldAlmostEqual, 0)
			So(imag(s.Amplitudes[3]), ShouldAlmostEqual, 1)

			Convey("while a cleared control leaves the state alone", func() {
				s2 := NewStateVector(2)
				s2.ApplyX(1)
				s2.ApplyCP(0, 1, math.Pi/2)
				So(real(s2.Amplitudes[2]), ShouldEqual, 1.0)
			})
		})

		Convey("Swap exchanges qubit amplitudes", func() {
			s.ApplyX(0)
			s.ApplySwap(0, 1)
			So(cmplx.Abs(s.Amplitudes[1]), ShouldEqual, 0.0)
			So(real(s.Amplitudes[2]), ShouldEqual, 1.0)
		})

		Convey("Probabilities stay normalized through a circuit", func() {
			c := NewCircuit(2, 2)
			c.H(0)
			c.H(1)
			c.CP(1, 0, 1)
			c.Swap(0, 1)
			s.Evolve(c)

			total := 0.0
			for _, p := range s.Probabilities() {
				total += p
			}
			So(total, ShouldAlmostEqual, 1.0)
		})
	})
}

func TestSampler(t *testing.T) {
	Convey("Given a sampler over a superposed state", t, func() {
		s := NewStateVector(2)
		s.ApplyH(0)
		s.ApplyH(1)

		Convey("A fixed seed reproduces the same draw sequence", func() {
			a := NewSampler(s, 42)
			b := NewSampler(s, 42)
			for i := 0; i < 100; i++ {
				So(a.Sample(), ShouldEqual, b.Sample())
			}
		})

		Convey("Draws stay within the basis range and cover it", func() {
			sm := NewSampler(s, 7)
			seen := make(map[int]bool)
			for i := 0; i < 1000; i++ {
				idx := sm.Sample()
				So(idx, ShouldBeBetweenOrEqual, 0, 3)
				seen[idx] = true
			}
			So(len(seen), ShouldEqual, 4)
		})

		Convey("A basis state always samples itself", func() {
			basis := NewStateVector(2)
			basis.ApplyX(1)
			sm := NewSampler(basis, 1)
			for i := 0; i < 50; i++ {
				So(sm.Sample(), ShouldEqual, 2)
			}
		})
	})
}
