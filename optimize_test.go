package qpi

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOptimize(t *testing.T) {
	Convey("Given a circuit with redundant gates", t, func() {
		c := NewCircuit(2, 2)
		c.H(0)
		c.H(0)
		c.X(1)
		c.Swap(0, 1)
		c.Swap(1, 0)
		c.Measure(0, 0)

		Convey("Level 0 returns the circuit untouched", func() {
			out := Optimize(c, 0)
			So(out, ShouldEqual, c)
			So(len(out.Gates), ShouldEqual, 6)
		})

		Convey("Level 1 cancels adjacent self-inverse pairs", func() {
			out := Optimize(c, 1)
			So(out.Count(GateH), ShouldEqual, 0)
			So(out.Count(GateSwap), ShouldEqual, 0)
			So(out.Count(GateX), ShouldEqual, 1)
			So(out.Count(GateMeasure), ShouldEqual, 1)

			Convey("and the input circuit is not mutated", func() {
				So(len(c.Gates), ShouldEqual, 6)
			})
		})

		Convey("Cancellation cascades through newly adjacent pairs", func() {
			c2 := NewCircuit(1, 1)
			c2.H(0)
			c2.X(0)
			c2.X(0)
			c2.H(0)
			out := Optimize(c2, 1)
			So(len(out.Gates), ShouldEqual, 0)
		})
	})

	Convey("Barriers fence every rewrite", t, func() {
		c := NewCircuit(1, 1)
		c.H(0)
		c.Barrier()
		c.H(0)

		out := Optimize(c, 2)
		So(out.Count(GateH), ShouldEqual, 2)
		So(out.Count(GateBarrier), ShouldEqual, 1)
	})

	Convey("Level 2 merges adjacent controlled-phase rotations", t, func() {
		c := NewCircuit(3, 2)
		for i := 0; i < 4; i++ {
			c.CP(1, 1, 2)
		}
		out := Optimize(c, 2)
		So(out.Count(GateCP), ShouldEqual, 1)
		So(out.Gates[0].Theta, ShouldAlmostEqual, 4.0)

		Convey("while level 1 leaves rotations alone", func() {
			So(Optimize(c, 1).Count(GateCP), ShouldEqual, 4)
		})

		Convey("and a full turn drops out entirely", func() {
			c2 := NewCircuit(2, 1)
			c2.CP(math.Pi, 0, 1)
			c2.CP(math.Pi, 0, 1)
			So(Optimize(c2, 2).Count(GateCP), ShouldEqual, 0)
		})

		Convey("rotations on different pairs never merge", func() {
			c3 := NewCircuit(3, 1)
			c3.CP(1, 0, 1)
			c3.CP(1, 1, 2)
			So(Optimize(c3, 2).Count(GateCP), ShouldEqual, 2)
		})
	})

	Convey("An optimized circuit still computes the same state", t, func() {
		c := NewCircuit(3, 2)
		c.H(0)
		c.H(0)
		c.H(1)
		c.CP(0.5, 0, 1)
		c.CP(0.5, 0, 1)
		c.X(2)

		plain := NewStateVector(3)
		plain.Evolve(c)
		opt := NewStateVector(3)
		opt.Evolve(Optimize(c, 2))

		for i := range plain.Amplitudes {
			So(real(opt.Amplitudes[i]), ShouldAlmostEqual, real(plain.Amplitudes[i]))
			So(imag(opt.Amplitudes[i]), ShouldAlmostEqual, imag(plain.Amplitudes[i]))
		}
	})
}
