package qpi

import (
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPreparePhaseState(t *testing.T) {
	Convey("Given the state preparation builder", t, func() {
		for _, n := range []int{2, 3, 5, 8, 12} {
			c := NewCircuit(n+1, n)
			PreparePhaseState(c, n)

			Convey("For "+strconv.Itoa(n)+" qubits it emits 2^n - 1 controlled-phase gates", func() {
				So(c.Count(GateCP), ShouldEqual, (1<<n)-1)
				So(c.Count(GateH), ShouldEqual, n)
				So(c.Count(GateX), ShouldEqual, 1)
			})
		}

		Convey("Every rotation is one radian onto the auxiliary qubit", func() {
			n := 4
			c := NewCircuit(n+1, n)
			PreparePhaseState(c, n)

			reps := make(map[int]int)
			for _, g := range c.Gates {
				if g.Kind != GateCP {
					continue
				}
				So(g.Theta, ShouldEqual, 1.0)
				So(g.Target, ShouldEqual, n)
				reps[g.Control]++
			}
			// Qubit q carries 2^q repetitions.
			So(reps, ShouldResemble, map[int]int{0: 1, 1: 2, 2: 4, 3: 8})
		})

		Convey("The X gate lands on the auxiliary qubit", func() {
			c := NewCircuit(3, 2)
			PreparePhaseState(c, 2)
			for _, g := range c.Gates {
				if g.Kind == GateX {
					So(g.Target, ShouldEqual, 2)
				}
			}
		})
	})
}
