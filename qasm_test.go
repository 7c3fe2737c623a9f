package qpi

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQASM(t *testing.T) {
	Convey("Given a small circuit", t, func() {
		c := NewCircuit(3, 2)
		c.H(0)
		c.X(2)
		c.CP(0.5, 0, 2)
		c.Swap(0, 1)
		c.Barrier()
		c.Measure(0, 0)
		c.Measure(1, 1)

		qasm := c.QASM()

		Convey("The header declares version and registers", func() {
			So(qasm, ShouldStartWith, "OPENQASM 2.0;\n")
			So(qasm, ShouldContainSubstring, `include "qelib1.inc";`)
			So(qasm, ShouldContainSubstring, "qreg q[3];")
			So(qasm, ShouldContainSubstring, "creg c[2];")
		})

		Convey("Every gate serializes in order", func() {
			body := qasm[strings.Index(qasm, "h q[0];"):]
			lines := strings.Split(strings.TrimSpace(body), "\n")
			So(lines, ShouldResemble, []string{
				"h q[0];",
				"x q[2];",
				"cp(0.5) q[0],q[2];",
				"swap q[0],q[1];",
				"barrier q;",
				"measure q[0] -> c[0];",
				"measure q[1] -> c[1];",
			})
		})

		Convey("Rotation angles survive a round trip textually", func() {
			c2 := NewCircuit(2, 1)
			c2.CP(-1.5707963267948966, 0, 1)
			So(c2.QASM(), ShouldContainSubstring, "cp(-1.5707963267948966) q[0],q[1];")
		})
	})

	Convey("The full estimation circuit serializes without loss", t, func() {
		c := BuildCircuit(3)
		qasm := c.QASM()
		So(strings.Count(qasm, "cp("), ShouldEqual, (1<<3)-1+3*2/2)
		So(strings.Count(qasm, "measure"), ShouldEqual, 3)
		So(strings.Count(qasm, "barrier q;"), ShouldEqual, 2)
	})
}
