package qpi

import (
	"fmt"
	"strings"
)

// QASM serializes the circuit as OpenQASM 2.0, the wire format device
// backends accept.
func (c *Circuit) QASM() string {
	var b strings.Builder

	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&b, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&b, "creg c[%d];\n\n", c.NumClbits)

	for _, g := range c.Gates {
		switch g.Kind {
		case GateH:
			fmt.Fprintf(&b, "h q[%d];\n", g.Target)
		case GateX:
			fmt.Fprintf(&b, "x q[%d];\n", g.Target)
		case GateCP:
			fmt.Fprintf(&b, "cp(%.17g) q[%d],q[%d];\n", g.Theta, g.Control, g.Target)
		case GateSwap:
			fmt.Fprintf(&b, "swap q[%d],q[%d];\n", g.Control, g.Target)
		case GateBarrier:
			b.WriteString("barrier q;\n")
		case GateMeasure:
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", g.Target, g.Clbit)
		}
	}

	return b.String()
}
