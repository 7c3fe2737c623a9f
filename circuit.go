package qpi

// GateKind identifies a circuit operation.
type GateKind string

const (
	GateH       GateKind = "h"
	GateX       GateKind = "x"
	GateCP      GateKind = "cp"
	GateSwap    GateKind = "swap"
	GateBarrier GateKind = "barrier"
	GateMeasure GateKind = "measure"
)

// Gate is a single operation placed on the circuit. Control is -1 for
// single-qubit gates, Clbit is -1 for everything but measurements.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
	Clbit   int
}

/*
Circuit is an ordered sequence of gate operations over a fixed number of
qubits and classical bits. It is built once, append-only, and treated as
immutable after construction; backends receive it as-is.
*/
type Circuit struct {
	NumQubits int
	NumClbits int
	Gates     []Gate
}

// NewCircuit creates an empty circuit with the given register sizes.
func NewCircuit(qubits, clbits int) *Circuit {
	return &Circuit{
		NumQubits: qubits,
		NumClbits: clbits,
		Gates:     make([]Gate, 0),
	}
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) {
	c.Gates = append(c.Gates, Gate{Kind: GateH, Target: q, Control: -1, Clbit: -1})
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) {
	c.Gates = append(c.Gates, Gate{Kind: GateX, Target: q, Control: -1, Clbit: -1})
}

// CP appends a controlled-phase rotation of theta radians between control
// and target. The gate is symmetric in its two qubits.
func (c *Circuit) CP(theta float64, control, target int) {
	c.Gates = append(c.Gates, Gate{Kind: GateCP, Target: target, Control: control, Theta: theta, Clbit: -1})
}

// Swap appends a swap of qubits a and b.
func (c *Circuit) Swap(a, b int) {
	c.Gates = append(c.Gates, Gate{Kind: GateSwap, Target: b, Control: a, Clbit: -1})
}

// Barrier appends a scheduling fence across all qubits. It has no effect on
// the state; optimization passes never rewrite across it.
func (c *Circuit) Barrier() {
	c.Gates = append(c.Gates, Gate{Kind: GateBarrier, Target: -1, Control: -1, Clbit: -1})
}

// Measure appends a measurement of qubit q into classical bit clbit.
func (c *Circuit) Measure(q, clbit int) {
	c.Gates = append(c.Gates, Gate{Kind: GateMeasure, Target: q, Control: -1, Clbit: clbit})
}

// Count returns the number of gates of the given kind.
func (c *Circuit) Count(kind GateKind) int {
	n := 0
	for _, g := range c.Gates {
		if g.Kind == kind {
			n++
		}
	}
	return n
}

// ClbitMap returns, per classical bit, the qubit measured into it, or -1
// when no measurement targets that bit. A later measurement into the same
// bit wins, matching execution order.
func (c *Circuit) ClbitMap() []int {
	m := make([]int, c.NumClbits)
	for i := range m {
		m[i] = -1
	}
	for _, g := range c.Gates {
		if g.Kind == GateMeasure && g.Clbit >= 0 && g.Clbit < c.NumClbits {
			m[g.Clbit] = g.Target
		}
	}
	return m
}
