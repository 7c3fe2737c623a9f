package qpi

/*
PreparePhaseState appends the phase-encoding preparation for estimating the
eigenphase of a unit rotation. The first n qubits go into an equal
superposition, the auxiliary qubit n is flipped to |1⟩, then estimation
qubit q applies 2^q repetitions of a controlled-phase rotation of exactly
one radian onto the auxiliary. The auxiliary eigenstate kicks the phase
back onto the superposition, where the inverse transform can read it out.

Emits 2^n - 1 controlled-phase gates in total.
*/
func PreparePhaseState(c *Circuit, n int) {
	for q := 0; q < n; q++ {
		c.H(q)
	}
	c.X(n)
	for x := 0; x < n; x++ {
		q := n - 1 - x
		reps := 1 << q
		for i := 0; i < reps; i++ {
			c.CP(1, q, n)
		}
	}
}
