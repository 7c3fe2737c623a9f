package qpi

import "math"

/*
InverseQFT appends the inverse quantum Fourier transform over the first n
qubits of the circuit: a reversal of qubit order by floor(n/2) swaps, then
for each qubit j the controlled-phase rotations -π/2^(j-m) from every
earlier qubit m, followed by a Hadamard on j. This reads phase information
encoded in the register amplitudes back into the computational basis.

Emits exactly n(n-1)/2 controlled-phase gates, n Hadamards and floor(n/2)
swaps.
*/
func InverseQFT(c *Circuit, n int) {
	for q := 0; q < n/2; q++ {
		c.Swap(q, n-1-q)
	}
	for j := 0; j < n; j++ {
		for m := 0; m < j; m++ {
			c.CP(-math.Pi/math.Pow(2, float64(j-m)), m, j)
		}
		c.H(j)
	}
}
