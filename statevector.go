package qpi

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
)

/*
StateVector holds the full complex amplitude vector of a register. Qubit q
is bit q of the basis-state index, so amplitude indices read little-endian.
Gates are applied in place with bitmask kernels rather than materialized
operator matrices.
*/
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector creates the |0...0⟩ state on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// ApplyH applies a Hadamard gate to qubit q.
func (s *StateVector) ApplyH(q int) {
	// H = 1/√2 * [1  1]
	//            [1 -1]
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = factor * (a + b)
			s.Amplitudes[j] = factor * (a - b)
		}
	}
}

// ApplyX applies a Pauli-X gate to qubit q.
func (s *StateVector) ApplyX(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// ApplyCP applies a controlled-phase rotation of theta radians: amplitudes
// with both qubits set pick up e^(i·theta).
func (s *StateVector) ApplyCP(control, target int, theta float64) {
	phase := cmplx.Exp(complex(0, theta))
	mask := 1<<control | 1<<target
	for i := range s.Amplitudes {
		if i&mask == mask {
			s.Amplitudes[i] *= phase
		}
	}
}

// ApplySwap exchanges qubits a and b.
func (s *StateVector) ApplySwap(a, b int) {
	bitA := 1 << a
	bitB := 1 << b
	for i := range s.Amplitudes {
		if i&bitA != 0 && i&bitB == 0 {
			j := (i &^ bitA) | bitB
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Probabilities returns |amplitude|² per basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return probs
}

/*
Sampler draws basis-state indices from a statevector's probability
distribution. The cumulative table is built once so repeated shots are a
binary search each.
*/
type Sampler struct {
	cumulative []float64
	rng        *rand.Rand
}

// NewSampler prepares a sampler over the given state. Seed 0 selects a
// nondeterministic source.
func NewSampler(s *StateVector, seed int64) *Sampler {
	probs := s.Probabilities()
	cumulative := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cumulative[i] = total
	}
	// Normalize so rounding drift in the kernels cannot push the last
	// bucket below 1.
	if total > 0 {
		for i := range cumulative {
			cumulative[i] /= total
		}
	}
	src := rand.NewSource(seed)
	if seed == 0 {
		src = rand.NewSource(rand.Int63())
	}
	return &Sampler{cumulative: cumulative, rng: rand.New(src)}
}

// Sample draws one basis-state index.
func (sm *Sampler) Sample() int {
	r := sm.rng.Float64()
	idx := sort.SearchFloat64s(sm.cumulative, r)
	if idx >= len(sm.cumulative) {
		idx = len(sm.cumulative) - 1
	}
	return idx
}

// Evolve applies the circuit's gates to the state in order. Barriers and
// measurements are no-ops here; measurement is the sampler's concern.
func (s *StateVector) Evolve(c *Circuit) {
	for _, g := range c.Gates {
		switch g.Kind {
		case GateH:
			s.ApplyH(g.Target)
		case GateX:
			s.ApplyX(g.Target)
		case GateCP:
			s.ApplyCP(g.Control, g.Target, g.Theta)
		case GateSwap:
			s.ApplySwap(g.Control, g.Target)
		case GateBarrier, GateMeasure:
		}
	}
}
