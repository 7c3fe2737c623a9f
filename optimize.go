package qpi

import "math"

const twoPi = 2 * math.Pi

/*
Optimize rewrites a circuit according to the requested optimization level
and returns the result; the input circuit is never mutated.

Level 0 is a strict no-op so the emitted gate sequence matches the
documented construction exactly. Level 1 cancels adjacent self-inverse
pairs (H·H, X·X, swap·swap on the same qubits). Level 2 additionally
merges runs of adjacent controlled-phase rotations on the same qubit pair,
dropping any merged rotation that lands on a multiple of 2π.

Barriers and measurements are never removed and fence every rewrite, since
only literally adjacent gates are ever combined.
*/
func Optimize(c *Circuit, level int) *Circuit {
	if level <= 0 {
		return c
	}

	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)

	for {
		next := cancelPairs(gates)
		if level >= 2 {
			next = mergePhases(next)
		}
		if len(next) == len(gates) {
			gates = next
			break
		}
		gates = next
	}

	return &Circuit{NumQubits: c.NumQubits, NumClbits: c.NumClbits, Gates: gates}
}

func selfInverse(kind GateKind) bool {
	return kind == GateH || kind == GateX || kind == GateSwap
}

// samePair reports whether two gates act on the same (unordered) qubits.
func samePair(a, b Gate) bool {
	if a.Control < 0 && b.Control < 0 {
		return a.Target == b.Target
	}
	return (a.Control == b.Control && a.Target == b.Target) ||
		(a.Control == b.Target && a.Target == b.Control)
}

func cancelPairs(gates []Gate) []Gate {
	out := make([]Gate, 0, len(gates))
	for i := 0; i < len(gates); i++ {
		g := gates[i]
		if i+1 < len(gates) && g.Kind == gates[i+1].Kind && selfInverse(g.Kind) && samePair(g, gates[i+1]) {
			i++ // drop both
			continue
		}
		out = append(out, g)
	}
	return out
}

func mergePhases(gates []Gate) []Gate {
	out := make([]Gate, 0, len(gates))
	for i := 0; i < len(gates); i++ {
		g := gates[i]
		if g.Kind != GateCP {
			out = append(out, g)
			continue
		}
		theta := g.Theta
		for i+1 < len(gates) && gates[i+1].Kind == GateCP && samePair(g, gates[i+1]) {
			theta += gates[i+1].Theta
			i++
		}
		theta = math.Mod(theta, twoPi)
		if math.Abs(theta) < 1e-12 || math.Abs(math.Abs(theta)-twoPi) < 1e-12 {
			continue
		}
		g.Theta = theta
		out = append(out, g)
	}
	return out
}
