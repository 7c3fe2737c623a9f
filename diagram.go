package qpi

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

/*
Diagram renders the circuit as a text drawing, one wire per qubit and one
column per gate. Controlled-phase gates show a control dot and a P box,
swaps a pair of crosses, barriers a full-height fence. Good enough to eye
the structure of a circuit before submitting it.
*/
func (c *Circuit) Diagram() string {
	const cell = 3
	rows := make([]strings.Builder, c.NumQubits)
	for q := 0; q < c.NumQubits; q++ {
		fmt.Fprintf(&rows[q], "q%-2d: ", q)
	}

	put := func(q int, symbol string) {
		pad := cell - utf8.RuneCountInString(symbol)
		if pad > 0 {
			rows[q].WriteString(strings.Repeat("─", pad))
		}
		rows[q].WriteString(symbol)
	}
	skip := func(q int) {
		rows[q].WriteString(strings.Repeat("─", cell))
	}

	for _, g := range c.Gates {
		for q := 0; q < c.NumQubits; q++ {
			switch {
			case g.Kind == GateBarrier:
				put(q, "░")
			case g.Kind == GateH && q == g.Target:
				put(q, "H")
			case g.Kind == GateX && q == g.Target:
				put(q, "X")
			case g.Kind == GateCP && q == g.Control:
				put(q, "●")
			case g.Kind == GateCP && q == g.Target:
				put(q, "P")
			case g.Kind == GateSwap && (q == g.Control || q == g.Target):
				put(q, "×")
			case g.Kind == GateMeasure && q == g.Target:
				put(q, "M")
			default:
				skip(q)
			}
		}
	}

	var out strings.Builder
	for q := 0; q < c.NumQubits; q++ {
		out.WriteString(rows[q].String())
		out.WriteByte('\n')
	}
	return out.String()
}

// SaveDiagram writes the text drawing to path.
func (c *Circuit) SaveDiagram(path string) error {
	if err := os.WriteFile(path, []byte(c.Diagram()), 0o644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	return nil
}
