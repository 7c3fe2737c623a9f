package qpi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"
)

// ErrDegenerateMode marks a run whose most frequent outcome decoded to
// zero: theta is then 0 and 1/(2·theta) has no value.
var ErrDegenerateMode = errors.New("degenerate all-zero measurement mode")

// Estimate is the outcome of one qubit count: the modal bitstring, its
// decoded integer, the phase theta = k/2^n and the resulting π estimate.
type Estimate struct {
	Qubits    int
	Mode      string
	ModeCount int
	ModeInt   int64
	Theta     float64
	Value     float64
	Entropy   float64
	Elapsed   time.Duration
}

/*
Estimator runs the phase-estimation circuit for a given qubit count on a
backend and converts the modal readout into a π estimate. The eigenphase
encoded by the preparation is 1/(2π), so inverting theta = k/2^n through
π = 1/(2·theta) recovers the constant.
*/
type Estimator struct {
	backend Backend
	config  *Config
}

func NewEstimator(backend Backend, config *Config) *Estimator {
	if config == nil {
		config = NewConfig()
	}
	return &Estimator{backend: backend, config: config}
}

// BuildCircuit assembles the full circuit for n estimation qubits: state
// preparation, a barrier, the inverse transform, another barrier, then
// measurement of the first n qubits into n classical bits. The barriers
// are scheduling hints only.
func BuildCircuit(n int) *Circuit {
	c := NewCircuit(n+1, n)
	PreparePhaseState(c, n)
	c.Barrier()
	InverseQFT(c, n)
	c.Barrier()
	for q := 0; q < n; q++ {
		c.Measure(q, q)
	}
	return c
}

// Estimate runs one qubit count end to end.
func (e *Estimator) Estimate(ctx context.Context, n int) (*Estimate, error) {
	if n < 1 {
		return nil, fmt.Errorf("qubit count must be positive, got %d", n)
	}

	c := BuildCircuit(n)
	if e.config.SaveDiagrams && n < 10 {
		if err := e.saveArtifacts(c, n); err != nil {
			return nil, err
		}
	}

	opts := RunOptions{
		Shots:             e.config.Shots,
		OptimizationLevel: e.config.OptimizationLevel,
		Seed:              e.config.Seed,
	}
	res, err := Execute(ctx, e.backend, c, opts, e.config.PollInterval)
	if err != nil {
		return nil, fmt.Errorf("%d qubits: %w", n, err)
	}

	mode, count := res.Counts.Mode()
	k, err := res.Counts.ModeInt()
	if err != nil {
		return nil, fmt.Errorf("%d qubits: decode mode %q: %w", n, mode, err)
	}
	if k == 0 {
		return nil, fmt.Errorf("%d qubits: %w", n, ErrDegenerateMode)
	}

	theta := float64(k) / float64(uint64(1)<<uint(n))
	return &Estimate{
		Qubits:    n,
		Mode:      mode,
		ModeCount: count,
		ModeInt:   k,
		Theta:     theta,
		Value:     1 / (2 * theta),
		Entropy:   res.Counts.Entropy(),
		Elapsed:   res.Elapsed,
	}, nil
}

func (e *Estimator) saveArtifacts(c *Circuit, n int) error {
	dir := e.config.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	diagram := filepath.Join(dir, fmt.Sprintf("circuit_%d.txt", n))
	if err := c.SaveDiagram(diagram); err != nil {
		return err
	}
	qasm := filepath.Join(dir, fmt.Sprintf("circuit_%d.qasm", n))
	if err := os.WriteFile(qasm, []byte(c.QASM()), 0o644); err != nil {
		return err
	}
	log.Printf("saved circuit artifacts for %d qubits to %s", n, dir)
	return nil
}

// Resolution returns the phase resolution 1/2^n available at n qubits.
func Resolution(n int) float64 {
	return 1 / math.Pow(2, float64(n))
}
