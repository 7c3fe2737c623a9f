package qpi

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const simulatorMaxQubits = 26 // 2^26 complex128 amplitudes ≈ 1 GiB

/*
Simulator is the local statevector backend. Submit evolves the full
amplitude vector through the circuit, samples the measured bits shot by
shot, and completes synchronously; Status and Result then serve the stored
outcome. The session is shared but only ever used sequentially, so a single
mutex around the job table suffices.
*/
type Simulator struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	results map[string]*Result
	metrics *Metrics
}

func NewSimulator() *Simulator {
	return &Simulator{
		jobs:    make(map[string]*Job),
		results: make(map[string]*Result),
		metrics: newMetrics(),
	}
}

func (s *Simulator) Name() string      { return "statevector" }
func (s *Simulator) MaxQubits() int    { return simulatorMaxQubits }
func (s *Simulator) IsSimulator() bool { return true }

// Metrics exposes the backend's execution metrics.
func (s *Simulator) Metrics() *Metrics { return s.metrics }

func (s *Simulator) Submit(ctx context.Context, c *Circuit, opts RunOptions) (*Job, error) {
	if c.NumQubits > s.MaxQubits() {
		return nil, fmt.Errorf("circuit needs %d qubits, simulator supports %d", c.NumQubits, s.MaxQubits())
	}
	if opts.Shots <= 0 {
		return nil, fmt.Errorf("shot count must be positive, got %d", opts.Shots)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	job := newJob(s.Name())
	job.Status = JobRunning
	start := time.Now()

	run := Optimize(c, opts.OptimizationLevel)
	state := NewStateVector(run.NumQubits)
	state.Evolve(run)

	counts, err := sampleCounts(state, run, opts.Shots, opts.Seed)
	if err != nil {
		job.Status = JobFailed
		s.metrics.recordJob(start, opts.Shots, false)
		s.store(job, nil)
		return job, nil
	}

	job.Status = JobCompleted
	s.metrics.recordJob(start, opts.Shots, true)
	s.store(job, &Result{
		JobID:   job.ID,
		Backend: s.Name(),
		Counts:  counts,
		Elapsed: time.Since(start),
	})
	return job, nil
}

func (s *Simulator) store(job *Job, res *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
	if res != nil {
		s.results[job.ID] = res
	}
}

func (s *Simulator) Status(ctx context.Context, jobID string) (JobStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return "", fmt.Errorf("no such job %q", jobID)
	}
	return job.Status, nil
}

func (s *Simulator) Result(ctx context.Context, jobID string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[jobID]
	if !ok {
		return nil, fmt.Errorf("no result for job %q", jobID)
	}
	return res, nil
}

// sampleCounts draws the requested number of shots from the evolved state
// and folds the measured qubits into classical bitstrings.
func sampleCounts(state *StateVector, c *Circuit, shots int, seed int64) (Counts, error) {
	clbits := c.ClbitMap()
	if c.NumClbits == 0 {
		return nil, fmt.Errorf("circuit has no classical bits to read out")
	}

	sampler := NewSampler(state, seed)
	counts := make(Counts)
	key := make([]byte, c.NumClbits)
	for shot := 0; shot < shots; shot++ {
		idx := sampler.Sample()
		for cl := 0; cl < c.NumClbits; cl++ {
			pos := c.NumClbits - 1 - cl // clbit n-1 leftmost
			q := clbits[cl]
			if q >= 0 && idx&(1<<q) != 0 {
				key[pos] = '1'
			} else {
				key[pos] = '0'
			}
		}
		counts[string(key)]++
	}
	return counts, nil
}
