package qpi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/theapemachine/errnie"
)

// ErrUnknownBackend is returned by the registry for unregistered names.
var ErrUnknownBackend = errors.New("unknown backend")

// RunOptions carries the per-submission execution parameters.
type RunOptions struct {
	Shots             int
	OptimizationLevel int
	// Seed selects the simulator's sampling stream; 0 means
	// nondeterministic. Device backends ignore it.
	Seed int64
}

// Result is the outcome of one completed job.
type Result struct {
	JobID   string
	Backend string
	Counts  Counts
	Elapsed time.Duration
}

// Backend executes circuits. Submit enqueues a job; Status and Result are
// polled afterwards. A local simulator completes work inside Submit but
// still reports through the same lifecycle.
type Backend interface {
	Name() string
	MaxQubits() int
	IsSimulator() bool
	Submit(ctx context.Context, c *Circuit, opts RunOptions) (*Job, error)
	Status(ctx context.Context, jobID string) (JobStatus, error)
	Result(ctx context.Context, jobID string) (*Result, error)
}

/*
Execute submits a circuit and blocks until the job finishes, polling and
reporting status along the way. Backend failures propagate to the caller
unrecovered; there is no retry path.
*/
func Execute(ctx context.Context, b Backend, c *Circuit, opts RunOptions, poll time.Duration) (*Result, error) {
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}

	job, err := b.Submit(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("submit to %s: %w", b.Name(), err)
	}
	errnie.Info("job %s submitted to %s (%d shots)", job.ID, b.Name(), opts.Shots)

	last := JobStatus("")
	for {
		status, err := b.Status(ctx, job.ID)
		if err != nil {
			return nil, fmt.Errorf("status of job %s: %w", job.ID, err)
		}
		if status != last {
			errnie.Info("job %s: %s", job.ID, status)
			last = status
		}
		switch status {
		case JobCompleted:
			return b.Result(ctx, job.ID)
		case JobFailed:
			return nil, fmt.Errorf("job %s failed on %s", job.ID, b.Name())
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(poll):
		}
	}
}

// Registry holds named backends. The zero value is not usable; construct
// with NewRegistry.
type Registry struct {
	backends map[string]Backend
}

func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend under its own name.
func (r *Registry) Register(b Backend) {
	r.backends[b.Name()] = b
}

// Get looks up a backend by name.
func (r *Registry) Get(name string) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return b, nil
}

// List returns the registered backend names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
