package qpi

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus tracks a backend submission through its lifecycle.
type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job represents one circuit submission to a backend.
type Job struct {
	ID        string
	Backend   string
	Status    JobStatus
	CreatedAt time.Time
}

func newJob(backend string) *Job {
	return &Job{
		ID:        uuid.NewString(),
		Backend:   backend,
		Status:    JobQueued,
		CreatedAt: time.Now(),
	}
}
