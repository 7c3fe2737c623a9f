package qpi

import (
	"sync"
	"time"
)

// Metrics tracks backend execution statistics. Guarded for callers that
// inspect while a run is in flight, though the sweep itself is sequential.
type Metrics struct {
	mu                sync.RWMutex
	JobCount          int64
	FailedJobs        int64
	TotalJobTime      time.Duration
	AverageJobLatency time.Duration
	TotalShots        int64
	LastJobAt         time.Time
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordJob(start time.Time, shots int, success bool) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.JobCount++
	if !success {
		m.FailedJobs++
	}
	m.TotalJobTime += duration
	m.AverageJobLatency = m.TotalJobTime / time.Duration(m.JobCount)
	m.TotalShots += int64(shots)
	m.LastJobAt = time.Now()
}

// ExportMetrics returns a snapshot suitable for logging or display.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shotsPerSecond := 0.0
	if m.TotalJobTime > 0 {
		shotsPerSecond = float64(m.TotalShots) / m.TotalJobTime.Seconds()
	}
	return map[string]interface{}{
		"job_count":        m.JobCount,
		"failed_jobs":      m.FailedJobs,
		"avg_latency_ms":   m.AverageJobLatency.Milliseconds(),
		"total_shots":      m.TotalShots,
		"shots_per_second": shotsPerSecond,
	}
}
