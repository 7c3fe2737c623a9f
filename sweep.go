package qpi

import (
	"context"
	"fmt"

	"github.com/theapemachine/errnie"
)

/*
Sweep runs the estimator for every qubit count from MinQubits through
MaxQubits, in order, one blocking backend submission at a time. The first
failed iteration aborts the whole sweep; there is no partial-result
recovery.
*/
func (e *Estimator) Sweep(ctx context.Context) ([]Estimate, error) {
	cfg := e.config
	if cfg.MinQubits < 1 || cfg.MaxQubits < cfg.MinQubits {
		return nil, fmt.Errorf("invalid sweep range [%d, %d]", cfg.MinQubits, cfg.MaxQubits)
	}

	estimates := make([]Estimate, 0, cfg.MaxQubits-cfg.MinQubits+1)
	for n := cfg.MinQubits; n <= cfg.MaxQubits; n++ {
		est, err := e.Estimate(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("sweep aborted at %d qubits: %w", n, err)
		}
		errnie.Info(
			"%2d qubits: mode %s (%d/%d shots), theta %v, π ≈ %v",
			est.Qubits, est.Mode, est.ModeCount, cfg.Shots, est.Theta, est.Value,
		)
		estimates = append(estimates, *est)
	}
	return estimates, nil
}
