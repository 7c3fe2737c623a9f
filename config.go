package qpi

import "time"

// Config collects the tunable execution parameters. The defaults mirror
// the canonical demo run: 10000 shots, no optimization, qubit counts 2
// through 12.
type Config struct {
	Shots             int
	OptimizationLevel int
	MinQubits         int
	MaxQubits         int
	Backend           string
	OutputDir         string
	SaveDiagrams      bool
	Seed              int64
	PollInterval      time.Duration
}

func NewConfig() *Config {
	return &Config{
		Shots:             10000,
		OptimizationLevel: 0,
		MinQubits:         2,
		MaxQubits:         12,
		Backend:           "statevector",
		OutputDir:         ".",
		SaveDiagrams:      true,
		PollInterval:      100 * time.Millisecond,
	}
}
