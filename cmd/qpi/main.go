package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qpi"
)

var (
	backendName string
	shots       int
	optLevel    int
	seed        int64
	outDir      string
	noDiagrams  bool
	minQubits   int
	maxQubits   int
	qubits      int
	plotFile    string
)

var rootCmd = &cobra.Command{
	Use:   "qpi",
	Short: "Estimate π with quantum phase estimation",
	Long: `qpi estimates the constant π by running a quantum phase estimation
circuit on a statevector simulator (or a configured remote device),
reading the modal measurement outcome as a phase and inverting
π = 1/(2·theta).`,
	SilenceUsage: true,
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run a single qubit count and print the estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, cfg, err := setup()
		if err != nil {
			return err
		}
		est, err := qpi.NewEstimator(backend, cfg).Estimate(cmd.Context(), qubits)
		if err != nil {
			return err
		}
		errnie.Info(
			"%d qubits: mode %s (%d/%d shots), theta %v, entropy %.4f nats",
			est.Qubits, est.Mode, est.ModeCount, cfg.Shots, est.Theta, est.Entropy,
		)
		fmt.Println(est.Value)
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep qubit counts and plot the convergence toward π",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, cfg, err := setup()
		if err != nil {
			return err
		}
		estimates, err := qpi.NewEstimator(backend, cfg).Sweep(cmd.Context())
		if err != nil {
			return err
		}
		for _, est := range estimates {
			fmt.Println(est.Value)
		}

		path := plotFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.OutputDir, path)
		}
		if err := qpi.SaveConvergencePlot(estimates, path); err != nil {
			return err
		}
		log.Printf("convergence plot written to %s", path)

		if sim, ok := backend.(*qpi.Simulator); ok {
			errnie.Info("backend metrics: %v", sim.Metrics().ExportMetrics())
		}
		return nil
	},
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the available execution backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := buildRegistry()
		for _, name := range reg.List() {
			b, err := reg.Get(name)
			if err != nil {
				return err
			}
			kind := "device"
			if b.IsSimulator() {
				kind = "simulator"
			}
			fmt.Printf("%-16s %-10s up to %d qubits\n", name, kind, b.MaxQubits())
		}
		return nil
	},
}

// buildRegistry registers the local simulator and, when credentials are
// present, the remote device endpoint.
func buildRegistry() *qpi.Registry {
	reg := qpi.NewRegistry()
	reg.Register(qpi.NewSimulator())
	if account, err := qpi.LoadAccount(); err == nil {
		reg.Register(qpi.NewDevice(account, "device", 27))
	}
	return reg
}

func setup() (qpi.Backend, *qpi.Config, error) {
	cfg := qpi.NewConfig()
	cfg.Shots = shots
	cfg.OptimizationLevel = optLevel
	cfg.Seed = seed
	cfg.OutputDir = outDir
	cfg.SaveDiagrams = !noDiagrams
	cfg.MinQubits = minQubits
	cfg.MaxQubits = maxQubits
	cfg.Backend = backendName

	backend, err := buildRegistry().Get(backendName)
	if err != nil {
		return nil, nil, err
	}
	return backend, cfg, nil
}

func main() {
	defaults := qpi.NewConfig()

	rootCmd.PersistentFlags().StringVar(&backendName, "backend", defaults.Backend, "execution backend name")
	rootCmd.PersistentFlags().IntVar(&shots, "shots", defaults.Shots, "shots per circuit execution")
	rootCmd.PersistentFlags().IntVar(&optLevel, "opt-level", defaults.OptimizationLevel, "circuit optimization level (0-2)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "simulator sampling seed (0 = nondeterministic)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", defaults.OutputDir, "directory for circuit and plot artifacts")
	rootCmd.PersistentFlags().BoolVar(&noDiagrams, "no-diagrams", false, "skip per-circuit diagram artifacts")

	estimateCmd.Flags().IntVar(&qubits, "qubits", 8, "number of estimation qubits")
	sweepCmd.Flags().IntVar(&minQubits, "min", defaults.MinQubits, "first qubit count of the sweep")
	sweepCmd.Flags().IntVar(&maxQubits, "max", defaults.MaxQubits, "last qubit count of the sweep")
	sweepCmd.Flags().StringVar(&plotFile, "plot", "convergence.png", "convergence plot filename")

	rootCmd.AddCommand(estimateCmd, sweepCmd, backendsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
