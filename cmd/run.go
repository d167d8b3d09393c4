package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
)

var (
	// CLI flags for a single run
	workloadPath string // Path to the workload YAML file
	algorithm    string // Scheduling algorithm; overrides the workload file
	quantum      int64  // Round Robin time quantum; overrides the workload file
	outputFormat string // table, json or yaml
	traceLevel   string // Dispatch trace verbosity
)

// runCmd simulates one workload under one algorithm
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Schedule a workload with one algorithm",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadWorkload(workloadPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		ps := spec.Build()

		cfg, err := resolveRunConfig(spec, ps, cmd.Flags().Changed("algorithm"), algorithm, quantum, traceLevel)
		if err != nil {
			logrus.Fatalf("%v", err)
		}

		res, err := sim.Run(ps, cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeResult(os.Stdout, res, outputFormat); err != nil {
			logrus.Fatalf("Writing output: %v", err)
		}
	},
}

// loadWorkload reads a workload file and rejects it before any simulation
// if its algorithm, quantum or process entries are invalid.
func loadWorkload(path string) (*sim.WorkloadSpec, error) {
	spec, err := sim.LoadWorkloadSpec(path)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("workload %s: %w", path, err)
	}
	return spec, nil
}

// resolveRunConfig merges CLI flags over the workload file's defaults.
// The --algorithm flag wins only when the user set it; a positive --quantum
// wins over the file's quantum, which wins over per-record quanta.
func resolveRunConfig(spec *sim.WorkloadSpec, ps []*sim.Process, algorithmChanged bool, algorithmFlag string, quantumFlag int64, level string) (sim.Config, error) {
	name := spec.Algorithm
	if algorithmChanged || name == "" {
		name = algorithmFlag
	}
	a, err := sim.ParseAlgorithm(name)
	if err != nil {
		return sim.Config{}, err
	}

	cfg := sim.Config{Algorithm: a, TraceLevel: trace.TraceLevel(level)}
	if cfg.RequiresQuantum() {
		explicit := spec.Quantum
		if quantumFlag > 0 {
			explicit = quantumFlag
		}
		if cfg.Quantum, err = sim.ResolveQuantum(ps, explicit); err != nil {
			return sim.Config{}, err
		}
	}
	logrus.Infof("Resolved run config: algorithm=%s quantum=%d trace=%q", cfg.Algorithm, cfg.Quantum, cfg.TraceLevel)
	return cfg, nil
}

// writeResult renders res in the requested output format.
func writeResult(w io.Writer, res *sim.Result, format string) error {
	switch format {
	case "", "table":
		printResult(w, res)
		return nil
	case "json", "yaml":
		return writeStructured(w, format, sim.NewReport(res))
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", format)
	}
}

func init() {
	runCmd.Flags().StringVarP(&workloadPath, "workload", "w", "", "Path to the workload YAML file")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Scheduling algorithm: "+sim.ValidAlgorithmNames())
	runCmd.Flags().Int64VarP(&quantum, "quantum", "q", 0, "Round Robin time quantum (overrides the workload file)")
	runCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Dispatch trace level (none, dispatch)")
	_ = runCmd.MarkFlagRequired("workload")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
