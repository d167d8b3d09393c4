package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
)

// generatorCfg collects the generate flags
var generatorCfg sim.GeneratorConfig

// generateCmd writes a reproducible synthetic workload to stdout
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded random workload file",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := sim.GenerateWorkload(generatorCfg)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := sim.WriteWorkloadSpec(os.Stdout, spec); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	generateCmd.Flags().Int64Var(&generatorCfg.Seed, "seed", 42, "Seed for random workload generation")
	generateCmd.Flags().IntVarP(&generatorCfg.NumProcesses, "num", "n", 5, "Number of processes")
	generateCmd.Flags().Int64Var(&generatorCfg.MaxArrival, "max-arrival", 10, "Latest arrival time")
	generateCmd.Flags().Int64Var(&generatorCfg.MinBurst, "min-burst", 1, "Shortest burst")
	generateCmd.Flags().Int64Var(&generatorCfg.MaxBurst, "max-burst", 10, "Longest burst")
	generateCmd.Flags().Int64Var(&generatorCfg.MaxPriority, "max-priority", 0, "Priorities drawn from [1, max-priority]; 0 omits priorities")
	generateCmd.Flags().Int64Var(&generatorCfg.Quantum, "quantum", 0, "Round Robin quantum written to the file; 0 omits it")
	generateCmd.Flags().StringVar(&generatorCfg.Algorithm, "algorithm", "", "Default algorithm written to the file")

	rootCmd.AddCommand(generateCmd)
}
