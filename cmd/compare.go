package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
)

var (
	compareWorkloadPath string // Path to the workload YAML file
	compareQuantum      int64  // Round Robin time quantum for the comparison
	compareOutput       string // table, json or yaml
)

// compareCmd runs one workload under every applicable algorithm
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Schedule a workload with every applicable algorithm and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadWorkload(compareWorkloadPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		ps := spec.Build()
		q := spec.Quantum
		if compareQuantum > 0 {
			q = compareQuantum
		}

		cfgs := sim.ApplicableAlgorithms(ps, q)
		logrus.Infof("Comparing %d algorithms over %d processes", len(cfgs), len(ps))
		results, err := sim.Compare(ps, cfgs)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		switch compareOutput {
		case "json", "yaml":
			reports := make([]*sim.Report, len(results))
			for i, res := range results {
				reports[i] = sim.NewReport(res)
			}
			if err := writeStructured(os.Stdout, compareOutput, reports); err != nil {
				logrus.Fatalf("Writing output: %v", err)
			}
		default:
			printComparison(os.Stdout, results)
		}
	},
}

func init() {
	compareCmd.Flags().StringVarP(&compareWorkloadPath, "workload", "w", "", "Path to the workload YAML file")
	compareCmd.Flags().Int64VarP(&compareQuantum, "quantum", "q", 0, "Round Robin time quantum (overrides the workload file)")
	compareCmd.Flags().StringVarP(&compareOutput, "output", "o", "table", "Output format (table, json, yaml)")
	_ = compareCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(compareCmd)
}
