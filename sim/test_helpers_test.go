package sim

import (
	"github.com/inference-sim/cpusched/sim/internal/testutil"
)

// goldenProcesses converts a golden case's input into fresh Process records.
func goldenProcesses(tc testutil.GoldenTestCase) []*Process {
	ps := make([]*Process, len(tc.Processes))
	for i, gp := range tc.Processes {
		ps[i] = NewProcess(gp.ID, gp.Arrival, gp.Burst)
		if gp.Priority != nil {
			ps[i].WithPriority(*gp.Priority)
		}
	}
	return ps
}

// mixedWorkload exercises idle gaps, equal arrivals, equal bursts and equal priorities.
func mixedWorkload() []*Process {
	return []*Process{
		NewProcess("P1", 0, 6).WithPriority(3),
		NewProcess("P2", 1, 2).WithPriority(1),
		NewProcess("P3", 1, 8).WithPriority(4),
		NewProcess("P4", 3, 3).WithPriority(1),
		NewProcess("P5", 3, 2).WithPriority(2),
		NewProcess("P6", 30, 4).WithPriority(2),
		NewProcess("P7", 31, 1).WithPriority(5),
	}
}

// allConfigs returns one config per algorithm, Round Robin with quantum 2.
func allConfigs() []Config {
	cfgs := make([]Config, 0, len(AllAlgorithms))
	for _, a := range AllAlgorithms {
		cfg := Config{Algorithm: a}
		if a == AlgorithmRoundRobin {
			cfg.Quantum = 2
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs
}
