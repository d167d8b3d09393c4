package sim

import (
	"fmt"
	"sync"
)

// Compare runs every config in cfgs against its own CloneProcesses copy of ps.
// Runs execute concurrently, one goroutine per config; each run is itself
// sequential. Results are returned in cfgs order. The first failing config's
// error is returned and no results are produced.
func Compare(ps []*Process, cfgs []Config) ([]*Result, error) {
	if err := ValidateProcesses(ps, false); err != nil {
		return nil, err
	}
	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	wg.Add(len(cfgs))
	for i, cfg := range cfgs {
		go func(i int, cfg Config) {
			defer wg.Done()
			results[i], errs[i] = Run(CloneProcesses(ps), cfg)
		}(i, cfg)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", cfgs[i].Algorithm, err)
		}
	}
	return results, nil
}

// ApplicableAlgorithms returns one Config per algorithm whose input contract
// ps satisfies: priority algorithms only when every process has a priority,
// Round Robin only when quantum (or a per-record quantum) resolves.
func ApplicableAlgorithms(ps []*Process, quantum int64) []Config {
	hasPriority := ValidateProcesses(ps, true) == nil
	resolved, quantumErr := ResolveQuantum(ps, quantum)

	cfgs := make([]Config, 0, len(AllAlgorithms))
	for _, a := range AllAlgorithms {
		cfg := Config{Algorithm: a}
		if cfg.RequiresPriority() && !hasPriority {
			continue
		}
		if cfg.RequiresQuantum() {
			if quantumErr != nil {
				continue
			}
			cfg.Quantum = resolved
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs
}
