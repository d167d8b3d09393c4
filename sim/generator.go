package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// GeneratorConfig parameterizes synthetic workload generation.
type GeneratorConfig struct {
	Seed         int64
	NumProcesses int   // > 0
	MaxArrival   int64 // arrivals drawn uniformly from [0, MaxArrival]
	MinBurst     int64 // >= 1
	MaxBurst     int64 // >= MinBurst
	MaxPriority  int64 // priorities drawn from [1, MaxPriority]; 0 = no priorities
	Quantum      int64 // written to the workload as-is; 0 = none
	Algorithm    string
}

// Validate checks generator bounds.
func (c GeneratorConfig) Validate() error {
	if c.NumProcesses <= 0 {
		return fmt.Errorf("%w: number of processes must be positive, got %d", ErrInvalidInput, c.NumProcesses)
	}
	if c.MaxArrival < 0 {
		return fmt.Errorf("%w: max arrival must be non-negative, got %d", ErrInvalidInput, c.MaxArrival)
	}
	if c.MinBurst < 1 || c.MaxBurst < c.MinBurst {
		return fmt.Errorf("%w: burst range [%d, %d] is invalid", ErrInvalidInput, c.MinBurst, c.MaxBurst)
	}
	if c.MaxPriority < 0 {
		return fmt.Errorf("%w: max priority must be non-negative, got %d", ErrInvalidInput, c.MaxPriority)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be non-negative, got %d", ErrInvalidInput, c.Quantum)
	}
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, c.Algorithm)
	}
	return nil
}

// GenerateWorkload draws a reproducible workload. Arrivals are sorted so that
// P1 arrives first; bursts and priorities come from their own RNG streams.
func GenerateWorkload(cfg GeneratorConfig) (*WorkloadSpec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	streams := NewSeedStreams(cfg.Seed)

	arrivals := make([]int64, cfg.NumProcesses)
	for i := range arrivals {
		arrivals[i] = streams.Between(StreamArrival, 0, cfg.MaxArrival)
	}
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i] < arrivals[j] })

	spec := &WorkloadSpec{
		Algorithm: cfg.Algorithm,
		Quantum:   cfg.Quantum,
		Processes: make([]ProcessSpec, cfg.NumProcesses),
	}
	for i := range spec.Processes {
		ps := ProcessSpec{
			ID:      fmt.Sprintf("P%d", i+1),
			Arrival: arrivals[i],
			Burst:   streams.Between(StreamBurst, cfg.MinBurst, cfg.MaxBurst),
		}
		if cfg.MaxPriority > 0 {
			priority := streams.Between(StreamPriority, 1, cfg.MaxPriority)
			ps.Priority = &priority
		}
		spec.Processes[i] = ps
	}

	logrus.Debugf("Generated %d processes with seed %d", cfg.NumProcesses, cfg.Seed)
	return spec, nil
}
