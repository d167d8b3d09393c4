package sim

import (
	"fmt"
	"math"

	"github.com/inference-sim/cpusched/sim/trace"
)

// Config is the explicit per-run engine configuration. It replaces any
// presentation-layer state about which inputs an algorithm needs.
type Config struct {
	Algorithm  Algorithm        // any name or alias accepted by ParseAlgorithm
	Quantum    int64            // shared Round Robin time slice (> 0); ignored by other algorithms
	TraceLevel trace.TraceLevel // "none" (default) or "dispatch"
}

// RequiresPriority reports whether the algorithm reads Process.Priority.
func (c Config) RequiresPriority() bool {
	a, err := ParseAlgorithm(string(c.Algorithm))
	return err == nil && (a == AlgorithmPriority || a == AlgorithmPriorityPreemptive)
}

// RequiresQuantum reports whether the algorithm needs a time quantum.
func (c Config) RequiresQuantum() bool {
	a, err := ParseAlgorithm(string(c.Algorithm))
	return err == nil && a == AlgorithmRoundRobin
}

// Validate checks the algorithm name, quantum and trace level.
func (c Config) Validate() error {
	if _, err := ParseAlgorithm(string(c.Algorithm)); err != nil {
		return err
	}
	if c.RequiresQuantum() && c.Quantum <= 0 {
		return fmt.Errorf("%w: round robin requires a positive quantum, got %d", ErrInvalidInput, c.Quantum)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidInput, c.TraceLevel)
	}
	return nil
}

// ValidateProcesses checks the input contract shared by every algorithm:
// a non-empty list, unique non-empty IDs, arrival >= 0 and burst > 0, and a
// makespan bound that fits in int64. When requirePriority is set every
// process must also carry a priority.
func ValidateProcesses(ps []*Process, requirePriority bool) error {
	if len(ps) == 0 {
		return fmt.Errorf("%w: process list is empty", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(ps))
	for i, p := range ps {
		if p == nil {
			return fmt.Errorf("%w: process %d is nil", ErrInvalidInput, i)
		}
		if p.ID == "" {
			return fmt.Errorf("%w: process %d has an empty id", ErrInvalidInput, i)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		if p.ID == IdleSlot {
			return fmt.Errorf("%w: process id %q is reserved for idle slots", ErrInvalidInput, p.ID)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %s has negative arrival %d", ErrInvalidInput, p.ID, p.Arrival)
		}
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %s has non-positive burst %d", ErrInvalidInput, p.ID, p.Burst)
		}
		if requirePriority && p.Priority == nil {
			return fmt.Errorf("%w: process %s has no priority", ErrInvalidInput, p.ID)
		}
	}
	_, err := MakespanBound(ps)
	return err
}

// MakespanBound returns max(arrival) + sum(burst). Every policy here keeps
// the CPU busy whenever a process is eligible, so no schedule of ps finishes
// later. Returns ErrInvalidInput if the bound overflows int64.
func MakespanBound(ps []*Process) (int64, error) {
	var maxArrival, total int64
	for _, p := range ps {
		if p == nil || p.Burst <= 0 {
			continue
		}
		if total > math.MaxInt64-p.Burst {
			return 0, fmt.Errorf("%w: total burst overflows at process %s", ErrInvalidInput, p.ID)
		}
		total += p.Burst
		maxArrival = max(maxArrival, p.Arrival)
	}
	if maxArrival > math.MaxInt64-total {
		return 0, fmt.Errorf("%w: latest arrival %d plus total burst %d overflows", ErrInvalidInput, maxArrival, total)
	}
	return maxArrival + total, nil
}

// CheckMakespan rejects ps when its makespan bound exceeds limit.
// The timeline holds one slot per time unit, so callers that accept
// untrusted input bound it here. limit <= 0 disables the check.
func CheckMakespan(ps []*Process, limit int64) error {
	bound, err := MakespanBound(ps)
	if err != nil {
		return err
	}
	if limit > 0 && bound > limit {
		return fmt.Errorf("%w: makespan bound %d exceeds limit %d", ErrInvalidInput, bound, limit)
	}
	return nil
}

// ResolveQuantum picks the single quantum a Round Robin run uses.
// A positive explicit value wins; otherwise the first per-record quantum in
// ps is used for every process. Returns ErrInvalidInput if neither yields a
// positive value.
func ResolveQuantum(ps []*Process, explicit int64) (int64, error) {
	if explicit > 0 {
		return explicit, nil
	}
	for _, p := range ps {
		if p != nil && p.Quantum != nil {
			if *p.Quantum <= 0 {
				return 0, fmt.Errorf("%w: process %s has non-positive quantum %d", ErrInvalidInput, p.ID, *p.Quantum)
			}
			return *p.Quantum, nil
		}
	}
	return 0, fmt.Errorf("%w: round robin requires a quantum", ErrInvalidInput)
}
