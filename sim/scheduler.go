package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Algorithm names one of the six scheduling disciplines.
type Algorithm string

const (
	AlgorithmFCFS               Algorithm = "fcfs"
	AlgorithmSJF                Algorithm = "sjf"
	AlgorithmSRTF               Algorithm = "srtf"
	AlgorithmPriority           Algorithm = "priority"
	AlgorithmPriorityPreemptive Algorithm = "priority-preemptive"
	AlgorithmRoundRobin         Algorithm = "rr"
)

// ValidAlgorithms is the set of recognized algorithm names, aliases included.
// Empty string defaults to FCFS (for CLI flag default compatibility).
var ValidAlgorithms = map[string]Algorithm{
	"":                    AlgorithmFCFS,
	"fcfs":                AlgorithmFCFS,
	"sjf":                 AlgorithmSJF,
	"srtf":                AlgorithmSRTF,
	"sjf-preemptive":      AlgorithmSRTF,
	"priority":            AlgorithmPriority,
	"priority-preemptive": AlgorithmPriorityPreemptive,
	"rr":                  AlgorithmRoundRobin,
	"round-robin":         AlgorithmRoundRobin,
}

// AllAlgorithms lists the canonical algorithm names in presentation order.
var AllAlgorithms = []Algorithm{
	AlgorithmFCFS,
	AlgorithmSJF,
	AlgorithmSRTF,
	AlgorithmPriority,
	AlgorithmPriorityPreemptive,
	AlgorithmRoundRobin,
}

// IsValidAlgorithm returns true if name is a recognized algorithm name or alias.
func IsValidAlgorithm(name string) bool {
	_, ok := ValidAlgorithms[strings.ToLower(name)]
	return ok
}

// ParseAlgorithm resolves a name or alias to its canonical Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a, ok := ValidAlgorithms[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedAlgorithm, name, ValidAlgorithmNames())
	}
	return a, nil
}

// ValidAlgorithmNames returns the sorted, comma-separated list of accepted names.
func ValidAlgorithmNames() string {
	names := make([]string, 0, len(ValidAlgorithms))
	for name := range ValidAlgorithms {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// DispatchPolicy chooses which eligible process gets the CPU next.
// eligible holds every arrived, unfinished process in the caller's record order;
// running is the process that held the CPU in the previous unit, or nil.
// Implementations MUST be deterministic and MUST NOT modify the processes.
type DispatchPolicy interface {
	Name() Algorithm
	Preemptive() bool
	Pick(eligible []*Process, running *Process) *Process
	Describe(p *Process) string
}

// pickFirstMin returns the first process in eligible for which no later process
// compares strictly less. Record order therefore breaks any remaining tie.
func pickFirstMin(eligible []*Process, less func(a, b *Process) bool) *Process {
	var best *Process
	for _, p := range eligible {
		if best == nil || less(p, best) {
			best = p
		}
	}
	return best
}

// ArrivalPolicy is First-Come-First-Served: earliest arrival wins; processes that
// arrive together run in the order the caller supplied them.
type ArrivalPolicy struct{}

func (a *ArrivalPolicy) Name() Algorithm { return AlgorithmFCFS }
func (a *ArrivalPolicy) Preemptive() bool  { return false }

func (a *ArrivalPolicy) Pick(eligible []*Process, _ *Process) *Process {
	return pickFirstMin(eligible, func(x, y *Process) bool {
		return x.Arrival < y.Arrival
	})
}

func (a *ArrivalPolicy) Describe(p *Process) string {
	return fmt.Sprintf("earliest-arrival (%d)", p.Arrival)
}

// ShortestJobPolicy is non-preemptive SJF: smallest burst, then earliest
// arrival, then record order.
type ShortestJobPolicy struct{}

func (s *ShortestJobPolicy) Name() Algorithm { return AlgorithmSJF }
func (s *ShortestJobPolicy) Preemptive() bool  { return false }

func (s *ShortestJobPolicy) Pick(eligible []*Process, _ *Process) *Process {
	return pickFirstMin(eligible, func(x, y *Process) bool {
		if x.Burst != y.Burst {
			return x.Burst < y.Burst
		}
		return x.Arrival < y.Arrival
	})
}

func (s *ShortestJobPolicy) Describe(p *Process) string {
	return fmt.Sprintf("shortest-burst (%d)", p.Burst)
}

// ShortestRemainingPolicy is preemptive SJF (SRTF): smallest remaining time.
// No arrival tie-break is applied. On a tie the process already on the CPU
// keeps it; otherwise the first in record order wins.
type ShortestRemainingPolicy struct{}

func (s *ShortestRemainingPolicy) Name() Algorithm { return AlgorithmSRTF }
func (s *ShortestRemainingPolicy) Preemptive() bool  { return true }

func (s *ShortestRemainingPolicy) Pick(eligible []*Process, running *Process) *Process {
	best := pickFirstMin(eligible, func(x, y *Process) bool {
		return x.Remaining < y.Remaining
	})
	// running has already arrived, so any unfinished incumbent is eligible.
	if best != nil && running != nil && running.Remaining > 0 && running.Remaining == best.Remaining {
		return running
	}
	return best
}

func (s *ShortestRemainingPolicy) Describe(p *Process) string {
	return fmt.Sprintf("shortest-remaining (%d)", p.Remaining)
}

// PriorityPolicy is non-preemptive priority scheduling: lowest priority value,
// then earliest arrival, then record order.
type PriorityPolicy struct{}

func (pp *PriorityPolicy) Name() Algorithm { return AlgorithmPriority }
func (pp *PriorityPolicy) Preemptive() bool  { return false }

func (pp *PriorityPolicy) Pick(eligible []*Process, _ *Process) *Process {
	return pickFirstMin(eligible, byPriorityThenArrival)
}

func (pp *PriorityPolicy) Describe(p *Process) string {
	return fmt.Sprintf("highest-priority (%d)", p.PriorityValue())
}

// PreemptivePriorityPolicy re-evaluates the priority key every time unit, so a
// newly arrived higher-priority process takes the CPU at the next unit boundary.
// Tie-break matches PriorityPolicy.
type PreemptivePriorityPolicy struct{}

func (pp *PreemptivePriorityPolicy) Name() Algorithm { return AlgorithmPriorityPreemptive }
func (pp *PreemptivePriorityPolicy) Preemptive() bool  { return true }

func (pp *PreemptivePriorityPolicy) Pick(eligible []*Process, _ *Process) *Process {
	return pickFirstMin(eligible, byPriorityThenArrival)
}

func (pp *PreemptivePriorityPolicy) Describe(p *Process) string {
	return fmt.Sprintf("highest-priority (%d)", p.PriorityValue())
}

func byPriorityThenArrival(x, y *Process) bool {
	if x.PriorityValue() != y.PriorityValue() {
		return x.PriorityValue() < y.PriorityValue()
	}
	return x.Arrival < y.Arrival
}

// NewDispatchPolicy creates the DispatchPolicy for an algorithm name.
// Round Robin has no selection key and is driven by a ready queue instead,
// so it is rejected here; use RunRoundRobin.
func NewDispatchPolicy(name string) (DispatchPolicy, error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	switch algorithm {
	case AlgorithmFCFS:
		return &ArrivalPolicy{}, nil
	case AlgorithmSJF:
		return &ShortestJobPolicy{}, nil
	case AlgorithmSRTF:
		return &ShortestRemainingPolicy{}, nil
	case AlgorithmPriority:
		return &PriorityPolicy{}, nil
	case AlgorithmPriorityPreemptive:
		return &PreemptivePriorityPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q has no dispatch policy", ErrUnsupportedAlgorithm, algorithm)
	}
}
