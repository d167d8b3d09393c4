package trace

// IdleID mirrors the timeline's idle sentinel so summaries can skip idle hand-offs.
const IdleID = "Idle"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches int            `json:"total_dispatches" yaml:"total_dispatches"` // hand-offs to a real process
	ContextSwitches int            `json:"context_switches" yaml:"context_switches"` // hand-offs from one real process directly to another
	Preemptions     int            `json:"preemptions" yaml:"preemptions"`           // hand-offs that took the CPU from an unfinished process
	IdleGaps        int            `json:"idle_gaps" yaml:"idle_gaps"`               // hand-offs from a process (or start) to idle
	DispatchCounts  map[string]int `json:"dispatch_counts" yaml:"dispatch_counts"`   // process ID → number of times it was dispatched
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchCounts: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	for _, d := range st.Dispatches {
		if d.ProcessID == IdleID {
			summary.IdleGaps++
			continue
		}
		summary.TotalDispatches++
		summary.DispatchCounts[d.ProcessID]++
		if d.Previous != "" && d.Previous != IdleID {
			summary.ContextSwitches++
		}
		if d.Preempted {
			summary.Preemptions++
		}
	}
	return summary
}
