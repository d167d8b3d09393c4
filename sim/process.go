// Defines the Process struct that models a single simulated task.
// Tracks arrival, burst, optional priority/quantum, and the timing outcome of a run.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process within one run.
type ProcessState string

const (
	StateWaiting   ProcessState = "waiting"
	StateRunning   ProcessState = "running"
	StateCompleted ProcessState = "completed"
)

// Process models one task handed to a dispatch policy.
// Input fields are set by the caller before a run; outcome fields are written
// by exactly one Run* call and are only meaningful once State is StateCompleted.
type Process struct {
	ID       string // Unique label, e.g. "P1"
	Arrival  int64  // Time unit at which the process becomes eligible to run
	Burst    int64  // Total CPU time required (> 0)
	Priority *int64 // Lower value = higher priority; required by the priority policies only
	Quantum  *int64 // Per-record quantum as entered; Round Robin uses one shared value (see ResolveQuantum)

	State          ProcessState
	Remaining      int64 // CPU time still owed; counts down from Burst to 0 exactly once
	Started        bool  // Tracks whether StartTime has been set
	StartTime      int64 // First time unit the process actually executed
	CompletionTime int64
	TurnaroundTime int64 // CompletionTime - Arrival
	WaitingTime    int64 // TurnaroundTime - Burst
	ResponseTime   int64 // StartTime - Arrival
}

// NewProcess constructs a waiting Process with the required fields.
func NewProcess(id string, arrival, burst int64) *Process {
	return &Process{
		ID:        id,
		Arrival:   arrival,
		Burst:     burst,
		State:     StateWaiting,
		Remaining: burst,
	}
}

// WithPriority sets the priority and returns the process for chaining.
func (p *Process) WithPriority(priority int64) *Process {
	p.Priority = &priority
	return p
}

// WithQuantum sets the per-record quantum and returns the process for chaining.
func (p *Process) WithQuantum(quantum int64) *Process {
	p.Quantum = &quantum
	return p
}

// PriorityValue returns the priority, or 0 when unset.
// Priority policies validate presence before reading it.
func (p *Process) PriorityValue() int64 {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// reset clears every outcome field so a run starts from the caller's input only.
func (p *Process) reset() {
	p.State = StateWaiting
	p.Remaining = p.Burst
	p.Started = false
	p.StartTime = 0
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
	p.ResponseTime = 0
}

// markStarted records the first time unit the process executes. Later calls are no-ops.
func (p *Process) markStarted(now int64) {
	if p.Started {
		return
	}
	p.Started = true
	p.StartTime = now
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, State: %s, Arrival: %d, Burst: %d, Remaining: %d)", p.ID, p.State, p.Arrival, p.Burst, p.Remaining)
}

// CloneProcesses returns independent copies of the input fields of ps with all
// outcome fields reset. Use it to run several policies over the same workload.
func CloneProcesses(ps []*Process) []*Process {
	out := make([]*Process, len(ps))
	for i, p := range ps {
		c := NewProcess(p.ID, p.Arrival, p.Burst)
		if p.Priority != nil {
			c.WithPriority(*p.Priority)
		}
		if p.Quantum != nil {
			c.WithQuantum(*p.Quantum)
		}
		out[i] = c
	}
	return out
}
