// Package trace provides dispatch-decision recording for scheduling runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a single CPU hand-off made by a dispatch policy.
type DispatchRecord struct {
	Clock     int64  `json:"clock" yaml:"clock"`                           // time unit at which the process took the CPU
	ProcessID string `json:"process_id" yaml:"process_id"`                 // process that took the CPU
	Previous  string `json:"previous,omitempty" yaml:"previous,omitempty"` // process (or "Idle") that held the CPU just before; empty at time 0
	Reason    string `json:"reason" yaml:"reason"`                         // policy-specific selection reason, e.g. "shortest-remaining (3)"
	Preempted bool   `json:"preempted" yaml:"preempted"`                   // true if Previous still had work left when it lost the CPU
}
