// Flattens a Result into a serializable report for the CLI and HTTP surfaces.

package sim

import "github.com/inference-sim/cpusched/sim/trace"

// ProcessReport is the per-process row of a Report.
type ProcessReport struct {
	ID         string `json:"id" yaml:"id"`
	Arrival    int64  `json:"arrival" yaml:"arrival"`
	Burst      int64  `json:"burst" yaml:"burst"`
	Priority   *int64 `json:"priority,omitempty" yaml:"priority,omitempty"`
	Start      int64  `json:"start" yaml:"start"`
	Completion int64  `json:"completion" yaml:"completion"`
	Turnaround int64  `json:"turnaround" yaml:"turnaround"`
	Waiting    int64  `json:"waiting" yaml:"waiting"`
	Response   int64  `json:"response" yaml:"response"`
}

// Report is a Result with every field in a JSON/YAML friendly shape.
type Report struct {
	Algorithm Algorithm       `json:"algorithm" yaml:"algorithm"`
	Quantum   int64           `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes []ProcessReport `json:"processes" yaml:"processes"`
	Timeline  []string        `json:"timeline" yaml:"timeline"`
	Segments  []Segment       `json:"segments" yaml:"segments"`

	AvgWaitingTime    float64 `json:"avg_waiting_time" yaml:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time" yaml:"avg_turnaround_time"`
	AvgResponseTime   float64 `json:"avg_response_time" yaml:"avg_response_time"`
	P90WaitingTime    float64 `json:"p90_waiting_time" yaml:"p90_waiting_time"`

	Makespan       int64   `json:"makespan" yaml:"makespan"`
	IdleTime       int64   `json:"idle_time" yaml:"idle_time"`
	CPUUtilization float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
	Throughput     float64 `json:"throughput" yaml:"throughput"`

	Dispatches   []trace.DispatchRecord `json:"dispatches,omitempty" yaml:"dispatches,omitempty"`
	TraceSummary *trace.TraceSummary    `json:"trace_summary,omitempty" yaml:"trace_summary,omitempty"`
}

// NewReport builds a Report from res. Priorities are included only when the
// algorithm used them.
func NewReport(res *Result) *Report {
	r := &Report{
		Algorithm:         res.Algorithm,
		Quantum:           res.Quantum,
		Processes:         make([]ProcessReport, len(res.Processes)),
		Timeline:          res.Timeline.Slots(),
		Segments:          res.Timeline.Segments(),
		AvgWaitingTime:    res.AvgWaitingTime,
		AvgTurnaroundTime: res.AvgTurnaroundTime,
		AvgResponseTime:   res.AvgResponseTime,
		P90WaitingTime:    res.WaitingPercentile(90),
		Makespan:          res.Makespan,
		IdleTime:          res.IdleTime,
		CPUUtilization:    res.CPUUtilization,
		Throughput:        res.Throughput,
	}
	for i, p := range res.Processes {
		row := ProcessReport{
			ID:         p.ID,
			Arrival:    p.Arrival,
			Burst:      p.Burst,
			Start:      p.StartTime,
			Completion: p.CompletionTime,
			Turnaround: p.TurnaroundTime,
			Waiting:    p.WaitingTime,
			Response:   p.ResponseTime,
		}
		if res.ShowPriority {
			row.Priority = p.Priority
		}
		r.Processes[i] = row
	}
	if res.Trace != nil {
		r.Dispatches = res.Trace.Dispatches
		r.TraceSummary = trace.Summarize(res.Trace)
	}
	return r
}
