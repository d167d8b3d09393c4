// Derives per-process timing metrics and run-wide aggregates once a run has finished.

package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// Result is the read-only bundle returned to the caller of a Run* function.
type Result struct {
	Algorithm Algorithm
	Quantum   int64 // Round Robin only; zero otherwise

	// Processes is the caller's slice, in the caller's order, now carrying outcome fields.
	Processes []*Process
	Timeline  *Timeline

	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64

	// ShowPriority is set by the priority policies so presenters add a priority column.
	ShowPriority bool

	Makespan       int64   // time at which the last process completed
	IdleTime       int64   // idle slots in Timeline
	CPUUtilization float64 // busy time / makespan
	Throughput     float64 // completed processes per time unit

	Trace *trace.SimulationTrace // nil unless tracing was enabled
}

// finalize records completion of p at time completion and derives its metrics.
func finalize(p *Process, completion int64) {
	p.State = StateCompleted
	p.Remaining = 0
	p.CompletionTime = completion
	p.TurnaroundTime = completion - p.Arrival
	p.WaitingTime = p.TurnaroundTime - p.Burst
	if p.Started {
		p.ResponseTime = p.StartTime - p.Arrival
	} else {
		// Unreachable with the shipped policies; kept so a policy bug shows up as
		// a zero response time in tests instead of a garbage value.
		p.ResponseTime = 0
	}
	logrus.Debugf("<< Completed: %s at %d (turnaround=%d, waiting=%d, response=%d)",
		p.ID, completion, p.TurnaroundTime, p.WaitingTime, p.ResponseTime)
}

// ComputeAverages returns the unweighted mean waiting, turnaround and response
// time across ps.
func ComputeAverages(ps []*Process) (avgWaiting, avgTurnaround, avgResponse float64) {
	waiting := make([]int64, len(ps))
	turnaround := make([]int64, len(ps))
	response := make([]int64, len(ps))
	for i, p := range ps {
		waiting[i] = p.WaitingTime
		turnaround[i] = p.TurnaroundTime
		response[i] = p.ResponseTime
	}
	return CalculateMean(waiting), CalculateMean(turnaround), CalculateMean(response)
}

// newResult assembles a Result after the simulation loop has terminated.
func newResult(algorithm Algorithm, ps []*Process, tl *Timeline, tr *trace.SimulationTrace) *Result {
	res := &Result{
		Algorithm: algorithm,
		Processes: ps,
		Timeline:  tl,
		Makespan:  tl.Len(),
		IdleTime:  tl.IdleSlots(),
		Trace:     tr,
	}
	res.AvgWaitingTime, res.AvgTurnaroundTime, res.AvgResponseTime = ComputeAverages(ps)
	if res.Makespan > 0 {
		res.CPUUtilization = float64(res.Makespan-res.IdleTime) / float64(res.Makespan)
		res.Throughput = float64(len(ps)) / float64(res.Makespan)
	}
	return res
}

// WaitingPercentile returns the p-th percentile of per-process waiting time.
func (r *Result) WaitingPercentile(p float64) float64 {
	waiting := make([]int64, len(r.Processes))
	for i, proc := range r.Processes {
		waiting[i] = proc.WaitingTime
	}
	return CalculatePercentile(waiting, p)
}
