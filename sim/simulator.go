// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// RunFCFS schedules ps First-Come-First-Served.
func RunFCFS(ps []*Process) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmFCFS})
}

// RunSJFNonPreemptive schedules ps shortest-burst-first without preemption.
func RunSJFNonPreemptive(ps []*Process) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmSJF})
}

// RunSJFPreemptive schedules ps shortest-remaining-time-first.
func RunSJFPreemptive(ps []*Process) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmSRTF})
}

// RunPriorityNonPreemptive schedules ps by priority without preemption.
func RunPriorityNonPreemptive(ps []*Process) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmPriority})
}

// RunPriorityPreemptive schedules ps by priority, re-evaluated every time unit.
func RunPriorityPreemptive(ps []*Process) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmPriorityPreemptive})
}

// RunRoundRobin schedules ps Round Robin with one shared quantum.
// Per-record Process.Quantum values are ignored.
func RunRoundRobin(ps []*Process, quantum int64) (*Result, error) {
	return Run(ps, Config{Algorithm: AlgorithmRoundRobin, Quantum: quantum})
}

// Run validates cfg and ps, then simulates ps under cfg.Algorithm.
// ps is mutated in place; pass fresh records (see CloneProcesses) for each run.
func Run(ps []*Process, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algorithm, _ := ParseAlgorithm(string(cfg.Algorithm))
	if err := ValidateProcesses(ps, cfg.RequiresPriority()); err != nil {
		return nil, err
	}
	for _, p := range ps {
		p.reset()
	}

	var tr *trace.SimulationTrace
	if cfg.TraceLevel.Enabled() {
		tr = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}
	rec := &dispatchRecorder{trace: tr}

	logrus.Infof("Starting %s simulation with %d processes", algorithm, len(ps))

	var tl *Timeline
	var quantum int64
	if algorithm == AlgorithmRoundRobin {
		quantum = cfg.Quantum
		tl = runRoundRobin(ps, quantum, rec)
	} else {
		policy, err := NewDispatchPolicy(string(algorithm))
		if err != nil {
			return nil, err
		}
		if policy.Preemptive() {
			tl = runPreemptive(ps, policy, rec)
		} else {
			tl = runNonPreemptive(ps, policy, rec)
		}
	}

	res := newResult(algorithm, ps, tl, tr)
	res.Quantum = quantum
	res.ShowPriority = cfg.RequiresPriority()

	logrus.Infof("Simulation complete: %s makespan=%d avgWaiting=%.2f avgTurnaround=%.2f avgResponse=%.2f",
		algorithm, res.Makespan, res.AvgWaitingTime, res.AvgTurnaroundTime, res.AvgResponseTime)
	return res, nil
}

// eligibleAt appends to buf every process that has arrived by now and still
// owes CPU time, preserving record order.
func eligibleAt(ps []*Process, now int64, buf []*Process) []*Process {
	for _, p := range ps {
		if p.Arrival <= now && p.Remaining > 0 {
			buf = append(buf, p)
		}
	}
	return buf
}

// runNonPreemptive drives FCFS, SJF and non-preemptive priority: at each
// decision point the policy picks one eligible process, which then runs to
// completion in one block. No eligible process means one idle unit.
func runNonPreemptive(ps []*Process, policy DispatchPolicy, rec *dispatchRecorder) *Timeline {
	tl := NewTimeline()
	eligible := make([]*Process, 0, len(ps))
	var now int64
	completed := 0

	for completed < len(ps) {
		eligible = eligibleAt(ps, now, eligible[:0])
		p := policy.Pick(eligible, nil)
		if p == nil {
			rec.observe(now, nil, "no eligible process")
			tl.AppendIdle(1)
			now++
			continue
		}

		rec.observe(now, p, policy.Describe(p))
		p.State = StateRunning
		p.markStarted(now)
		tl.Append(p.ID, p.Burst)
		now += p.Burst
		finalize(p, now)
		completed++
	}
	return tl
}

// runPreemptive drives SRTF and preemptive priority at unit-time granularity:
// the policy re-picks every unit, and the chosen process runs for exactly one unit.
func runPreemptive(ps []*Process, policy DispatchPolicy, rec *dispatchRecorder) *Timeline {
	tl := NewTimeline()
	eligible := make([]*Process, 0, len(ps))
	var now int64
	var running *Process
	completed := 0

	for completed < len(ps) {
		eligible = eligibleAt(ps, now, eligible[:0])
		p := policy.Pick(eligible, running)
		if p == nil {
			rec.observe(now, nil, "no eligible process")
			tl.AppendIdle(1)
			now++
			running = nil
			continue
		}

		rec.observe(now, p, policy.Describe(p))
		if running != nil && running != p && running.State == StateRunning {
			running.State = StateWaiting
		}
		// The unit starting at now is the process's first executed unit if it
		// has not started yet, so this is also its start time under SRTF.
		p.markStarted(now)
		p.State = StateRunning
		p.Remaining--
		tl.Append(p.ID, 1)
		now++

		if p.Remaining == 0 {
			finalize(p, now)
			completed++
		}
		running = p
	}
	return tl
}

// runRoundRobin drives Round Robin. Processes that arrive during a slice are
// queued ahead of the process whose slice just ended.
func runRoundRobin(ps []*Process, quantum int64, rec *dispatchRecorder) *Timeline {
	tl := NewTimeline()
	queue := NewReadyQueue()
	var now int64
	completed := 0

	for _, p := range ps {
		if p.Arrival <= now {
			queue.Enqueue(p)
		}
	}

	reason := fmt.Sprintf("round-robin (quantum %d)", quantum)
	for completed < len(ps) {
		if queue.Len() == 0 {
			rec.observe(now, nil, "ready queue empty")
			tl.AppendIdle(1)
			now++
			for _, p := range ps {
				if p.Arrival <= now && p.Remaining > 0 && !queue.Contains(p) {
					queue.Enqueue(p)
				}
			}
			continue
		}

		p := queue.Dequeue()
		rec.observe(now, p, reason)
		p.markStarted(now)
		p.State = StateRunning

		slice := min(quantum, p.Remaining)
		tl.Append(p.ID, slice)
		sliceStart := now
		now += slice
		p.Remaining -= slice

		for _, q := range ps {
			if q.Arrival > sliceStart && q.Arrival <= now && q.Remaining > 0 && !queue.Contains(q) {
				queue.Enqueue(q)
			}
		}

		if p.Remaining > 0 {
			p.State = StateWaiting
			queue.Enqueue(p)
			logrus.Debugf("   %s requeued with %d remaining, queue=%v", p.ID, p.Remaining, queue)
		} else {
			finalize(p, now)
			completed++
		}
	}
	return tl
}

// dispatchRecorder logs CPU hand-offs and, when a trace is attached, records them.
type dispatchRecorder struct {
	trace   *trace.SimulationTrace
	last    *Process
	started bool // false until the first observation
	idle    bool // true while the CPU is idle
}

// observe notes that p (nil for idle) holds the CPU at now. Only changes of
// holder are logged and recorded.
func (r *dispatchRecorder) observe(now int64, p *Process, reason string) {
	if r.started {
		if p == nil && r.idle {
			return
		}
		if p != nil && !r.idle && p == r.last {
			return
		}
	}

	id := IdleSlot
	if p != nil {
		id = p.ID
	}
	previous := ""
	preempted := false
	if r.started {
		if r.idle {
			previous = IdleSlot
		} else {
			previous = r.last.ID
			preempted = r.last.Remaining > 0
		}
	}

	logrus.Debugf("<< Dispatch: %s at %d (%s), previous=%q", id, now, reason, previous)
	if r.trace != nil {
		r.trace.RecordDispatch(trace.DispatchRecord{
			Clock:     now,
			ProcessID: id,
			Previous:  previous,
			Reason:    reason,
			Preempted: preempted,
		})
	}

	r.started = true
	r.idle = p == nil
	if p != nil {
		r.last = p
	}
}
