// Package sim provides the unit-time CPU scheduling engine for cpusched.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process record (input fields and per-run outcome fields)
//   - scheduler.go: DispatchPolicy implementations, one per selection rule
//   - simulator.go: the Run* entry points and the three simulation loops
//
// # Architecture
//
// A caller builds []*Process (directly, or from a WorkloadSpec), calls exactly
// one Run* function, and reads back a Result. The run mutates the records in
// place; use CloneProcesses to run several algorithms over one workload, or
// Compare to do so concurrently.
//
// FCFS, SJF and non-preemptive priority share one run-to-completion loop;
// SRTF and preemptive priority share one unit-step loop; Round Robin has its
// own ready-queue loop. Each loop asks a DispatchPolicy which process runs.
//
// # Key Interfaces
//
//   - DispatchPolicy: pick the next process from the eligible set
//   - Timeline: append-only record of who held the CPU each time unit
//
// Decision tracing lives in sim/trace and is enabled through Config.TraceLevel.
package sim
