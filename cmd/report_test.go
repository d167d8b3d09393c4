package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
)

func srtfResult(t *testing.T, level trace.TraceLevel) *sim.Result {
	t.Helper()
	ps := []*sim.Process{
		sim.NewProcess("P1", 0, 7),
		sim.NewProcess("P2", 2, 4),
		sim.NewProcess("P3", 4, 1),
		sim.NewProcess("P4", 5, 4),
	}
	res, err := sim.Run(ps, sim.Config{Algorithm: sim.AlgorithmSRTF, TraceLevel: level})
	require.NoError(t, err)
	return res
}

func TestPrintGantt_CellsAndBoundaries(t *testing.T) {
	// GIVEN a timeline with an idle gap
	segments := []sim.Segment{
		{ID: "P1", Start: 0, Stop: 2},
		{ID: sim.IdleSlot, Start: 2, Stop: 3},
		{ID: "P2", Start: 3, Stop: 5},
	}

	// WHEN drawn
	var buf bytes.Buffer
	printGantt(&buf, segments)

	// THEN each segment gets a centred cell with its start underneath
	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "|  P1  | Idle |  P2  |", lines[1])
	assert.Equal(t, "0      2      3      5", lines[2])
}

func TestPrintGantt_WidensForLongIDs(t *testing.T) {
	var buf bytes.Buffer
	printGantt(&buf, []sim.Segment{{ID: "database", Start: 0, Stop: 12}})
	assert.Contains(t, buf.String(), "| database |")
	assert.Contains(t, buf.String(), "0          12")
}

func TestPrintSchedule_PriorityColumnOnlyForPriorityRuns(t *testing.T) {
	ps := []*sim.Process{sim.NewProcess("P1", 0, 3).WithPriority(2), sim.NewProcess("P2", 1, 2).WithPriority(1)}

	fcfs, err := sim.RunFCFS(sim.CloneProcesses(ps))
	require.NoError(t, err)
	var plain bytes.Buffer
	printSchedule(&plain, fcfs)
	assert.NotContains(t, plain.String(), "PRIORITY")
	assert.Contains(t, plain.String(), "TURNAROUND")

	prio, err := sim.RunPriorityNonPreemptive(sim.CloneProcesses(ps))
	require.NoError(t, err)
	var withPriority bytes.Buffer
	printSchedule(&withPriority, prio)
	assert.Contains(t, withPriority.String(), "PRIORITY")
}

func TestPrintResult_TableIncludesAveragesAndTrace(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, srtfResult(t, trace.TraceLevelDispatch))
	out := buf.String()

	assert.Contains(t, out, "srtf")
	assert.Contains(t, out, "7.00", "average turnaround")
	assert.Contains(t, out, "3.00", "average waiting")
	assert.Contains(t, out, "Makespan: 16")
	assert.Contains(t, out, "CPU utilization: 100.00%")
	assert.Contains(t, out, "Dispatch trace")
	assert.Contains(t, out, "shortest-remaining (4)")
}

func TestPrintResult_NoTraceSection_WhenUntraced(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, srtfResult(t, trace.TraceLevelNone))
	assert.NotContains(t, buf.String(), "Dispatch trace")
}

func TestWriteResult_Formats(t *testing.T) {
	res := srtfResult(t, trace.TraceLevelNone)

	var jsonBuf bytes.Buffer
	require.NoError(t, writeResult(&jsonBuf, res, "json"))
	var report sim.Report
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &report))
	assert.Equal(t, int64(16), report.Makespan)

	var yamlBuf bytes.Buffer
	require.NoError(t, writeResult(&yamlBuf, res, "yaml"))
	assert.Contains(t, yamlBuf.String(), "algorithm: srtf")
	assert.Contains(t, yamlBuf.String(), "makespan: 16")

	assert.Error(t, writeResult(&bytes.Buffer{}, res, "xml"))
}

func TestPrintComparison_OneRowPerAlgorithm(t *testing.T) {
	ps := []*sim.Process{sim.NewProcess("P1", 0, 3), sim.NewProcess("P2", 1, 2)}
	results, err := sim.Compare(ps, sim.ApplicableAlgorithms(ps, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	printComparison(&buf, results)
	out := buf.String()

	for _, name := range []string{"fcfs", "sjf", "srtf", "rr (q=2)"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "priority")
}
