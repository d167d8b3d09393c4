package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
)

var (
	titleStyle = color.New(color.Bold, color.FgCyan)
	idleStyle  = color.New(color.Faint)

	// processPalette colours Gantt cells; a process keeps its colour across segments.
	processPalette = []*color.Color{
		color.New(color.Bold, color.FgMagenta),
		color.New(color.Bold, color.FgCyan),
		color.New(color.Bold, color.FgYellow),
		color.New(color.Bold, color.FgGreen),
		color.New(color.Bold, color.FgHiBlue),
		color.New(color.Bold, color.FgHiRed),
	}
)

// processColor hashes a process ID to a palette entry.
func processColor(id string) *color.Color {
	if id == sim.IdleSlot {
		return idleStyle
	}
	var h uint32
	for _, c := range id {
		h = h*31 + uint32(c)
	}
	return processPalette[h%uint32(len(processPalette))]
}

func printTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), titleStyle.Sprint(title))
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// ganttCellWidth is wide enough for the longest segment label plus padding.
func ganttCellWidth(segments []sim.Segment) int {
	width := 6
	for _, seg := range segments {
		width = max(width, len(seg.ID)+2)
	}
	return width
}

// printGantt draws one cell per segment with the segment boundaries underneath.
func printGantt(w io.Writer, segments []sim.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(segments) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	width := ganttCellWidth(segments)

	_, _ = fmt.Fprint(w, "|")
	for _, seg := range segments {
		left := (width - len(seg.ID)) / 2
		right := width - len(seg.ID) - left
		_, _ = fmt.Fprint(w, strings.Repeat(" ", left), processColor(seg.ID).Sprint(seg.ID), strings.Repeat(" ", right), "|")
	}
	_, _ = fmt.Fprintln(w)

	for _, seg := range segments {
		_, _ = fmt.Fprintf(w, "%-*d", width+1, seg.Start)
	}
	_, _ = fmt.Fprintf(w, "%d\n\n", segments[len(segments)-1].Stop)
}

// printSchedule renders the per-process table with averages in the footer.
func printSchedule(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)

	header := []string{"ID"}
	if res.ShowPriority {
		header = append(header, "Priority")
	}
	header = append(header, "Arrival", "Burst", "Start", "Completion", "Turnaround", "Waiting", "Response")
	table.SetHeader(header)

	for _, p := range res.Processes {
		row := []string{p.ID}
		if res.ShowPriority {
			row = append(row, strconv.FormatInt(p.PriorityValue(), 10))
		}
		row = append(row,
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Burst, 10),
			strconv.FormatInt(p.StartTime, 10),
			strconv.FormatInt(p.CompletionTime, 10),
			strconv.FormatInt(p.TurnaroundTime, 10),
			strconv.FormatInt(p.WaitingTime, 10),
			strconv.FormatInt(p.ResponseTime, 10),
		)
		table.Append(row)
	}

	footer := make([]string, len(header)-3)
	footer = append(footer,
		fmt.Sprintf("Average\n%.2f", res.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", res.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", res.AvgResponseTime),
	)
	table.SetFooter(footer)
	table.Render()
}

func printAggregates(w io.Writer, res *sim.Result) {
	_, _ = fmt.Fprintf(w, "Makespan: %d  Idle: %d  CPU utilization: %.2f%%  Throughput: %.3f/t  p90 waiting: %.2f\n",
		res.Makespan, res.IdleTime, res.CPUUtilization*100, res.Throughput, res.WaitingPercentile(90))
}

// printDispatches lists every CPU hand-off when the run was traced.
func printDispatches(w io.Writer, res *sim.Result) {
	if res.Trace == nil {
		return
	}
	_, _ = fmt.Fprintln(w, "Dispatch trace")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Clock", "Process", "Previous", "Preempted", "Reason"})
	for _, d := range res.Trace.Dispatches {
		table.Append([]string{
			strconv.FormatInt(d.Clock, 10),
			d.ProcessID,
			d.Previous,
			strconv.FormatBool(d.Preempted),
			d.Reason,
		})
	}
	table.Render()
}

// printResult writes the full human-readable report for one run.
func printResult(w io.Writer, res *sim.Result) {
	title := string(res.Algorithm)
	if res.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, res.Quantum)
	}
	printTitle(w, title)
	printGantt(w, res.Timeline.Segments())
	printSchedule(w, res)
	printAggregates(w, res)
	printDispatches(w, res)
}

// printComparison writes one summary row per result.
func printComparison(w io.Writer, results []*sim.Result) {
	printTitle(w, "comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Response", "Makespan", "CPU Util", "Throughput"})
	for _, res := range results {
		name := string(res.Algorithm)
		if res.Quantum > 0 {
			name = fmt.Sprintf("%s (q=%d)", name, res.Quantum)
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", res.AvgWaitingTime),
			fmt.Sprintf("%.2f", res.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", res.AvgResponseTime),
			strconv.FormatInt(res.Makespan, 10),
			fmt.Sprintf("%.2f%%", res.CPUUtilization*100),
			fmt.Sprintf("%.3f", res.Throughput),
		})
	}
	table.Render()
}

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
