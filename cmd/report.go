package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	sim "github.com/hankbao/cs5600-mlfq/sim"
	"github.com/hankbao/cs5600-mlfq/sim/trace"
)

// printEventLog writes every traced decision, one per line.
func printEventLog(w io.Writer, st *trace.SimulationTrace) {
	if !st.Enabled() {
		return
	}
	fmt.Fprintf(w, "=== Event Log (run %s) ===\n", st.RunID)
	for _, line := range st.Lines() {
		fmt.Fprintln(w, line)
	}
}

// printProcessTable renders per-process statistics ordered by process id.
func printProcessTable(w io.Writer, records []sim.ProcessRecord) {
	sorted := make([]sim.ProcessRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Workload", "Response", "Turnaround", "Finish"})
	for _, r := range sorted {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.ArrivalTime, 10),
			strconv.FormatInt(r.Workload, 10),
			strconv.FormatInt(r.ResponseTime, 10),
			strconv.FormatInt(r.TurnaroundTime, 10),
			strconv.FormatInt(r.FinishTime, 10),
		})
	}
	table.Render()
}

// printTraceSummary writes the decision counters of a run.
func printTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Dispatches           : %d\n", summary.TotalDispatches)
	fmt.Fprintf(w, "I/O Blocks           : %d\n", summary.IOBlocks)
	fmt.Fprintf(w, "Demotions            : %d\n", summary.Demotions)
	fmt.Fprintf(w, "I/O Stays            : %d\n", summary.Stays)
	fmt.Fprintf(w, "I/O Bumps            : %d\n", summary.Bumps)
	fmt.Fprintf(w, "Priority Boosts      : %d\n", summary.Boosts)

	levels := make([]int, 0, len(summary.LevelDistribution))
	for level := range summary.LevelDistribution {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		fmt.Fprintf(w, "Dispatches @ queue %d : %d\n", level, summary.LevelDistribution[level])
	}
}
