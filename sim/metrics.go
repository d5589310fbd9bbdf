// Tracks simulation-wide and per-process statistics such as idle time,
// turnaround and response time.

package sim

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoProcesses is returned by the averages when no process was admitted.
var ErrNoProcesses = errors.New("no processes admitted")

// ProcessRecord holds the final statistics of one finished process.
type ProcessRecord struct {
	ID             int64
	ArrivalTime    int64
	Workload       int64
	ResponseTime   int64
	TurnaroundTime int64
	FinishTime     int64
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	AdmittedProcesses  int64 // Number of processes created from jobs
	CompletedProcesses int64 // Number of processes that finished
	IdleTicks          int64 // Ticks during which no process was schedulable
	TurnaroundSum      int64 // Sum of turnaround times (finish - arrival)
	ResponseSum        int64 // Sum of response times (first run - arrival)

	Processes []ProcessRecord // finished processes, in finish order
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Processes: make([]ProcessRecord, 0),
	}
}

func (m *Metrics) recordFinish(p *Process, finishTime int64) {
	m.CompletedProcesses++
	m.TurnaroundSum += p.TurnaroundTime()
	m.ResponseSum += p.ResponseTime()
	m.Processes = append(m.Processes, ProcessRecord{
		ID:             p.ID(),
		ArrivalTime:    p.StartTime(),
		Workload:       p.Workload(),
		ResponseTime:   p.ResponseTime(),
		TurnaroundTime: p.TurnaroundTime(),
		FinishTime:     finishTime,
	})
}

// AverageTurnaroundTime divides the turnaround sum by the number of admitted
// processes, truncating toward zero.
func (m *Metrics) AverageTurnaroundTime() (int64, error) {
	if m.AdmittedProcesses == 0 {
		return 0, ErrNoProcesses
	}
	return m.TurnaroundSum / m.AdmittedProcesses, nil
}

// AverageResponseTime divides the response sum by the number of admitted
// processes, truncating toward zero.
func (m *Metrics) AverageResponseTime() (int64, error) {
	if m.AdmittedProcesses == 0 {
		return 0, ErrNoProcesses
	}
	return m.ResponseSum / m.AdmittedProcesses, nil
}

// Print writes the aggregated statistics to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Completed Processes  : %d/%d\n", m.CompletedProcesses, m.AdmittedProcesses)
	fmt.Fprintf(w, "Total Idle Time      : %d ticks\n", m.IdleTicks)
	turnaround, err := m.AverageTurnaroundTime()
	if err != nil {
		fmt.Fprintf(w, "Average Turnaround   : n/a (%v)\n", err)
		fmt.Fprintf(w, "Average Response     : n/a (%v)\n", err)
		return
	}
	response, _ := m.AverageResponseTime()
	fmt.Fprintf(w, "Average Turnaround   : %d ticks\n", turnaround)
	fmt.Fprintf(w, "Average Response     : %d ticks\n", response)
}
