// Defines the Process struct that models one schedulable job in the simulation.
// Tracks workload progress, I/O cadence, allotment at the current level and
// the response/turnaround timestamps.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateReady    ProcessState = "ready"
	StateRunning  ProcessState = "running"
	StateBlocked  ProcessState = "blocked"
	StateFinished ProcessState = "finished"
)

// Process is owned by exactly one Queue at a time, or by the Scheduler while
// it is being dispatched.
type Process struct {
	id         int64
	ioInterval int64 // CPU ticks between I/O requests (0 = never)
	ioDuration int64 // ticks each I/O request keeps the process blocked
	workload   int64 // total CPU ticks required

	workDone         int64 // 0 <= workDone <= workload
	startTime        int64 // arrival time
	nextScheduleTime int64 // earliest tick at which the process may run again
	allotment        int64 // remaining budget at the current level

	responded      bool
	responseTime   int64 // first run - arrival
	turnaroundTime int64 // finish - arrival

	state ProcessState
}

func newProcess(id int64, job JobConfig) *Process {
	return &Process{
		id:               id,
		ioInterval:       job.IOInterval,
		ioDuration:       job.IODuration,
		workload:         job.Workload,
		startTime:        job.ArrivalTime,
		nextScheduleTime: job.ArrivalTime,
		state:            StateReady,
	}
}

func (p *Process) ID() int64 { return p.id }
func (p *Process) Workload() int64 { return p.workload }
func (p *Process) WorkDone() int64 { return p.workDone }
func (p *Process) StartTime() int64 { return p.startTime }
func (p *Process) NextScheduleTime() int64 { return p.nextScheduleTime }
func (p *Process) Allotment() int64 { return p.allotment }
func (p *Process) IODuration() int64 { return p.ioDuration }
func (p *Process) ResponseTime() int64 { return p.responseTime }
func (p *Process) TurnaroundTime() int64 { return p.turnaroundTime }
func (p *Process) State() ProcessState { return p.state }
func (p *Process) IsBlocked() bool { return p.state == StateBlocked }
func (p *Process) IsFinished() bool { return p.state == StateFinished }
func (p *Process) setAllotment(ticks int64) { p.allotment = ticks }

// untilIO returns the CPU ticks left before the next I/O request.
// A process without I/O reports its remaining work.
func (p *Process) untilIO() int64 {
	if p.ioInterval <= 0 {
		return p.workload - p.workDone
	}
	return p.ioInterval - p.workDone%p.ioInterval
}

// Run executes the process for at most quantum ticks starting at tick at and
// returns the ticks actually consumed. The slice ends early when the process
// finishes or reaches an I/O request. Panics if the process already finished.
func (p *Process) Run(quantum int64, at int64) int64 {
	switch p.state {
	case StateFinished:
		panic(fmt.Sprintf("Run: process %d already finished", p.id))
	case StateReady, StateBlocked:
		p.state = StateRunning
	}

	if !p.responded {
		p.responded = true
		p.responseTime = at - p.startTime
	}

	remaining := p.workload - p.workDone
	untilIO := p.untilIO()

	var ran int64
	switch {
	case untilIO < remaining && untilIO <= quantum:
		// I/O request comes up before the slice or the work runs out.
		// The I/O is timed from the dispatch tick, so it overlaps the slice.
		ran = untilIO
		p.workDone += ran
		p.nextScheduleTime = at + p.ioDuration
		p.state = StateBlocked
	case remaining <= quantum:
		ran = remaining
		p.workDone = p.workload
		p.turnaroundTime = at - p.startTime + remaining
		p.nextScheduleTime = NeverScheduled
		p.state = StateFinished
	default:
		ran = quantum
		p.workDone += quantum
		p.nextScheduleTime = at + quantum
	}

	p.allotment = max(0, p.allotment-ran)
	return ran
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, State: %s, WorkDone: %d/%d, NextScheduleTime: %d, Allotment: %d)",
		p.id, p.state, p.workDone, p.workload, p.nextScheduleTime, p.allotment)
}
