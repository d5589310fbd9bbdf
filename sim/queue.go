// Implements the Queue, which holds the processes of one MLFQ priority level.
// Processes are admitted on arrival, demotion or priority boost.

package sim

import (
	"fmt"
	"strings"
)

// Queue is an ordered set of processes sharing a quantum and an allotment.
// Selection always scans from the front, so position breaks ties between
// processes that are schedulable at the same tick.
type Queue struct {
	quantum      int64
	allotment    int64
	admitAtFront bool
	processes    []*Process
}

// NewQueue creates an empty queue from its configuration.
func NewQueue(config QueueConfig) *Queue {
	return &Queue{
		quantum:      config.Quantum,
		allotment:    config.Allotment,
		admitAtFront: config.AdmitAtFront,
	}
}

// Quantum returns the max ticks granted per dispatch at this level.
func (q *Queue) Quantum() int64 {
	return q.quantum
}

// Allotment returns the budget a process receives on admission.
func (q *Queue) Allotment() int64 {
	return q.allotment
}

// Len returns the number of processes in the queue.
func (q *Queue) Len() int {
	return len(q.processes)
}

// IsEmpty reports whether the queue holds no process.
func (q *Queue) IsEmpty() bool {
	return len(q.processes) == 0
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers MUST NOT
// append to or reslice it.
func (q *Queue) Items() []*Process {
	return q.processes
}

func (q *Queue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range q.processes {
		sb.WriteString(fmt.Sprint(p.id))
		if i < len(q.processes)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// AddProcess admits p into the queue, resetting its allotment to this level's
// budget, at the front or back depending on the queue configuration.
func (q *Queue) AddProcess(p *Process) {
	if p == nil {
		panic("AddProcess: p must not be nil")
	}
	p.setAllotment(q.allotment)
	if q.admitAtFront {
		q.processes = append([]*Process{p}, q.processes...)
	} else {
		q.processes = append(q.processes, p)
	}
}

// HasSchedulableProcess reports whether any process may run at tick now.
func (q *Queue) HasSchedulableProcess(now int64) bool {
	return q.nextSchedulableIndex(now) >= 0
}

// TakeNextSchedulableProcess removes and returns the first process that may
// run at tick now. Returns nil if there is none.
func (q *Queue) TakeNextSchedulableProcess(now int64) *Process {
	i := q.nextSchedulableIndex(now)
	if i < 0 {
		return nil
	}
	p := q.processes[i]
	q.processes = append(q.processes[:i], q.processes[i+1:]...)
	return p
}

func (q *Queue) nextSchedulableIndex(now int64) int {
	for i, p := range q.processes {
		if p.nextScheduleTime <= now {
			return i
		}
	}
	return -1
}

// PutProcessBack re-inserts a process that ran at this level without
// finishing or being demoted. Without bump it goes to the back (round-robin).
// With bump it goes before the first process scheduled strictly later than
// itself, staying behind every process scheduled at the same tick or earlier.
// The allotment is left untouched.
func (q *Queue) PutProcessBack(p *Process, bump bool) {
	if p == nil {
		panic("PutProcessBack: p must not be nil")
	}
	if bump {
		for i, other := range q.processes {
			if other.nextScheduleTime > p.nextScheduleTime {
				q.processes = append(q.processes[:i], append([]*Process{p}, q.processes[i:]...)...)
				return
			}
		}
	}
	q.processes = append(q.processes, p)
}

// PopAll empties the queue and returns its former contents in order.
func (q *Queue) PopAll() []*Process {
	all := q.processes
	q.processes = nil
	return all
}
