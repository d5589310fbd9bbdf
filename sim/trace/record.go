// Package trace provides decision-trace recording for MLFQ simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// EventKind names a scheduler decision.
type EventKind string

const (
	// EventIdle: no process was schedulable; the CPU idled for Ticks ticks
	// ending at Clock.
	EventIdle EventKind = "idle"
	// EventDispatch: process PID ran for Ran ticks at Level starting at Clock.
	EventDispatch EventKind = "dispatch"
	// EventBlock: the dispatch ended at an I/O request lasting Ticks ticks.
	EventBlock EventKind = "block"
	// EventFinish: the process completed its workload.
	EventFinish EventKind = "finish"
	// EventDemote: the process exhausted its allotment and moved to Level.
	EventDemote EventKind = "demote"
	// EventStay: the process blocked on I/O and stayed at Level under the I/O-stay rule.
	EventStay EventKind = "stay"
	// EventBump: the process was re-inserted ahead of later-scheduled peers at Level.
	EventBump EventKind = "bump"
	// EventBoost: Ticks processes were moved back to the top level.
	EventBoost EventKind = "boost"
)

// EventRecord captures a single scheduler decision.
// PID is -1 for events not tied to a process (idle, boost).
type EventRecord struct {
	Kind       EventKind
	Clock      int64
	PID        int64
	Level      int
	Ran        int64 // dispatch only
	Ticks      int64 // idle length, I/O duration or number of boosted processes
	Resumed    bool  // dispatch only: the process was returning from I/O
	Response   int64 // finish only
	Turnaround int64 // finish only
}

// String renders the record as one human-readable log line.
func (r EventRecord) String() string {
	switch r.Kind {
	case EventIdle:
		return fmt.Sprintf("[tick %07d] CPU idle for %d ticks", r.Clock, r.Ticks)
	case EventDispatch:
		verb := "ran"
		if r.Resumed {
			verb = "resumed from I/O and ran"
		}
		return fmt.Sprintf("[tick %07d] process %d %s for %d in queue %d", r.Clock, r.PID, verb, r.Ran, r.Level)
	case EventBlock:
		return fmt.Sprintf("[tick %07d] process %d blocked, performing I/O for %d", r.Clock, r.PID, r.Ticks)
	case EventFinish:
		return fmt.Sprintf("[tick %07d] process %d finished, response time %d, turnaround time %d",
			r.Clock, r.PID, r.Response, r.Turnaround)
	case EventDemote:
		return fmt.Sprintf("[tick %07d] process %d priority reduced to %d", r.Clock, r.PID, r.Level)
	case EventStay:
		return fmt.Sprintf("[tick %07d] process %d stays in queue %d after I/O", r.Clock, r.PID, r.Level)
	case EventBump:
		return fmt.Sprintf("[tick %07d] process %d bumped in queue %d after I/O", r.Clock, r.PID, r.Level)
	case EventBoost:
		return fmt.Sprintf("[tick %07d] priority boost moved %d processes to queue 0", r.Clock, r.Ticks)
	default:
		return fmt.Sprintf("[tick %07d] %s", r.Clock, r.Kind)
	}
}
