package sim

import (
	"errors"
	"fmt"
	"math"
)

// NeverScheduled is the next-schedule time of a process that will never run again.
const NeverScheduled int64 = math.MaxInt64

var (
	// ErrInvalidQueueConfig reports a queue with a non-positive quantum or allotment.
	ErrInvalidQueueConfig = errors.New("invalid queue config")
	// ErrInvalidJobConfig reports a job with a negative field.
	ErrInvalidJobConfig = errors.New("invalid job config")
	// ErrInvalidSchedulerConfig reports a negative priority boost interval.
	ErrInvalidSchedulerConfig = errors.New("invalid scheduler config")
	// ErrNoQueues reports an empty queue ladder.
	ErrNoQueues = errors.New("at least one queue is required")
)

// QueueConfig parameterizes one priority level.
type QueueConfig struct {
	Quantum      int64 // max CPU ticks granted per dispatch
	Allotment    int64 // total CPU ticks a process may use at this level before demotion
	AdmitAtFront bool  // newly admitted processes go to the front instead of the back
}

// Validate checks that quantum and allotment are positive.
func (c QueueConfig) Validate() error {
	if c.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidQueueConfig, c.Quantum)
	}
	if c.Allotment <= 0 {
		return fmt.Errorf("%w: allotment must be positive, got %d", ErrInvalidQueueConfig, c.Allotment)
	}
	return nil
}

// JobConfig describes one job to be simulated.
// IOInterval of zero means the job never performs I/O.
type JobConfig struct {
	ArrivalTime int64
	Workload    int64
	IOInterval  int64
	IODuration  int64
}

// Validate checks that no field is negative.
func (c JobConfig) Validate() error {
	switch {
	case c.ArrivalTime < 0:
		return fmt.Errorf("%w: arrival time must be non-negative, got %d", ErrInvalidJobConfig, c.ArrivalTime)
	case c.Workload < 0:
		return fmt.Errorf("%w: workload must be non-negative, got %d", ErrInvalidJobConfig, c.Workload)
	case c.IOInterval < 0:
		return fmt.Errorf("%w: io interval must be non-negative, got %d", ErrInvalidJobConfig, c.IOInterval)
	case c.IODuration < 0:
		return fmt.Errorf("%w: io duration must be non-negative, got %d", ErrInvalidJobConfig, c.IODuration)
	}
	return nil
}

// SchedulerConfig groups the MLFQ policy switches.
type SchedulerConfig struct {
	PriorityBoostInterval int64 // 0 disables priority boosts
	IOBump                bool  // a process returning from I/O jumps ahead of later-scheduled peers
	IOStay                bool  // a process that blocked on I/O is never demoted for that dispatch
}

// Validate checks that the boost interval is non-negative.
func (c SchedulerConfig) Validate() error {
	if c.PriorityBoostInterval < 0 {
		return fmt.Errorf("%w: priority boost interval must be non-negative, got %d",
			ErrInvalidSchedulerConfig, c.PriorityBoostInterval)
	}
	return nil
}

// ValidateQueueConfigs checks the whole ladder, reporting the first bad level.
func ValidateQueueConfigs(configs []QueueConfig) error {
	if len(configs) == 0 {
		return ErrNoQueues
	}
	for i, c := range configs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("queue %d: %w", i, err)
		}
	}
	return nil
}
