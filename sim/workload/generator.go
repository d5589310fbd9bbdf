// Package workload generates job lists for the MLFQ simulator.
package workload

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hankbao/cs5600-mlfq/sim"
)

// RandomJobSpec parameterizes random job generation.
// Zero MaxIOInterval produces CPU-bound jobs only.
type RandomJobSpec struct {
	Seed          int64
	NumJobs       int
	MaxWorkload   int64 // workloads are drawn from [1, MaxWorkload]
	MaxIOInterval int64 // io intervals are drawn from [1, MaxIOInterval]
	IODuration    int64 // fixed I/O duration of every job
	MaxArrival    int64 // arrivals are drawn from [0, MaxArrival]
}

// Validate checks the generation parameters.
func (s RandomJobSpec) Validate() error {
	switch {
	case s.NumJobs < 0:
		return fmt.Errorf("num_jobs must be non-negative, got %d", s.NumJobs)
	case s.MaxWorkload < 1:
		return fmt.Errorf("max_workload must be positive, got %d", s.MaxWorkload)
	case s.MaxIOInterval < 0:
		return fmt.Errorf("max_io_interval must be non-negative, got %d", s.MaxIOInterval)
	case s.IODuration < 0:
		return fmt.Errorf("io_duration must be non-negative, got %d", s.IODuration)
	case s.MaxArrival < 0:
		return fmt.Errorf("max_arrival must be non-negative, got %d", s.MaxArrival)
	}
	return nil
}

// GenerateJobs creates a job list from a RandomJobSpec.
// Deterministic given the same spec. Returns jobs sorted by ArrivalTime;
// jobs arriving at the same tick keep generation order.
func GenerateJobs(spec RandomJobSpec) ([]sim.JobConfig, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid random job spec: %w", err)
	}
	rng := newRandFromSeed(spec.Seed)

	jobs := make([]sim.JobConfig, 0, spec.NumJobs)
	for i := 0; i < spec.NumJobs; i++ {
		job := sim.JobConfig{
			Workload:   1 + rng.Int63n(spec.MaxWorkload),
			IODuration: spec.IODuration,
		}
		if spec.MaxIOInterval > 0 {
			job.IOInterval = 1 + rng.Int63n(spec.MaxIOInterval)
		}
		if spec.MaxArrival > 0 {
			job.ArrivalTime = rng.Int63n(spec.MaxArrival + 1)
		}
		jobs = append(jobs, job)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs, nil
}

func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
