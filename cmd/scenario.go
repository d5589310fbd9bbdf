package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/hankbao/cs5600-mlfq/sim"
)

// Scenario represents a YAML scenario file.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Scenario struct {
	Scheduler SchedulerSpec `yaml:"scheduler"`
	Queues    []QueueSpec   `yaml:"queues"`
	Jobs      []JobSpec     `yaml:"jobs"`
}

// SchedulerSpec mirrors sim.SchedulerConfig.
type SchedulerSpec struct {
	PriorityBoostInterval int64 `yaml:"priority_boost_interval"`
	IOBump                bool  `yaml:"io_bump"`
	IOStay                bool  `yaml:"io_stay"`
}

// QueueSpec mirrors sim.QueueConfig.
type QueueSpec struct {
	Quantum      int64 `yaml:"quantum"`
	Allotment    int64 `yaml:"allotment"`
	AdmitAtFront bool  `yaml:"admit_at_front"`
}

// JobSpec mirrors sim.JobConfig.
type JobSpec struct {
	ArrivalTime int64 `yaml:"arrival_time"`
	Workload    int64 `yaml:"workload"`
	IOInterval  int64 `yaml:"io_interval"`
	IODuration  int64 `yaml:"io_duration"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict field checking: typos must cause errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

func (sc *Scenario) toInput() simulationInput {
	in := simulationInput{
		scheduler: sim.SchedulerConfig{
			PriorityBoostInterval: sc.Scheduler.PriorityBoostInterval,
			IOBump:                sc.Scheduler.IOBump,
			IOStay:                sc.Scheduler.IOStay,
		},
		queues: make([]sim.QueueConfig, len(sc.Queues)),
		jobs:   make([]sim.JobConfig, len(sc.Jobs)),
	}
	for i, q := range sc.Queues {
		in.queues[i] = sim.QueueConfig{Quantum: q.Quantum, Allotment: q.Allotment, AdmitAtFront: q.AdmitAtFront}
	}
	for i, j := range sc.Jobs {
		in.jobs[i] = sim.JobConfig{ArrivalTime: j.ArrivalTime, Workload: j.Workload, IOInterval: j.IOInterval, IODuration: j.IODuration}
	}
	return in
}
