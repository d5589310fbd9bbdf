package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	sim "github.com/hankbao/cs5600-mlfq/sim"
	"github.com/hankbao/cs5600-mlfq/sim/workload"
)

var (
	// ErrMismatchedLists reports queue flag lists of different lengths.
	ErrMismatchedLists = errors.New("queue lists must have equal lengths")
	// ErrJobArity reports a job that does not have exactly four fields.
	ErrJobArity = errors.New("job must have 4 fields: arrival,workload,ioInterval,ioDuration")
)

// simulationInput is everything needed to build and seed a Scheduler.
type simulationInput struct {
	scheduler sim.SchedulerConfig
	queues    []sim.QueueConfig
	jobs      []sim.JobConfig
}

func (in simulationInput) validate() error {
	if err := in.scheduler.Validate(); err != nil {
		return err
	}
	if err := sim.ValidateQueueConfigs(in.queues); err != nil {
		return err
	}
	for i, job := range in.jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}
	return nil
}

// runOptions holds the flag values of the run command.
type runOptions struct {
	quantums      []int64
	allotments    []int64
	admitFront    []bool
	jobs          string
	boostInterval int64
	ioBump        bool
	ioStay        bool
	random        workload.RandomJobSpec // used when random.NumJobs > 0
}

// apply overwrites the parts of in whose flags report changed.
func (o runOptions) apply(in *simulationInput, changed func(name string) bool) error {
	if changed("boost") {
		in.scheduler.PriorityBoostInterval = o.boostInterval
	}
	if changed("io-bump") {
		in.scheduler.IOBump = o.ioBump
	}
	if changed("io-stay") {
		in.scheduler.IOStay = o.ioStay
	}
	if changed("quantums") || changed("allotments") || changed("admit-front") {
		queues, err := BuildQueueConfigs(o.quantums, o.allotments, o.admitFront)
		if err != nil {
			return err
		}
		in.queues = queues
	}
	if changed("jobs") {
		jobs, err := ParseJobs(o.jobs)
		if err != nil {
			return err
		}
		in.jobs = jobs
	}
	if changed("random-jobs") && o.random.NumJobs > 0 {
		jobs, err := workload.GenerateJobs(o.random)
		if err != nil {
			return err
		}
		in.jobs = jobs
	}
	return nil
}

// BuildQueueConfigs zips the per-queue flag lists into queue configs.
// An empty admitFront list means every queue admits at the back.
func BuildQueueConfigs(quantums, allotments []int64, admitFront []bool) ([]sim.QueueConfig, error) {
	if len(quantums) != len(allotments) {
		return nil, fmt.Errorf("%w: %d quantums, %d allotments", ErrMismatchedLists, len(quantums), len(allotments))
	}
	if len(admitFront) != 0 && len(admitFront) != len(quantums) {
		return nil, fmt.Errorf("%w: %d quantums, %d admit-front flags", ErrMismatchedLists, len(quantums), len(admitFront))
	}
	configs := make([]sim.QueueConfig, len(quantums))
	for i := range quantums {
		configs[i] = sim.QueueConfig{Quantum: quantums[i], Allotment: allotments[i]}
		if len(admitFront) > 0 {
			configs[i].AdmitAtFront = admitFront[i]
		}
	}
	return configs, nil
}

// ParseJobs parses "arrival,workload,ioInterval,ioDuration[:...]".
// An empty string yields no jobs.
func ParseJobs(spec string) ([]sim.JobConfig, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	var jobs []sim.JobConfig
	for i, entry := range strings.Split(spec, ":") {
		fields := strings.Split(entry, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("job %d %q: %w", i, entry, ErrJobArity)
		}
		var values [4]int64
		for k, f := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("job %d field %d: %w", i, k, err)
			}
			values[k] = v
		}
		jobs = append(jobs, sim.JobConfig{
			ArrivalTime: values[0],
			Workload:    values[1],
			IOInterval:  values[2],
			IODuration:  values[3],
		})
	}
	return jobs, nil
}
