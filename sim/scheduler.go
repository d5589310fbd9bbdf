package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/hankbao/cs5600-mlfq/sim/trace"
)

// Scheduler owns the MLFQ queue ladder and the simulated clock.
// Queue 0 has the highest priority.
//
// The rules applied on every step, as described in "Operating Systems: Three
// Easy Pieces":
//  1. If Priority(A) > Priority(B), A runs (B doesn't).
//  2. If Priority(A) = Priority(B), A and B run in round-robin using the
//     quantum of their queue.
//  3. A new job is placed in the topmost queue.
//  4. Once a job uses up its allotment at a level, its priority is reduced.
//  5. After some period S, every job is moved to the topmost queue.
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	queues        []*Queue
	clock         int64
	lastBoostTime int64
	config        SchedulerConfig
	idCounter     int64
	idleStreak    int64 // idle ticks since the last dispatch

	Metrics *Metrics
	// Trace receives every decision when non-nil and enabled.
	Trace *trace.SimulationTrace
}

// NewScheduler creates a Scheduler with one empty Queue per config, in
// priority order. Panics if queueConfigs is empty.
func NewScheduler(config SchedulerConfig, queueConfigs []QueueConfig) *Scheduler {
	if len(queueConfigs) == 0 {
		panic("NewScheduler: at least one queue config is required")
	}
	queues := make([]*Queue, len(queueConfigs))
	for i, qc := range queueConfigs {
		queues[i] = NewQueue(qc)
	}
	return &Scheduler{
		queues:  queues,
		config:  config,
		Metrics: NewMetrics(),
	}
}

// AddJob admits a new process for job into the top queue.
// Ids are assigned in call order starting at 0.
func (s *Scheduler) AddJob(job JobConfig) {
	p := newProcess(s.idCounter, job)
	s.idCounter++
	s.Metrics.AdmittedProcesses++
	s.queues[0].AddProcess(p)
	logrus.Debugf("[tick %07d] admitted process %d (arrival=%d, workload=%d)", s.clock, p.id, job.ArrivalTime, job.Workload)
}

// AddJobs admits every job in order.
func (s *Scheduler) AddJobs(jobs []JobConfig) {
	for _, job := range jobs {
		s.AddJob(job)
	}
}

// Clock returns the current simulated time.
func (s *Scheduler) Clock() int64 {
	return s.clock
}

// NumLevels returns the number of priority levels.
func (s *Scheduler) NumLevels() int {
	return len(s.queues)
}

// Queue returns the queue at the given level.
func (s *Scheduler) Queue(level int) *Queue {
	return s.queues[level]
}

// IsFinished reports whether every queue is empty.
func (s *Scheduler) IsFinished() bool {
	for _, q := range s.queues {
		if !q.IsEmpty() {
			return false
		}
	}
	return true
}

// TotalIdleTime returns the number of ticks the CPU spent idle.
func (s *Scheduler) TotalIdleTime() int64 {
	return s.Metrics.IdleTicks
}

// AverageTurnaroundTime returns the mean turnaround over admitted processes.
func (s *Scheduler) AverageTurnaroundTime() (int64, error) {
	return s.Metrics.AverageTurnaroundTime()
}

// AverageResponseTime returns the mean response time over admitted processes.
func (s *Scheduler) AverageResponseTime() (int64, error) {
	return s.Metrics.AverageResponseTime()
}

// Run advances the simulation until every queue is empty or the clock passes horizon.
func (s *Scheduler) Run(horizon int64) {
	for !s.IsFinished() && s.clock <= horizon {
		s.Advance()
	}
	logrus.Infof("[tick %07d] Simulation ended", s.clock)
}

// Advance performs one scheduling decision: an optional priority boost, then
// either one dispatch or one idle tick. Panics if IsFinished is already true.
func (s *Scheduler) Advance() {
	if s.IsFinished() {
		panic("Advance: no process left to schedule")
	}

	// A boost only moves processes between levels, so it never changes
	// whether this step dispatches.
	level := s.findRunnableQueue()
	if level >= 0 && s.idleStreak > 0 {
		s.record(trace.EventRecord{Kind: trace.EventIdle, Clock: s.clock, PID: -1, Ticks: s.idleStreak})
		s.idleStreak = 0
	}

	if s.boostDue() {
		s.boost()
		level = s.findRunnableQueue()
	}

	if level < 0 {
		s.idleStreak++
		s.Metrics.IdleTicks++
		s.clock++
		return
	}

	q := s.queues[level]
	p := q.TakeNextSchedulableProcess(s.clock)
	resumed := p.IsBlocked()
	start := s.clock
	ran := p.Run(q.Quantum(), start)
	s.clock += ran
	s.record(trace.EventRecord{Kind: trace.EventDispatch, Clock: start, PID: p.id, Level: level, Ran: ran, Resumed: resumed})

	if p.IsFinished() {
		s.Metrics.recordFinish(p, s.clock)
		s.record(trace.EventRecord{Kind: trace.EventFinish, Clock: s.clock, PID: p.id, Level: level,
			Response: p.ResponseTime(), Turnaround: p.TurnaroundTime()})
		return
	}

	blocked := p.IsBlocked()
	if blocked {
		s.record(trace.EventRecord{Kind: trace.EventBlock, Clock: s.clock, PID: p.id, Level: level, Ticks: p.ioDuration})
	}

	// Rule 4
	doIOStay := s.config.IOStay && blocked
	if p.Allotment() == 0 && !doIOStay && level < len(s.queues)-1 {
		s.queues[level+1].AddProcess(p)
		s.record(trace.EventRecord{Kind: trace.EventDemote, Clock: s.clock, PID: p.id, Level: level + 1})
		return
	}
	if doIOStay {
		s.record(trace.EventRecord{Kind: trace.EventStay, Clock: s.clock, PID: p.id, Level: level})
	}

	doIOBump := s.config.IOBump && blocked
	q.PutProcessBack(p, doIOBump)
	if doIOBump {
		s.record(trace.EventRecord{Kind: trace.EventBump, Clock: s.clock, PID: p.id, Level: level})
	}
}

func (s *Scheduler) record(e trace.EventRecord) {
	logrus.Debug(e)
	s.Trace.Record(e)
}

// Rule 5
func (s *Scheduler) boostDue() bool {
	interval := s.config.PriorityBoostInterval
	if interval <= 0 {
		return false
	}
	return s.clock-s.lastBoostTime >= interval
}

func (s *Scheduler) boost() {
	moved := 0
	for _, q := range s.queues[1:] {
		for _, p := range q.PopAll() {
			s.queues[0].AddProcess(p)
			moved++
		}
	}
	s.lastBoostTime = s.clock
	s.record(trace.EventRecord{Kind: trace.EventBoost, Clock: s.clock, PID: -1, Ticks: int64(moved)})
}

// findRunnableQueue returns the highest-priority level holding a schedulable
// process, or -1 if none.
func (s *Scheduler) findRunnableQueue() int {
	for i, q := range s.queues {
		if q.HasSchedulableProcess(s.clock) {
			return i
		}
	}
	return -1
}
