package cmd

import (
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/hankbao/cs5600-mlfq/sim"
	"github.com/hankbao/cs5600-mlfq/sim/trace"
	"github.com/hankbao/cs5600-mlfq/sim/workload"
)

var (
	// CLI flags for the queue ladder
	quantums   []int64 // Quantum of each queue, highest priority first
	allotments []int64 // Allotment of each queue, highest priority first
	admitFront []bool  // Whether each queue admits new processes at the front

	// CLI flags for the scheduler policy
	boostInterval int64 // Priority boost period in ticks (0 = off)
	ioBump        bool  // Processes returning from I/O jump ahead of later-scheduled peers
	ioStay        bool  // Processes blocking on I/O are not demoted

	jobsSpec     string                 // Colon-separated jobs, each "arrival,workload,ioInterval,ioDuration"
	randomJobs   workload.RandomJobSpec // Random job generation, replaces --jobs when NumJobs > 0
	configPath   string                 // Optional YAML scenario file
	horizon      int64                  // Stop stepping once the clock passes this tick
	logLevel     string                 // Log verbosity level
	traceLevel   string                 // Event trace level
	printSummary bool                   // Print the per-process table and trace summary
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mlfq",
	Short: "Discrete-time simulator for the Multi-Level Feedback Queue scheduling policy",
}

// runCmd executes the simulation using parameters from CLI flags and the optional scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the MLFQ simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		input := simulationInput{}
		changed := func(string) bool { return true }
		if configPath != "" {
			scenario, err := LoadScenario(configPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario; %v", err)
			}
			input = scenario.toInput()
			changed = cmd.Flags().Changed
		}
		opts := runOptions{
			quantums:      quantums,
			allotments:    allotments,
			admitFront:    admitFront,
			jobs:          jobsSpec,
			boostInterval: boostInterval,
			ioBump:        ioBump,
			ioStay:        ioStay,
			random:        randomJobs,
		}
		if err := opts.apply(&input, changed); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := input.validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation with %d queues, %d jobs, boost=%d, ioBump=%v, ioStay=%v",
			len(input.queues), len(input.jobs), input.scheduler.PriorityBoostInterval,
			input.scheduler.IOBump, input.scheduler.IOStay)

		s := sim.NewScheduler(input.scheduler, input.queues)
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(traceLevel)})
		s.AddJobs(input.jobs)
		s.Run(horizon)
		if !s.IsFinished() {
			logrus.Warnf("Horizon %d reached with processes still queued", horizon)
		}

		out := cmd.OutOrStdout()
		printEventLog(out, s.Trace)
		s.Metrics.Print(out)
		if printSummary {
			printProcessTable(out, s.Metrics.Processes)
			printTraceSummary(out, trace.Summarize(s.Trace))
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML scenario file; flags set explicitly override its values")
	runCmd.Flags().Int64Var(&horizon, "horizon", math.MaxInt64, "Total simulation horizon (in ticks)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "events", "Event trace level (none, events)")
	runCmd.Flags().BoolVar(&printSummary, "summary", false, "Print per-process statistics and a trace summary")

	// Queue ladder; setting any of these replaces every queue from the scenario file
	runCmd.Flags().Int64SliceVar(&quantums, "quantums", []int64{10, 20, 40}, "Comma-separated quantum per queue, highest priority first")
	runCmd.Flags().Int64SliceVar(&allotments, "allotments", []int64{20, 40, 80}, "Comma-separated allotment per queue, highest priority first")
	runCmd.Flags().BoolSliceVar(&admitFront, "admit-front", nil, "Comma-separated admit-at-front flag per queue (default all false)")

	// Scheduler policy
	runCmd.Flags().Int64Var(&boostInterval, "boost", 0, "Priority boost interval in ticks (0 disables boosting)")
	runCmd.Flags().BoolVar(&ioBump, "io-bump", false, "Let processes returning from I/O jump ahead of later-scheduled peers")
	runCmd.Flags().BoolVar(&ioStay, "io-stay", false, "Keep processes that block on I/O at their current level")

	// Jobs
	runCmd.Flags().StringVar(&jobsSpec, "jobs", "0,100,10,5:0,60,0,0:20,30,4,2",
		"Colon-separated jobs, each arrival,workload,ioInterval,ioDuration (ioInterval 0 = no I/O)")

	// Random jobs
	runCmd.Flags().IntVar(&randomJobs.NumJobs, "random-jobs", 0, "Number of random jobs to generate instead of --jobs (0 = off)")
	runCmd.Flags().Int64Var(&randomJobs.Seed, "seed", 42, "Seed for random job generation")
	runCmd.Flags().Int64Var(&randomJobs.MaxWorkload, "max-workload", 100, "Max workload of a random job")
	runCmd.Flags().Int64Var(&randomJobs.MaxIOInterval, "max-io-interval", 10, "Max I/O interval of a random job (0 = CPU-bound jobs)")
	runCmd.Flags().Int64Var(&randomJobs.IODuration, "io-duration", 5, "I/O duration of every random job")
	runCmd.Flags().Int64Var(&randomJobs.MaxArrival, "max-arrival", 0, "Max arrival time of a random job")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
