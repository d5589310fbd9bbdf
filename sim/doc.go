// Package sim provides the core discrete-time engine for the MLFQ simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (ready → running → blocked/finished) and state machine
//   - queue.go: one priority level, its admission side and selection order
//   - scheduler.go: the step loop applying the MLFQ rules across the queue ladder
//
// # Architecture
//
// The Scheduler owns every Queue and the simulated clock. A Process is held by
// exactly one Queue, or by the Scheduler while it is being dispatched, and is
// dropped once it finishes. Callers drive the simulation by calling Advance
// until IsFinished reports true, then read the aggregate statistics.
//
// Decision records are written to a trace.SimulationTrace (sim/trace/), which
// stores pure data and has no dependency on this package.
//
// The engine assumes validated configuration; the Validate methods in
// config.go are provided for the driver layer (cmd/).
package sim
