package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches   int
	Finished          int
	IOBlocks          int
	Demotions         int
	Stays             int
	Bumps             int
	Boosts            int
	IdleTicks         int64
	LevelDistribution map[int]int // queue level → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LevelDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	for _, e := range st.Events {
		switch e.Kind {
		case EventDispatch:
			summary.TotalDispatches++
			summary.LevelDistribution[e.Level]++
		case EventFinish:
			summary.Finished++
		case EventBlock:
			summary.IOBlocks++
		case EventDemote:
			summary.Demotions++
		case EventStay:
			summary.Stays++
		case EventBump:
			summary.Bumps++
		case EventBoost:
			summary.Boosts++
		case EventIdle:
			summary.IdleTicks += e.Ticks
		}
	}

	return summary
}
