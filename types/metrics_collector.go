package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Search metrics are recorded from the per-state and per-party workers and
// must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RunMetrics
	SearchMetrics
	SeatMetrics
}

// RunMetrics defines metrics for whole calculator runs.
type RunMetrics interface {
	// RecordRunDuration records the wall time of one run.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	//   - success: true if the run produced a result
	RecordRunDuration(duration float64, success bool)
}

// SearchMetrics defines metrics for divisor searches.
type SearchMetrics interface {
	// RecordSearchIterations records how many rounded-sum evaluations a divisor
	// search needed beyond the seed divisor.
	//
	// Parameters:
	//   - stage: Pipeline stage ("state_seats", "list_seats", "redistribution")
	//   - iterations: Number of evaluations (0 when the seed divisor hit the target)
	RecordSearchIterations(stage string, iterations int)

	// RecordTieBreak records a search whose bracket collapsed on a tie and was
	// resolved by entity order.
	RecordTieBreak(stage string)

	// RecordRepairPasses records the number of leveling repair passes.
	RecordRepairPasses(passes int)
}

// SeatMetrics defines gauges describing the final parliament.
type SeatMetrics interface {
	// RecordAssemblySize sets the realized number of seats.
	RecordAssemblySize(seats int)

	// RecordOverhangSeats sets the number of direct mandates exceeding list seats.
	RecordOverhangSeats(seats int)

	// RecordLevelingSeats sets the number of seats added above the floor sums.
	RecordLevelingSeats(seats int)
}
