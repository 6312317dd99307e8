// Package allocation implements the seat allocation tiers of a mixed-member
// proportional election.
//
// The tiers run in order:
//
//  1. StateSeats: nominal seat total to states by population
//  2. ListSeats: each state's quota to eligible parties by second votes
//  3. MinimumSeats: per-state floor = max(list seats, direct mandates)
//  4. Level: national totals with assembly enlargement so that every party
//     reaches its floor sum
//  5. Redistribute: each party's national total back to states without falling
//     below the per-state floor
//
// Every tier delegates its arithmetic to the divisor package. ListSeats and
// Redistribute fan out over states and parties respectively with a bounded
// worker pool and return only after all workers finished.
package allocation

import (
	"runtime"

	"github.com/arloliu/apportion/divisor"
	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/internal/metrics"
	"github.com/arloliu/apportion/types"
)

// Stage names used for logging and metrics labels.
const (
	StageStateSeats     = "state_seats"
	StageListSeats      = "list_seats"
	StageLeveling       = "leveling"
	StageRedistribution = "redistribution"
)

// Allocator runs the allocation tiers with shared settings.
//
// An Allocator holds no per-run state and is safe for concurrent use.
type Allocator struct {
	parallelism   int
	maxIterations int
	logger        types.Logger
	metrics       types.MetricsCollector
}

// Option configures an Allocator.
type Option func(*Allocator)

// New creates an Allocator.
//
// Parameters:
//   - opts: Optional configuration (WithParallelism, WithMaxIterations, WithLogger, WithMetrics)
//
// Returns:
//   - *Allocator: Allocator ready for use
func New(opts ...Option) *Allocator {
	a := &Allocator{
		parallelism:   runtime.GOMAXPROCS(0),
		maxIterations: divisor.DefaultMaxIterations,
		logger:        logging.NewNop(),
		metrics:       metrics.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	a.normalizeConfig()

	return a
}

// WithParallelism bounds the number of concurrent per-state or per-party workers.
func WithParallelism(n int) Option {
	return func(a *Allocator) {
		a.parallelism = n
	}
}

// WithMaxIterations sets the evaluation bound of every divisor search.
func WithMaxIterations(n int) Option {
	return func(a *Allocator) {
		a.maxIterations = n
	}
}

// WithLogger sets the logger for stage diagnostics.
func WithLogger(logger types.Logger) Option {
	return func(a *Allocator) {
		a.logger = logger
	}
}

// WithMetrics sets the metrics collector for search statistics.
func WithMetrics(m types.MetricsCollector) Option {
	return func(a *Allocator) {
		a.metrics = m
	}
}

func (a *Allocator) normalizeConfig() {
	a.logger = logging.OrNop(a.logger)
	a.metrics = metrics.OrNop(a.metrics)

	if a.parallelism < 1 {
		a.logger.Warn("parallelism below 1, using 1", "requested", a.parallelism)
		a.parallelism = 1
	}
	if a.maxIterations < 1 {
		a.maxIterations = divisor.DefaultMaxIterations
	}
}

func (a *Allocator) divisorOptions(extra ...divisor.Option) []divisor.Option {
	opts := []divisor.Option{
		divisor.WithMaxIterations(a.maxIterations),
		divisor.WithLogger(a.logger),
	}

	return append(opts, extra...)
}

// observe records search statistics of one divisor result.
func (a *Allocator) observe(stage string, res divisor.Result) {
	a.metrics.RecordSearchIterations(stage, res.Iterations)
	if len(res.Ties) > 0 {
		a.metrics.RecordTieBreak(stage)
	}
}
