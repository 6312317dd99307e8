package divisor

import (
	"math"

	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/types"
)

// DefaultMaxIterations bounds the number of rounded-sum evaluations per search.
const DefaultMaxIterations = 256

// Option configures a single Apportion or ApportionWithFloors call.
type Option func(*settings)

type settings struct {
	initialDivisor float64
	maxIterations  int
	logger         types.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		maxIterations: DefaultMaxIterations,
		logger:        logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	s.normalize()

	return s
}

func (s *settings) normalize() {
	if s.maxIterations <= 0 {
		s.maxIterations = DefaultMaxIterations
	}

	if s.initialDivisor <= 0 || math.IsInf(s.initialDivisor, 0) || math.IsNaN(s.initialDivisor) {
		s.initialDivisor = 0
	}

	s.logger = logging.OrNop(s.logger)
}

// WithInitialDivisor seeds the search with d instead of Σvotes / T.
//
// Redistribution uses this to start the floor-constrained search from the
// divisor found by the unconstrained pass. Non-positive or non-finite values
// are ignored.
func WithInitialDivisor(d float64) Option {
	return func(s *settings) {
		s.initialDivisor = d
	}
}

// WithMaxIterations sets the evaluation bound after which the search fails with
// ErrNonConvergence. Non-positive values select DefaultMaxIterations.
func WithMaxIterations(n int) Option {
	return func(s *settings) {
		s.maxIterations = n
	}
}

// WithLogger sets the logger used for search diagnostics and tie warnings.
func WithLogger(logger types.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
