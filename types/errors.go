package types

import "errors"

// Sentinel errors for the apportion library.
//
// These errors provide type-safe error checking using errors.Is().
// All components wrap them with context using fmt.Errorf("%w: ...", err)
// so callers can match the error kind without parsing messages.
//
// Every error aborts the run. A partially computed parliament is never
// returned alongside an error.

// Input errors - returned when the election data cannot be apportioned.
var (
	// ErrDegenerateInput is returned when an apportionment has nothing to divide:
	// zero total votes, an empty entity set, or no positive population.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInconsistentPartition is returned when the district/state partition is
	// not exhaustive or not unique.
	ErrInconsistentPartition = errors.New("inconsistent district partition")

	// ErrInvalidInput is returned for malformed values such as negative vote counts
	// or a negative seat target.
	ErrInvalidInput = errors.New("invalid input")
)

// Search errors - returned by the divisor searches.
var (
	// ErrNonConvergence is returned when a divisor search or repair loop exceeds its
	// iteration bound. It signals a data or logic defect and is never retried.
	ErrNonConvergence = errors.New("divisor search did not converge")

	// ErrFloorViolation is returned when a target cannot be met without placing some
	// entity below its floor.
	ErrFloorViolation = errors.New("seat floor violation")
)

// Calculator errors - returned when constructing or running a Calculator.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrVoteSourceRequired is returned when the vote source is nil.
	ErrVoteSourceRequired = errors.New("vote source is required")
)
