package apportion

import "github.com/arloliu/apportion/types"

// Sentinel errors returned by the Calculator and its components.
//
// They are re-exported from the types package so callers can match them with
// errors.Is without importing types.
var (
	// ErrDegenerateInput is returned when there is nothing to apportion.
	ErrDegenerateInput = types.ErrDegenerateInput

	// ErrInconsistentPartition is returned when districts and states do not form a partition.
	ErrInconsistentPartition = types.ErrInconsistentPartition

	// ErrInvalidInput is returned for negative counts or malformed datasets.
	ErrInvalidInput = types.ErrInvalidInput

	// ErrNonConvergence is returned when a divisor search or the leveling repair loop exceeds its bound.
	ErrNonConvergence = types.ErrNonConvergence

	// ErrFloorViolation is returned when a seat target is below the sum of the floors.
	ErrFloorViolation = types.ErrFloorViolation

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrVoteSourceRequired is returned when the vote source is nil.
	ErrVoteSourceRequired = types.ErrVoteSourceRequired
)
