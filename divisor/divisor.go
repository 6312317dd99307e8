package divisor

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/arloliu/apportion/types"
)

// Result is the outcome of one divisor search.
type Result struct {
	// Seats maps every input entity to its seat count.
	Seats map[string]int

	// Divisor is the divisor that produced Seats. It is +Inf when the target is 0.
	Divisor float64

	// Iterations counts rounded-sum evaluations after the seed divisor.
	Iterations int

	// Ties lists, in lexical order, the entities that were tied at the final
	// breakpoint. Empty unless the search had to break a tie.
	Ties []string
}

// Sum returns the total number of seats in the result.
func (r Result) Sum() int {
	total := 0
	for _, seats := range r.Seats {
		total += seats
	}

	return total
}

// RoundHalfUp returns floor(votes/d + 0.5), the Sainte-Laguë rounding rule.
//
// Parameters:
//   - votes: Non-negative vote count
//   - d: Positive divisor
//
// Returns:
//   - int: Rounded quotient (0 when d is +Inf, capped at math.MaxInt32)
func RoundHalfUp(votes int64, d float64) int {
	q := math.Floor(float64(votes)/d + 0.5)
	if q >= math.MaxInt32 {
		return math.MaxInt32
	}

	return int(q)
}

// Apportion distributes seats among entities in proportion to votes.
//
// Parameters:
//   - votes: Vote count per entity; at least one must be positive
//   - seats: Target number of seats (T >= 0)
//   - opts: Optional configuration (WithInitialDivisor, WithMaxIterations, WithLogger)
//
// Returns:
//   - Result: Seats per entity summing to exactly seats
//   - error: ErrInvalidInput, ErrDegenerateInput or ErrNonConvergence (wrapped)
//
// Example:
//
//	res, err := divisor.Apportion(map[string]int64{"X": 600, "Y": 400}, 10)
//	// res.Seats == {"X": 6, "Y": 4}, res.Iterations == 0
func Apportion(votes map[string]int64, seats int, opts ...Option) (Result, error) {
	if err := validate(votes, nil, seats); err != nil {
		return Result{}, err
	}

	return search(votes, nil, seats, newSettings(opts))
}

// ApportionWithFloors distributes seats like Apportion, but never awards an
// entity fewer seats than its floor.
//
// Parameters:
//   - votes: Vote count per entity; at least one must be positive
//   - floors: Minimum seats per entity; entities without an entry have floor 0
//   - seats: Target number of seats; must be at least the sum of the floors
//   - opts: Optional configuration (WithInitialDivisor, WithMaxIterations, WithLogger)
//
// Returns:
//   - Result: Seats per entity, each >= its floor, summing to exactly seats
//   - error: ErrFloorViolation when seats < Σ floors, otherwise as Apportion
func ApportionWithFloors(votes map[string]int64, floors map[string]int, seats int, opts ...Option) (Result, error) {
	if err := validate(votes, floors, seats); err != nil {
		return Result{}, err
	}

	floorSum := 0
	for _, f := range floors {
		floorSum += f
	}

	if seats < floorSum {
		return Result{}, fmt.Errorf("%w: target %d is below floor sum %d", types.ErrFloorViolation, seats, floorSum)
	}

	return search(votes, floors, seats, newSettings(opts))
}

func validate(votes map[string]int64, floors map[string]int, seats int) error {
	if seats < 0 {
		return fmt.Errorf("%w: negative seat target %d", types.ErrInvalidInput, seats)
	}

	if len(votes) == 0 {
		return fmt.Errorf("%w: no entities to apportion", types.ErrDegenerateInput)
	}

	var total int64
	for _, id := range slices.Sorted(maps.Keys(votes)) {
		v := votes[id]
		if v < 0 {
			return fmt.Errorf("%w: entity %q has negative votes %d", types.ErrInvalidInput, id, v)
		}
		total += v
	}

	for _, id := range slices.Sorted(maps.Keys(floors)) {
		if floors[id] < 0 {
			return fmt.Errorf("%w: entity %q has negative floor %d", types.ErrInvalidInput, id, floors[id])
		}
		if _, ok := votes[id]; !ok {
			return fmt.Errorf("%w: floor given for unknown entity %q", types.ErrInvalidInput, id)
		}
	}

	if total == 0 {
		return fmt.Errorf("%w: all %d entities have zero votes", types.ErrDegenerateInput, len(votes))
	}

	return nil
}
