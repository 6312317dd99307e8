package allocation

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/apportion/divisor"
	"github.com/arloliu/apportion/types"
)

// LevelingMode selects the starting divisor of the national leveling step.
type LevelingMode string

const (
	// LevelingProvisional starts from min_p votes_p / floorSum_p.
	LevelingProvisional LevelingMode = "provisional"

	// LevelingLargest starts from the largest divisor that still lifts every
	// party to its floor sum, producing the smallest enlargement.
	LevelingLargest LevelingMode = "largest"
)

// Valid reports whether m is a known mode.
func (m LevelingMode) Valid() bool {
	return m == LevelingProvisional || m == LevelingLargest
}

// Leveling is the outcome of the national leveling step.
type Leveling struct {
	// Totals maps every eligible party to its final national seat total.
	Totals map[string]int

	// Divisor is the national divisor that produced Totals.
	Divisor float64

	// RepairPasses counts divisor reductions needed after the starting divisor.
	RepairPasses int

	// AssemblySize is the sum of Totals.
	AssemblySize int
}

// Level computes the national seat totals of the eligible parties so that each
// reaches at least its floor sum.
//
// The starting divisor depends on mode. While some party falls below its floor
// sum, the divisor shrinks to the smallest over the violators of the largest
// divisor that lifts each violator to its floor. The repair loop runs at most
// maxPasses times (len(eligible) when maxPasses <= 0).
//
// Parameters:
//   - votes: National second votes per party
//   - floorSums: Floor sum per party
//   - eligible: Eligible party IDs
//   - mode: Starting divisor rule
//   - maxPasses: Repair loop bound
//
// Returns:
//   - Leveling: Totals, divisor and assembly size
//   - error: ErrDegenerateInput or ErrNonConvergence (wrapped)
func (a *Allocator) Level(
	votes map[string]int64,
	floorSums map[string]int,
	eligible []string,
	mode LevelingMode,
	maxPasses int,
) (Leveling, error) {
	if maxPasses <= 0 {
		maxPasses = len(eligible)
	}
	if !mode.Valid() {
		mode = LevelingProvisional
	}

	parties := slices.Clone(eligible)
	slices.Sort(parties)

	d := math.Inf(1)
	for _, p := range parties {
		v, f := votes[p], floorSums[p]
		if v <= 0 || f <= 0 {
			continue
		}

		var candidate float64
		if mode == LevelingLargest {
			candidate = liftDivisor(v, f)
		} else {
			candidate = float64(v) / float64(f)
		}
		d = min(d, candidate)
	}

	if math.IsInf(d, 1) {
		return Leveling{}, fmt.Errorf("%s: %w: no party with both second votes and a positive floor sum", StageLeveling, types.ErrDegenerateInput)
	}

	a.logger.Debug("leveling divisor selected", "stage", StageLeveling, "mode", string(mode), "divisor", d)

	return a.levelFrom(d, parties, votes, floorSums, maxPasses)
}

// levelFrom runs the repair loop starting at divisor d.
func (a *Allocator) levelFrom(d float64, parties []string, votes map[string]int64, floorSums map[string]int, maxPasses int) (Leveling, error) {
	passes := 0
	for {
		totals, violators := levelAt(d, parties, votes, floorSums)
		if len(violators) == 0 {
			size := 0
			for _, n := range totals {
				size += n
			}

			a.metrics.RecordRepairPasses(passes)
			a.logger.Info("national leveling complete",
				"stage", StageLeveling,
				"assembly_size", size,
				"divisor", d,
				"repair_passes", passes)

			return Leveling{Totals: totals, Divisor: d, RepairPasses: passes, AssemblySize: size}, nil
		}

		passes++
		if passes > maxPasses {
			return Leveling{}, fmt.Errorf("%s: %w: %d parties below floor after %d repair passes",
				StageLeveling, types.ErrNonConvergence, len(violators), maxPasses)
		}

		next := d
		for _, p := range violators {
			next = min(next, liftDivisor(votes[p], floorSums[p]))
		}
		a.logger.Debug("leveling repair pass",
			"stage", StageLeveling,
			"pass", passes,
			"violators", violators,
			"divisor", next)
		d = next
	}
}

// levelAt returns the totals at divisor d and the parties below their floor sum.
// Parties without second votes are pinned to their floor sum.
func levelAt(d float64, parties []string, votes map[string]int64, floorSums map[string]int) (map[string]int, []string) {
	totals := make(map[string]int, len(parties))
	var violators []string
	for _, p := range parties {
		if votes[p] <= 0 {
			totals[p] = floorSums[p]
			continue
		}

		totals[p] = divisor.RoundHalfUp(votes[p], d)
		if totals[p] < floorSums[p] {
			violators = append(violators, p)
		}
	}

	return totals, violators
}

// liftDivisor returns the largest divisor d with RoundHalfUp(votes, d) >= floor,
// i.e. votes / (floor - 0.5) adjusted for floating-point rounding.
func liftDivisor(votes int64, floor int) float64 {
	d := float64(votes) / (float64(floor) - 0.5)
	for divisor.RoundHalfUp(votes, d) < floor {
		d = math.Nextafter(d, 0)
	}

	return d
}
