package allocation

import (
	"context"
	"fmt"
	"slices"

	"github.com/arloliu/apportion/divisor"
	"github.com/arloliu/apportion/types"
)

// Redistribute splits every party's national total across states by its
// second votes per state, never placing the party below its per-state floor.
//
// Each party runs two phases. Phase one is the unconstrained apportionment. If
// every state meets its floor the result stands; otherwise phase two repeats
// the search with floors, seeded with the phase-one divisor. Parties are
// independent and run concurrently.
//
// Parameters:
//   - ctx: Context for cancellation
//   - totals: National seat total per party
//   - votesByState: State ID to party ID to second votes
//   - floors: Minimum seats per party and state
//   - states: State IDs
//
// Returns:
//   - types.SeatMatrix: Seats per party and state; rows sum to totals
//   - error: ErrFloorViolation, ErrDegenerateInput or ErrNonConvergence (wrapped), or the context error
func (a *Allocator) Redistribute(
	ctx context.Context,
	totals map[string]int,
	votesByState map[string]map[string]int64,
	floors types.SeatMatrix,
	states []string,
) (types.SeatMatrix, error) {
	parties := make([]string, 0, len(totals))
	for p := range totals {
		parties = append(parties, p)
	}
	slices.Sort(parties)

	results, err := a.fanOut(ctx, parties, func(_ context.Context, party string) (map[string]int, error) {
		partyVotes := make(map[string]int64, len(states))
		partyFloors := make(map[string]int, len(states))
		for _, s := range states {
			partyVotes[s] = votesByState[s][party]
			partyFloors[s] = floors.Get(party, s)
		}

		return a.redistributeParty(party, partyVotes, partyFloors, totals[party])
	})
	if err != nil {
		return nil, err
	}

	matrix := make(types.SeatMatrix, len(parties))
	results.Range(func(party string, seats map[string]int) bool {
		for state, n := range seats {
			matrix.Set(party, state, n)
		}

		return true
	})

	a.logger.Info("national totals redistributed",
		"stage", StageRedistribution,
		"parties", len(parties),
		"seats", matrix.Total())

	return matrix, nil
}

func (a *Allocator) redistributeParty(party string, votes map[string]int64, floors map[string]int, total int) (map[string]int, error) {
	var voteSum int64
	for _, v := range votes {
		voteSum += v
	}

	floorSum := 0
	for _, f := range floors {
		floorSum += f
	}

	if total < floorSum {
		return nil, fmt.Errorf("%s: party %q: %w: total %d below floor sum %d",
			StageRedistribution, party, types.ErrFloorViolation, total, floorSum)
	}

	// Parties without second votes hold only their floors.
	if voteSum == 0 {
		if total == floorSum {
			return floors, nil
		}

		return nil, fmt.Errorf("%s: party %q: %w: %d seats but no second votes",
			StageRedistribution, party, types.ErrDegenerateInput, total)
	}

	free, err := divisor.Apportion(votes, total, a.divisorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: party %q: %w", StageRedistribution, party, err)
	}
	a.observe(StageRedistribution, free)

	if meetsFloors(free.Seats, floors) {
		return free.Seats, nil
	}

	constrained, err := divisor.ApportionWithFloors(votes, floors, total,
		a.divisorOptions(divisor.WithInitialDivisor(free.Divisor))...)
	if err != nil {
		return nil, fmt.Errorf("%s: party %q: %w", StageRedistribution, party, err)
	}
	a.observe(StageRedistribution, constrained)

	a.logger.Debug("floors enforced during redistribution",
		"stage", StageRedistribution,
		"party", party,
		"total", total,
		"divisor", constrained.Divisor)

	return constrained.Seats, nil
}

func meetsFloors(seats, floors map[string]int) bool {
	for state, f := range floors {
		if seats[state] < f {
			return false
		}
	}

	return true
}
