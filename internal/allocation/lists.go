package allocation

import (
	"context"
	"fmt"
	"slices"

	"github.com/arloliu/apportion/divisor"
	"github.com/arloliu/apportion/types"
)

// ListSeats apportions every state's quota among the eligible parties by their
// second votes in that state. States are independent and run concurrently.
//
// Parameters:
//   - ctx: Context for cancellation
//   - votesByState: State ID to party ID to second votes
//   - quotas: Seat quota per state
//   - eligible: Party IDs taking part in the allocation
//
// Returns:
//   - types.SeatMatrix: List seats per eligible party and state
//   - error: Divisor errors wrapped with stage and state, or the context error
func (a *Allocator) ListSeats(
	ctx context.Context,
	votesByState map[string]map[string]int64,
	quotas map[string]int,
	eligible []string,
) (types.SeatMatrix, error) {
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%s: %w: no eligible parties", StageListSeats, types.ErrDegenerateInput)
	}

	states := make([]string, 0, len(quotas))
	for state := range quotas {
		states = append(states, state)
	}
	slices.Sort(states)

	results, err := a.fanOut(ctx, states, func(_ context.Context, state string) (map[string]int, error) {
		return a.listSeatsForState(state, votesByState[state], quotas[state], eligible)
	})
	if err != nil {
		return nil, err
	}

	matrix := make(types.SeatMatrix, len(eligible))
	for _, party := range eligible {
		matrix[party] = make(map[string]int, len(states))
	}
	results.Range(func(state string, seats map[string]int) bool {
		for party, n := range seats {
			matrix.Set(party, state, n)
		}

		return true
	})

	a.logger.Info("list seats apportioned",
		"stage", StageListSeats,
		"states", len(states),
		"parties", len(eligible),
		"seats", matrix.Total())

	return matrix, nil
}

func (a *Allocator) listSeatsForState(state string, votes map[string]int64, quota int, eligible []string) (map[string]int, error) {
	stateVotes := make(map[string]int64, len(eligible))
	for _, party := range eligible {
		stateVotes[party] = votes[party]
	}

	if quota == 0 {
		seats := make(map[string]int, len(eligible))
		for _, party := range eligible {
			seats[party] = 0
		}

		return seats, nil
	}

	res, err := divisor.Apportion(stateVotes, quota, a.divisorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: state %q: %w", StageListSeats, state, err)
	}

	a.observe(StageListSeats, res)
	a.logger.Debug("state list seats apportioned",
		"stage", StageListSeats,
		"state", state,
		"quota", quota,
		"divisor", res.Divisor,
		"iterations", res.Iterations)

	return res.Seats, nil
}
