package allocation

import "github.com/arloliu/apportion/types"

// Floors holds the minimum seat entitlement of every eligible party.
type Floors struct {
	// ByState is max(list seats, direct mandates) per party and state.
	ByState types.SeatMatrix

	// Sums is the per-party sum of ByState over all states.
	Sums map[string]int
}

// MinimumSeats computes each eligible party's per-state floor as the larger of
// its list seats and its direct mandates, plus the national floor sums.
//
// Parameters:
//   - list: List seats per party and state
//   - direct: Direct mandates per party and state
//   - eligible: Eligible party IDs
//   - states: State IDs
//
// Returns:
//   - Floors: Per-state floors and floor sums (entries exist for every eligible party and state)
func MinimumSeats(list, direct types.SeatMatrix, eligible []string, states []string) Floors {
	f := Floors{
		ByState: make(types.SeatMatrix, len(eligible)),
		Sums:    make(map[string]int, len(eligible)),
	}

	for _, party := range eligible {
		sum := 0
		for _, state := range states {
			floor := max(list.Get(party, state), direct.Get(party, state))
			f.ByState.Set(party, state, floor)
			sum += floor
		}
		f.Sums[party] = sum
	}

	return f
}
