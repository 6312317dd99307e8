package tally

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/types"
)

// Mandates holds the direct-mandate winners of an election.
type Mandates struct {
	// Winners maps district ID to the winning party ID.
	Winners map[string]string

	// ByState counts district wins per party and state.
	ByState types.SeatMatrix

	// National counts district wins per party.
	National map[string]int
}

// ResolveDirectMandates finds the plurality winner of every district.
//
// A tie on first votes goes to the lexically smallest party ID and is logged
// at Warn level. The partition must already be validated.
//
// Parameters:
//   - e: Validated election
//   - logger: Logger for tie warnings (nil for none)
//
// Returns:
//   - *Mandates: Winners with per-state and national counts
//   - error: ErrDegenerateInput (wrapped) when a district has no positive first votes
func ResolveDirectMandates(e *types.Election, logger types.Logger) (*Mandates, error) {
	logger = logging.OrNop(logger)

	m := &Mandates{
		Winners:  make(map[string]string, len(e.Districts)),
		ByState:  make(types.SeatMatrix),
		National: make(map[string]int),
	}

	for _, d := range e.Districts {
		winner, tied, err := plurality(d.FirstVotes)
		if err != nil {
			return nil, fmt.Errorf("district %q: %w", d.ID, err)
		}
		if len(tied) > 1 {
			logger.Warn("district tie resolved by party order",
				"district", d.ID,
				"state", d.State,
				"tied", tied,
				"winner", winner)
		}

		m.Winners[d.ID] = winner
		m.ByState.Set(winner, d.State, m.ByState.Get(winner, d.State)+1)
		m.National[winner]++
	}

	return m, nil
}

// plurality returns the party with the most votes and every party sharing that count.
func plurality(votes map[string]int64) (string, []string, error) {
	var best int64
	var tied []string
	for _, party := range slices.Sorted(maps.Keys(votes)) {
		v := votes[party]
		switch {
		case v > best:
			best = v
			tied = []string{party}
		case v == best && v > 0:
			tied = append(tied, party)
		}
	}

	if best == 0 {
		return "", nil, fmt.Errorf("%w: no first votes cast", types.ErrDegenerateInput)
	}

	return tied[0], tied, nil
}
