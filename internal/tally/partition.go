// Package tally turns a raw election into the aggregates consumed by the
// seat calculation: the validated district partition, direct-mandate winners
// and second-vote totals per state and nationally.
package tally

import (
	"fmt"

	"github.com/arloliu/apportion/types"
)

// ValidatePartition checks that districts and states form a clean partition.
//
// Every district must appear in exactly one state's Districts list, that state
// must match District.State, and every listed district must exist. State and
// district IDs must be unique and non-empty. Vote counts must be non-negative
// and populations positive: a negative population is invalid input, a zero
// population leaves the state degenerate for the seat distribution.
//
// Parameters:
//   - e: Election to check
//
// Returns:
//   - error: ErrInconsistentPartition, ErrInvalidInput or ErrDegenerateInput (wrapped), nil when valid
func ValidatePartition(e *types.Election) error {
	if e == nil || len(e.States) == 0 {
		return fmt.Errorf("%w: election has no states", types.ErrDegenerateInput)
	}
	if len(e.Districts) == 0 {
		return fmt.Errorf("%w: election has no districts", types.ErrDegenerateInput)
	}

	districts := make(map[string]*types.District, len(e.Districts))
	for i := range e.Districts {
		d := &e.Districts[i]
		if d.ID == "" {
			return fmt.Errorf("%w: district at index %d has no ID", types.ErrInconsistentPartition, i)
		}
		if _, dup := districts[d.ID]; dup {
			return fmt.Errorf("%w: duplicate district %q", types.ErrInconsistentPartition, d.ID)
		}
		if err := checkCounts("district "+d.ID, d.FirstVotes, d.SecondVotes); err != nil {
			return err
		}
		districts[d.ID] = d
	}

	owner := make(map[string]string, len(e.Districts))
	states := make(map[string]struct{}, len(e.States))
	for _, s := range e.States {
		if s.ID == "" {
			return fmt.Errorf("%w: state without ID", types.ErrInconsistentPartition)
		}
		if _, dup := states[s.ID]; dup {
			return fmt.Errorf("%w: duplicate state %q", types.ErrInconsistentPartition, s.ID)
		}
		states[s.ID] = struct{}{}

		if s.Population < 0 {
			return fmt.Errorf("%w: state %q has negative population %d", types.ErrInvalidInput, s.ID, s.Population)
		}
		if s.Population == 0 {
			return fmt.Errorf("%w: state %q has zero population", types.ErrDegenerateInput, s.ID)
		}

		for _, id := range s.Districts {
			d, ok := districts[id]
			if !ok {
				return fmt.Errorf("%w: state %q lists unknown district %q", types.ErrInconsistentPartition, s.ID, id)
			}
			if prev, seen := owner[id]; seen {
				return fmt.Errorf("%w: district %q listed by states %q and %q", types.ErrInconsistentPartition, id, prev, s.ID)
			}
			if d.State != s.ID {
				return fmt.Errorf("%w: district %q belongs to %q but is listed by %q", types.ErrInconsistentPartition, id, d.State, s.ID)
			}
			owner[id] = s.ID
		}
	}

	for _, d := range e.Districts {
		if _, ok := owner[d.ID]; !ok {
			return fmt.Errorf("%w: district %q is not listed by any state", types.ErrInconsistentPartition, d.ID)
		}
	}

	if e.National != nil {
		if err := checkCounts("national aggregate", e.National.FirstVotes, e.National.SecondVotes); err != nil {
			return err
		}
	}

	return nil
}

func checkCounts(where string, tallies ...map[string]int64) error {
	for _, tally := range tallies {
		for party, v := range tally {
			if v < 0 {
				return fmt.Errorf("%w: %s has negative count %d for party %q", types.ErrInvalidInput, where, v, party)
			}
		}
	}

	return nil
}
