package tally

import (
	"github.com/arloliu/apportion/types"
)

// Votes holds the second-vote aggregates of an election.
type Votes struct {
	// ByState maps state ID to party ID to second votes.
	ByState map[string]map[string]int64

	// National maps party ID to national second votes. It comes from the
	// national aggregate entry when the election carries one.
	National map[string]int64

	// Population maps state ID to apportionment population.
	Population map[string]int64

	// FromAggregate reports whether National was taken from the aggregate entry.
	FromAggregate bool
}

// NationalTotal returns the sum of all national second votes.
func (v *Votes) NationalTotal() int64 {
	var total int64
	for _, n := range v.National {
		total += n
	}

	return total
}

// Aggregate sums second votes per state and nationally.
//
// When e.National carries second votes they replace the summed district totals
// for the national figure; state figures are always summed from districts.
//
// Parameters:
//   - e: Validated election
//
// Returns:
//   - *Votes: Per-state and national second-vote totals with state populations
func Aggregate(e *types.Election) *Votes {
	v := &Votes{
		ByState:    make(map[string]map[string]int64, len(e.States)),
		National:   make(map[string]int64),
		Population: make(map[string]int64, len(e.States)),
	}

	for _, s := range e.States {
		v.ByState[s.ID] = make(map[string]int64)
		v.Population[s.ID] = s.Population
	}

	for _, d := range e.Districts {
		row, ok := v.ByState[d.State]
		if !ok {
			row = make(map[string]int64)
			v.ByState[d.State] = row
		}
		for party, n := range d.SecondVotes {
			row[party] += n
			v.National[party] += n
		}
	}

	if e.National != nil && len(e.National.SecondVotes) > 0 {
		v.National = make(map[string]int64, len(e.National.SecondVotes))
		for party, n := range e.National.SecondVotes {
			v.National[party] = n
		}
		v.FromAggregate = true
	}

	return v
}
