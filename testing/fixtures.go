package testing

import (
	"maps"

	"github.com/arloliu/apportion/types"
)

// ElectionBuilder assembles an Election state by state.
//
// Districts added with District belong to the most recently added state.
type ElectionBuilder struct {
	election *types.Election
	national *types.Tally
}

// NewElection starts a new election with the given name.
//
// Example:
//
//	votes := map[string]int64{"A": 10, "B": 4}
//	e := apportiontest.NewElection("tiny").
//	    State("S1", 100).
//	    District("d1", votes, votes).
//	    Build()
func NewElection(name string) *ElectionBuilder {
	return &ElectionBuilder{election: &types.Election{Name: name}}
}

// State appends a state with the given population.
func (b *ElectionBuilder) State(id string, population int64) *ElectionBuilder {
	b.election.States = append(b.election.States, types.State{ID: id, Population: population})
	return b
}

// District appends a district to the last added state. The vote maps are
// copied.
func (b *ElectionBuilder) District(id string, firstVotes, secondVotes map[string]int64) *ElectionBuilder {
	n := len(b.election.States)
	if n == 0 {
		panic("apportion testing: District called before State")
	}

	state := &b.election.States[n-1]
	state.Districts = append(state.Districts, id)
	b.election.Districts = append(b.election.Districts, types.District{
		ID:          id,
		State:       state.ID,
		FirstVotes:  maps.Clone(firstVotes),
		SecondVotes: maps.Clone(secondVotes),
	})

	return b
}

// National sets the nationwide aggregate second votes.
func (b *ElectionBuilder) National(secondVotes map[string]int64) *ElectionBuilder {
	b.national = &types.Tally{SecondVotes: maps.Clone(secondVotes)}
	return b
}

// Build returns a deep copy of the assembled election.
func (b *ElectionBuilder) Build() *types.Election {
	e := b.election.Clone()
	if b.national != nil {
		e.National = &types.Tally{SecondVotes: maps.Clone(b.national.SecondVotes)}
	}

	return e
}

// SmallElection returns a two-state election small enough to check by hand.
//
// With 10 nominal seats the states receive 6 and 4. Parties A, B and C pass
// the 5% threshold, D (4%) does not. A wins all four districts of S1 against a
// list entitlement of 3, producing one overhang seat; D wins district d6.
//
// Expected outcome with the default configuration: national totals A=5, B=6,
// C=2 (assembly 13, leveling divisor 80) and seats S1: A4 B3 C1, S2: A1 B3 C1.
func SmallElection() *types.Election {
	s1Second := map[string]int64{"A": 75, "B": 50, "C": 20, "D": 5}
	s2Second := map[string]int64{"A": 50, "B": 120, "C": 20, "D": 10}
	aWins := map[string]int64{"A": 100, "B": 50}

	return NewElection("small").
		State("S1", 600).
		District("d1", aWins, s1Second).
		District("d2", aWins, s1Second).
		District("d3", aWins, s1Second).
		District("d4", aWins, s1Second).
		State("S2", 400).
		District("d5", aWins, s2Second).
		District("d6", map[string]int64{"D": 100, "A": 40, "B": 30}, s2Second).
		Build()
}
