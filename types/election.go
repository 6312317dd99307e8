package types

import (
	"maps"
	"slices"
)

// Tally holds per-party vote counts for one area.
//
// First votes elect the district candidate; second votes are cast for a party's
// state list and decide the proportional share.
type Tally struct {
	// FirstVotes maps party ID to first-vote count.
	FirstVotes map[string]int64 `json:"firstVotes" yaml:"firstVotes"`

	// SecondVotes maps party ID to second-vote count.
	SecondVotes map[string]int64 `json:"secondVotes" yaml:"secondVotes"`
}

// District is a single-member electoral district.
type District struct {
	// ID uniquely identifies the district.
	ID string `json:"id" yaml:"id"`

	// State is the ID of the state that owns the district.
	State string `json:"state" yaml:"state"`

	// FirstVotes maps party ID to first-vote count.
	FirstVotes map[string]int64 `json:"firstVotes" yaml:"firstVotes"`

	// SecondVotes maps party ID to second-vote count.
	SecondVotes map[string]int64 `json:"secondVotes" yaml:"secondVotes"`
}

// State is a federal state receiving a population-based seat quota.
type State struct {
	// ID uniquely identifies the state.
	ID string `json:"id" yaml:"id"`

	// Population is the apportionment population (must be positive).
	Population int64 `json:"population" yaml:"population"`

	// Districts lists the IDs of the districts in this state, in ballot order.
	Districts []string `json:"districts" yaml:"districts"`
}

// Election is the complete, already-cleaned input of one run.
//
// Districts and States must describe the same partition: every district appears
// in exactly one state's Districts list, and that state matches District.State.
type Election struct {
	// Name is a free-form label (e.g., "btw2017").
	Name string `json:"name" yaml:"name"`

	// Districts holds every district tally.
	Districts []District `json:"districts" yaml:"districts"`

	// States holds every state with its population and district list.
	States []State `json:"states" yaml:"states"`

	// National is the optional nationwide aggregate entry. When present, its
	// second votes replace the summed district totals for eligibility and leveling.
	National *Tally `json:"national,omitempty" yaml:"national,omitempty"`
}

// Parties returns the sorted set of party IDs that appear anywhere in the election.
//
// Returns:
//   - []string: Party IDs in lexical order
func (e *Election) Parties() []string {
	seen := make(map[string]struct{})
	for _, d := range e.Districts {
		for p := range d.FirstVotes {
			seen[p] = struct{}{}
		}
		for p := range d.SecondVotes {
			seen[p] = struct{}{}
		}
	}
	if e.National != nil {
		for p := range e.National.FirstVotes {
			seen[p] = struct{}{}
		}
		for p := range e.National.SecondVotes {
			seen[p] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// StateIDs returns the state IDs in input order.
func (e *Election) StateIDs() []string {
	ids := make([]string, len(e.States))
	for i, s := range e.States {
		ids[i] = s.ID
	}

	return ids
}

// Clone returns a deep copy of the election.
func (e *Election) Clone() *Election {
	if e == nil {
		return nil
	}

	out := &Election{
		Name:      e.Name,
		Districts: make([]District, len(e.Districts)),
		States:    make([]State, len(e.States)),
	}

	for i, d := range e.Districts {
		out.Districts[i] = District{
			ID:          d.ID,
			State:       d.State,
			FirstVotes:  maps.Clone(d.FirstVotes),
			SecondVotes: maps.Clone(d.SecondVotes),
		}
	}

	for i, s := range e.States {
		out.States[i] = State{
			ID:         s.ID,
			Population: s.Population,
			Districts:  slices.Clone(s.Districts),
		}
	}

	if e.National != nil {
		out.National = &Tally{
			FirstVotes:  maps.Clone(e.National.FirstVotes),
			SecondVotes: maps.Clone(e.National.SecondVotes),
		}
	}

	return out
}
