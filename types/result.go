package types

import (
	"maps"
	"slices"
)

// SeatMatrix maps party ID → state ID → seats.
//
// Row sums are party national totals; column sums are realized state sizes.
type SeatMatrix map[string]map[string]int

// Get returns the seats of party in state (0 if absent).
func (m SeatMatrix) Get(party, state string) int {
	return m[party][state]
}

// Set stores seats for party in state, allocating the row on demand.
func (m SeatMatrix) Set(party, state string, seats int) {
	row, ok := m[party]
	if !ok {
		row = make(map[string]int)
		m[party] = row
	}
	row[state] = seats
}

// PartyTotal returns the sum of a party's seats across all states.
func (m SeatMatrix) PartyTotal(party string) int {
	total := 0
	for _, seats := range m[party] {
		total += seats
	}

	return total
}

// StateTotal returns the sum of all parties' seats in a state.
func (m SeatMatrix) StateTotal(state string) int {
	total := 0
	for _, row := range m {
		total += row[state]
	}

	return total
}

// Total returns the sum of all cells.
func (m SeatMatrix) Total() int {
	total := 0
	for party := range m {
		total += m.PartyTotal(party)
	}

	return total
}

// Parties returns the party IDs present in the matrix in lexical order.
func (m SeatMatrix) Parties() []string {
	return slices.Sorted(maps.Keys(m))
}

// PartyResult describes one party after the full pipeline.
type PartyResult struct {
	// ID is the party ID.
	ID string `json:"id" yaml:"id"`

	// Eligible reports whether the party passed the threshold test.
	Eligible bool `json:"eligible" yaml:"eligible"`

	// SecondVotes is the national second-vote total used for eligibility and leveling.
	SecondVotes int64 `json:"secondVotes" yaml:"secondVotes"`

	// VoteShare is SecondVotes divided by all national second votes.
	VoteShare float64 `json:"voteShare" yaml:"voteShare"`

	// ProportionalShare is VoteShare multiplied by the nominal seat total, the
	// seat count a purely proportional parliament of nominal size would award.
	ProportionalShare float64 `json:"proportionalShare" yaml:"proportionalShare"`

	// DirectMandates is the number of districts won nationally.
	DirectMandates int `json:"directMandates" yaml:"directMandates"`

	// FloorSum is the sum over states of max(list seats, direct mandates).
	FloorSum int `json:"floorSum" yaml:"floorSum"`

	// NationalTotal is the final seat total after leveling (0 for ineligible parties).
	NationalTotal int `json:"nationalTotal" yaml:"nationalTotal"`
}

// BreakdownRow is the overhang/leveling view of one party in one state.
type BreakdownRow struct {
	Party          string `json:"party" yaml:"party"`
	State          string `json:"state" yaml:"state"`
	ListSeats      int    `json:"listSeats" yaml:"listSeats"`
	DirectMandates int    `json:"directMandates" yaml:"directMandates"`
	Floor          int    `json:"floor" yaml:"floor"`
	Seats          int    `json:"seats" yaml:"seats"`

	// Overhang is max(0, DirectMandates - ListSeats).
	Overhang int `json:"overhang" yaml:"overhang"`

	// Leveling is Seats - Floor, the seats added by the national leveling step.
	Leveling int `json:"leveling" yaml:"leveling"`
}

// Result is the complete output of one run.
type Result struct {
	// RunID uniquely identifies the run.
	RunID string `json:"runId" yaml:"runId"`

	// Election is the input election name.
	Election string `json:"election" yaml:"election"`

	// InputsHash fingerprints the normalized input election.
	InputsHash string `json:"inputsHash" yaml:"inputsHash"`

	// NominalSeats is the configured seat total apportioned to states.
	NominalSeats int `json:"nominalSeats" yaml:"nominalSeats"`

	// AssemblySize is the realized seat total after leveling.
	AssemblySize int `json:"assemblySize" yaml:"assemblySize"`

	// StateQuotas is the initial population-based seat quota per state.
	StateQuotas map[string]int `json:"stateQuotas" yaml:"stateQuotas"`

	// Eligible lists the eligible party IDs in lexical order.
	Eligible []string `json:"eligible" yaml:"eligible"`

	// Parties describes every party that received votes, in lexical order.
	Parties []PartyResult `json:"parties" yaml:"parties"`

	// ListSeats is the per-state list apportionment among eligible parties.
	ListSeats SeatMatrix `json:"listSeats" yaml:"listSeats"`

	// DirectMandates counts district wins per party and state.
	DirectMandates SeatMatrix `json:"directMandates" yaml:"directMandates"`

	// Seats is the final seat matrix for eligible parties.
	Seats SeatMatrix `json:"seats" yaml:"seats"`

	// NationalTotals maps eligible party ID to its final seat total.
	NationalTotals map[string]int `json:"nationalTotals" yaml:"nationalTotals"`

	// Breakdown lists one row per eligible party and state, sorted by party then state order.
	Breakdown []BreakdownRow `json:"breakdown" yaml:"breakdown"`

	// UnattachedMandates counts districts won by ineligible parties. These are
	// reported but take no part in the seat matrix.
	UnattachedMandates SeatMatrix `json:"unattachedMandates,omitempty" yaml:"unattachedMandates,omitempty"`

	// LevelingDivisor is the national divisor that produced NationalTotals.
	LevelingDivisor float64 `json:"levelingDivisor" yaml:"levelingDivisor"`

	// Coalitions holds the coalition evaluations in configuration order.
	Coalitions []CoalitionResult `json:"coalitions,omitempty" yaml:"coalitions,omitempty"`
}

// Party returns the PartyResult for id.
func (r *Result) Party(id string) (PartyResult, bool) {
	for _, p := range r.Parties {
		if p.ID == id {
			return p, true
		}
	}

	return PartyResult{}, false
}

// Coalition returns the CoalitionResult named name.
func (r *Result) Coalition(name string) (CoalitionResult, bool) {
	for _, c := range r.Coalitions {
		if c.Name == name {
			return c, true
		}
	}

	return CoalitionResult{}, false
}
