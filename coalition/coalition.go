// Package coalition evaluates whether sets of parties command a majority of a
// parliament.
//
// A coalition's margin is its seat sum minus the majority threshold
// ceil(assembly / 2). Coalitions with a non-negative margin are labelled
// types.CoalitionPossible.
package coalition

import (
	"github.com/arloliu/apportion/types"
)

// Majority returns the number of seats needed for a majority of an assembly of
// the given size, ceil(size / 2).
func Majority(size int) int {
	return (size + 1) / 2
}

// Evaluate computes the seat sum, margin and label of every coalition.
//
// Members absent from totals contribute no seats and are listed in Missing.
//
// Parameters:
//   - coalitions: Coalitions to evaluate
//   - totals: Final national seat total per party
//   - assembly: Realized assembly size
//
// Returns:
//   - []types.CoalitionResult: One result per coalition in input order
//
// Example:
//
//	res := coalition.Evaluate(coalition.Defaults(), result.NationalTotals, result.AssemblySize)
func Evaluate(coalitions []types.Coalition, totals map[string]int, assembly int) []types.CoalitionResult {
	majority := Majority(assembly)
	results := make([]types.CoalitionResult, 0, len(coalitions))

	for _, c := range coalitions {
		r := types.CoalitionResult{
			Name:     c.Name,
			Parties:  append([]string(nil), c.Parties...),
			Majority: majority,
		}

		for _, party := range c.Parties {
			seats, ok := totals[party]
			if !ok {
				r.Missing = append(r.Missing, party)
				continue
			}
			r.Seats += seats
		}

		r.Margin = r.Seats - majority
		if r.Possible() {
			r.Label = types.CoalitionPossible
		} else {
			r.Label = types.CoalitionNotPossible
		}

		results = append(results, r)
	}

	return results
}

// Defaults returns the coalitions commonly discussed after a Bundestag
// election.
//
// Party IDs are ASCII upper-case short names: CDU, CSU, SPD, FDP, GRUENE and
// LINKE. Datasets labelling parties as published by the returning officer
// ("GRÜNE", "Grüne", "DIE LINKE") must map them to these IDs when loading, or
// configure coalitions with their own IDs. Evaluate matches IDs exactly, so an
// unmapped party is reported in CoalitionResult.Missing and contributes no seats.
func Defaults() []types.Coalition {
	return []types.Coalition{
		{Name: "groko", Parties: []string{"CDU", "CSU", "SPD"}},
		{Name: "rot_gruen", Parties: []string{"SPD", "GRUENE"}},
		{Name: "ampel", Parties: []string{"SPD", "GRUENE", "FDP"}},
		{Name: "rot_rot_gruen", Parties: []string{"SPD", "GRUENE", "LINKE"}},
		{Name: "schwarz_gelb", Parties: []string{"CDU", "CSU", "FDP"}},
		{Name: "jamaika", Parties: []string{"CDU", "CSU", "GRUENE", "FDP"}},
	}
}
