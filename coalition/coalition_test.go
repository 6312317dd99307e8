package coalition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestMajority(t *testing.T) {
	require.Equal(t, 250, Majority(500))
	require.Equal(t, 251, Majority(501))
	require.Equal(t, 355, Majority(709))
	require.Equal(t, 0, Majority(0))
}

func TestEvaluate(t *testing.T) {
	totals := map[string]int{"A": 200, "B": 150, "C": 80, "D": 70}
	coalitions := []types.Coalition{
		{Name: "bc", Parties: []string{"B", "C"}},
		{Name: "ab", Parties: []string{"A", "B"}},
		{Name: "exact", Parties: []string{"A", "D"}},
	}

	results := Evaluate(coalitions, totals, 500)

	require.Len(t, results, 3)

	require.Equal(t, "bc", results[0].Name)
	require.Equal(t, 230, results[0].Seats)
	require.Equal(t, 250, results[0].Majority)
	require.Equal(t, -20, results[0].Margin)
	require.Equal(t, types.CoalitionNotPossible, results[0].Label)
	require.False(t, results[0].Possible())

	require.Equal(t, 350, results[1].Seats)
	require.Equal(t, 100, results[1].Margin)
	require.Equal(t, types.CoalitionPossible, results[1].Label)

	require.Equal(t, 270, results[2].Seats)
	require.Equal(t, 20, results[2].Margin)
}

func TestEvaluate_MissingParties(t *testing.T) {
	totals := map[string]int{"A": 200}
	coalitions := []types.Coalition{{Name: "ax", Parties: []string{"A", "X"}}}

	results := Evaluate(coalitions, totals, 400)

	require.Equal(t, 200, results[0].Seats)
	require.Equal(t, 0, results[0].Margin)
	require.Equal(t, types.CoalitionPossible, results[0].Label)
	require.Equal(t, []string{"X"}, results[0].Missing)
}

func TestEvaluate_Empty(t *testing.T) {
	require.Empty(t, Evaluate(nil, map[string]int{"A": 1}, 1))
}

func TestDefaults(t *testing.T) {
	defaults := Defaults()

	require.Len(t, defaults, 6)
	names := make([]string, len(defaults))
	for i, c := range defaults {
		names[i] = c.Name
		require.NotEmpty(t, c.Parties)
	}
	require.Equal(t, []string{"groko", "rot_gruen", "ampel", "rot_rot_gruen", "schwarz_gelb", "jamaika"}, names)
}

func TestDefaults_PartyIDs(t *testing.T) {
	ids := make(map[string]struct{})
	for _, c := range Defaults() {
		for _, p := range c.Parties {
			ids[p] = struct{}{}
		}
	}

	require.Len(t, ids, 6)
	for _, id := range []string{"CDU", "CSU", "SPD", "FDP", "GRUENE", "LINKE"} {
		require.Contains(t, ids, id)
	}
}

func TestDefaults_UnmappedPartyIDs(t *testing.T) {
	totals := map[string]int{"SPD": 153, "Grüne": 67, "DIE LINKE": 69}

	results := Evaluate(Defaults(), totals, 709)

	var r2g types.CoalitionResult
	for _, r := range results {
		if r.Name == "rot_rot_gruen" {
			r2g = r
		}
	}
	require.Equal(t, 153, r2g.Seats)
	require.Equal(t, []string{"GRUENE", "LINKE"}, r2g.Missing)
	require.Equal(t, types.CoalitionNotPossible, r2g.Label)

	totals = map[string]int{"SPD": 153, "GRUENE": 67, "LINKE": 69}
	results = Evaluate(Defaults(), totals, 709)
	require.Equal(t, "rot_rot_gruen", results[3].Name)
	require.Equal(t, 289, results[3].Seats)
	require.Empty(t, results[3].Missing)
}
