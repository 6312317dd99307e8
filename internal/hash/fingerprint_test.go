package hash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func election() *types.Election {
	return &types.Election{
		Name: "sample",
		Districts: []types.District{
			{ID: "1", State: "N", FirstVotes: map[string]int64{"A": 50, "B": 30}, SecondVotes: map[string]int64{"A": 40, "B": 40}},
			{ID: "2", State: "S", FirstVotes: map[string]int64{"B": 60}, SecondVotes: map[string]int64{"B": 50, "C": 20}},
		},
		States: []types.State{
			{ID: "N", Population: 2000, Districts: []string{"1"}},
			{ID: "S", Population: 1000, Districts: []string{"2"}},
		},
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a := Fingerprint(election())
	b := Fingerprint(election())

	require.Len(t, a, 32)
	require.Equal(t, a, b)
}

func TestFingerprint_IgnoresOrdering(t *testing.T) {
	reordered := election()
	reordered.Districts[0], reordered.Districts[1] = reordered.Districts[1], reordered.Districts[0]
	reordered.States[0], reordered.States[1] = reordered.States[1], reordered.States[0]

	require.Equal(t, Fingerprint(election()), Fingerprint(reordered))
}

func TestFingerprint_DetectsChanges(t *testing.T) {
	base := Fingerprint(election())

	tests := []struct {
		name   string
		mutate func(e *types.Election)
	}{
		{name: "vote count", mutate: func(e *types.Election) { e.Districts[0].SecondVotes["A"]++ }},
		{name: "population", mutate: func(e *types.Election) { e.States[1].Population++ }},
		{name: "district owner", mutate: func(e *types.Election) { e.Districts[1].State = "N" }},
		{name: "name", mutate: func(e *types.Election) { e.Name = "other" }},
		{name: "first votes moved to second", mutate: func(e *types.Election) {
			e.Districts[1].FirstVotes, e.Districts[1].SecondVotes = e.Districts[1].SecondVotes, e.Districts[1].FirstVotes
		}},
		{name: "national aggregate", mutate: func(e *types.Election) {
			e.National = &types.Tally{SecondVotes: map[string]int64{"A": 1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := election()
			tt.mutate(e)

			require.NotEqual(t, base, Fingerprint(e))
		})
	}
}

func TestFingerprint_Nil(t *testing.T) {
	require.Equal(t, Fingerprint(&types.Election{}), Fingerprint(nil))
}

func BenchmarkFingerprint(b *testing.B) {
	e := election()
	for b.Loop() {
		_ = Fingerprint(e)
	}
}
