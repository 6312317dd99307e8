package testutil

import (
	"fmt"
	"math/rand"

	"github.com/arloliu/apportion/types"
)

// ElectionShape describes the scale of a generated election.
type ElectionShape struct {
	States    int
	Districts int
	Parties   int
}

// BundestagShape matches the size of a German federal election.
var BundestagShape = ElectionShape{States: 16, Districts: 299, Parties: 8}

// RandomElection generates a valid election of the given shape.
//
// Party strength follows a skewed distribution so that a few parties dominate,
// some hover near the vote-share threshold and regional strongholds produce
// overhang. Districts are dealt to states round-robin, so every state gets at
// least one district when shape.Districts >= shape.States.
//
// Parameters:
//   - rng: random source (seed it for reproducible tests)
//   - shape: number of states, districts and parties
//
// Returns:
//   - *types.Election: election passing partition validation
func RandomElection(rng *rand.Rand, shape ElectionShape) *types.Election {
	e := &types.Election{
		Name:   fmt.Sprintf("random-%d-%d-%d", shape.States, shape.Districts, shape.Parties),
		States: make([]types.State, shape.States),
	}

	parties := make([]string, shape.Parties)
	strength := make([]float64, shape.Parties)
	for i := range parties {
		parties[i] = fmt.Sprintf("P%02d", i+1)
		strength[i] = 1 / float64(i+1)
	}

	// Regional party strongholds.
	stronghold := make([]int, shape.States)
	for s := range e.States {
		e.States[s] = types.State{
			ID:         fmt.Sprintf("S%02d", s+1),
			Population: 500_000 + rng.Int63n(17_500_000),
		}
		stronghold[s] = rng.Intn(shape.Parties)
	}

	for d := range shape.Districts {
		s := d % shape.States
		id := fmt.Sprintf("D%03d", d+1)

		first := make(map[string]int64, len(parties))
		second := make(map[string]int64, len(parties))
		for i, p := range parties {
			weight := strength[i]
			if i == stronghold[s] {
				weight *= 3
			}
			second[p] = 1 + int64(weight*float64(40_000+rng.Intn(20_000)))
			first[p] = 1 + int64(weight*weight*float64(40_000+rng.Intn(30_000)))
		}

		e.Districts = append(e.Districts, types.District{ID: id, State: e.States[s].ID, FirstVotes: first, SecondVotes: second})
		e.States[s].Districts = append(e.States[s].Districts, id)
	}

	return e
}
