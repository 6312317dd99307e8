package divisor

import (
	"math/rand"
	"strconv"
	"testing"
)

// benchmarkPopulations mimics sixteen states of very different size.
func benchmarkPopulations() map[string]int64 {
	rng := rand.New(rand.NewSource(16))
	votes := make(map[string]int64, 16)
	for i := range 16 {
		votes["S"+strconv.Itoa(i)] = 500_000 + rng.Int63n(17_000_000)
	}

	return votes
}

func BenchmarkApportion(b *testing.B) {
	votes := benchmarkPopulations()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Apportion(votes, 598); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkApportionWithFloors(b *testing.B) {
	votes := benchmarkPopulations()
	floors := map[string]int{"S0": 40, "S1": 40, "S2": 40}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := ApportionWithFloors(votes, floors, 650); err != nil {
			b.Fatal(err)
		}
	}
}
