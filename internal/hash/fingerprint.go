// Package hash fingerprints election inputs.
//
// The fingerprint is an xxh3 hash over a canonical binary encoding of the
// election: states, districts and parties are visited in lexical ID order, so
// two elections that differ only in slice or map ordering hash identically.
package hash

import (
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"maps"
	"slices"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/apportion/types"
)

// Fingerprint returns the 128-bit xxh3 fingerprint of e as a hex string.
//
// Parameters:
//   - e: Election to fingerprint (nil hashes as an empty election)
//
// Returns:
//   - string: 32 hex characters
//
// Example:
//
//	result.InputsHash = hash.Fingerprint(election)
func Fingerprint(e *types.Election) string {
	h := xxh3.New()
	w := &encoder{h: h}

	if e == nil {
		e = &types.Election{}
	}

	w.string(e.Name)

	states := slices.Clone(e.States)
	slices.SortFunc(states, func(a, b types.State) int { return cmp.Compare(a.ID, b.ID) })
	w.uint(uint64(len(states)))
	for _, s := range states {
		w.string(s.ID)
		w.uint(uint64(s.Population))
		districts := slices.Sorted(slices.Values(s.Districts))
		w.uint(uint64(len(districts)))
		for _, id := range districts {
			w.string(id)
		}
	}

	districts := slices.Clone(e.Districts)
	slices.SortFunc(districts, func(a, b types.District) int { return cmp.Compare(a.ID, b.ID) })
	w.uint(uint64(len(districts)))
	for _, d := range districts {
		w.string(d.ID)
		w.string(d.State)
		w.tally(d.FirstVotes)
		w.tally(d.SecondVotes)
	}

	if e.National != nil {
		w.uint(1)
		w.tally(e.National.FirstVotes)
		w.tally(e.National.SecondVotes)
	} else {
		w.uint(0)
	}

	sum := h.Sum128().Bytes()

	return hex.EncodeToString(sum[:])
}

// encoder writes length-prefixed values into the running hash.
type encoder struct {
	h   *xxh3.Hasher
	buf [binary.MaxVarintLen64]byte
}

func (w *encoder) uint(v uint64) {
	n := binary.PutUvarint(w.buf[:], v)
	_, _ = w.h.Write(w.buf[:n])
}

func (w *encoder) string(s string) {
	w.uint(uint64(len(s)))
	_, _ = w.h.WriteString(s)
}

func (w *encoder) tally(t map[string]int64) {
	w.uint(uint64(len(t)))
	for _, party := range slices.Sorted(maps.Keys(t)) {
		w.string(party)
		w.uint(uint64(t[party]))
	}
}
