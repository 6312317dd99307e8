package source

import (
	"context"
	"sync"

	"github.com/arloliu/apportion/types"
)

// Static implements a vote source backed by an in-memory election.
type Static struct {
	mu       sync.RWMutex
	election *types.Election
}

var _ types.VoteSource = (*Static)(nil)

// NewStatic creates a new static vote source.
//
// The election is deep-copied, so later changes to e do not affect the source.
//
// Parameters:
//   - e: Election to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(&types.Election{Name: "btw2017", Districts: districts, States: states})
//	calc, err := apportion.NewCalculator(&cfg, src)
//	if err != nil { /* handle */ }
func NewStatic(e *types.Election) *Static {
	return &Static{
		election: e.Clone(),
	}
}

// LoadElection returns a deep copy of the stored election.
//
// Returns:
//   - *types.Election: Copy of the election
//   - error: ErrDegenerateInput when the source holds no election
func (s *Static) LoadElection(ctx context.Context) (*types.Election, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.election == nil {
		return nil, errNoElection
	}

	return s.election.Clone(), nil
}

// Update replaces the stored election.
//
// This allows comparing scenarios (e.g. corrected tallies) with one source.
//
// Parameters:
//   - e: New election
func (s *Static) Update(e *types.Election) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.election = e.Clone()
}
