package types

import "context"

// VoteSource supplies the election data of one run.
//
// Implementations can read from various backends:
//   - Static: fixed in-memory election for testing and embedding
//   - File: normalized YAML or JSON dataset produced by an external cleaning step
//   - Custom: any loader that already resolved raw files into an Election
//
// The Calculator calls LoadElection exactly once per Run. The returned election
// is treated as immutable for the rest of the run.
type VoteSource interface {
	// LoadElection returns the election to apportion.
	//
	// Implementations should:
	//   - Return consistent results for the same backend state
	//   - Handle context cancellation gracefully
	//   - Leave partition and degeneracy checks to the Calculator
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - *Election: Loaded election
	//   - error: Load error (nil on success)
	LoadElection(ctx context.Context) (*Election, error)
}
