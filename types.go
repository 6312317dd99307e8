package apportion

import "github.com/arloliu/apportion/types"

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package, which
// avoids import cycles while still offering apportion.Result, apportion.Logger
// and friends to callers.
type (
	Election        = types.Election
	District        = types.District
	State           = types.State
	Tally           = types.Tally
	Coalition       = types.Coalition
	CoalitionResult = types.CoalitionResult
	Result          = types.Result
	PartyResult     = types.PartyResult
	BreakdownRow    = types.BreakdownRow
	SeatMatrix      = types.SeatMatrix
)

// Re-export interfaces from the types package for convenience.
type (
	VoteSource       = types.VoteSource
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export coalition labels.
const (
	CoalitionPossible    = types.CoalitionPossible
	CoalitionNotPossible = types.CoalitionNotPossible
)
