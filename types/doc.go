// Package types provides core type definitions and interfaces for the apportion library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root apportion package and its internal implementations.
//
// Key types:
//   - Election: District tallies, states and the optional national aggregate
//   - VoteSource: Supplies an Election for one run
//   - Result: Complete seat allocation produced by one run
//   - SeatMatrix: Party × state seat counts
//   - Coalition: Named party set evaluated against the majority
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
