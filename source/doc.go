// Package source provides built-in vote source implementations.
//
// Vote sources supply the already-cleaned election consumed by a Calculator.
// The package includes:
//
//   - Static: In-memory election, replaceable at runtime
//   - File: Normalized YAML or JSON dataset on disk
//
// Custom sources can be implemented by satisfying the types.VoteSource interface.
package source
