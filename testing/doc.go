// Package testing provides test utilities for the apportion library.
//
// This package offers helpers for building elections in tests and a logger
// that writes through testing.T. It follows Go's convention of providing
// testing utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - NewElection: Fluent builder for small hand-checked elections
//   - SmallElection: Two-state fixture with one overhang seat
//   - NewTestLogger: Logger that writes to t.Logf
//
// Example usage:
//
//	import (
//	    "testing"
//	    apportiontest "github.com/arloliu/apportion/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    src := source.NewStatic(apportiontest.SmallElection())
//	    // Use src for your tests
//	}
package testing
