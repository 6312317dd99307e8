// Package testutil provides shared test utilities for the stress tests.
//
// This package contains election generators and assertion helpers that are
// used across multiple test suites.
//
// Examples of utilities that belong here:
//   - Test data generators (random elections of configurable scale)
//   - Assertion helpers (seat sums, floors, quota conservation)
//
// Note: For small hand-checked fixtures, use the github.com/arloliu/apportion/testing package.
// This package is specifically for large randomized scenarios.
package testutil
