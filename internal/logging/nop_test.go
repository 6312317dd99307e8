package logging

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/apportion/types"
)

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	var _ types.Logger = logger

	require.NotPanics(t, func() {
		logger.Debug("bisection step", "lo", 1.5, "hi", 3.0)
		logger.Info("stage complete", "stage", "list_seats")
		logger.Warn("district tie", "district", "001")
		logger.Error("run failed", "error", "boom")
		logger.Fatal("unreachable", "code", 1) // must not exit
	})
}

func TestNopLogger_OddArguments(t *testing.T) {
	logger := NewNop()

	require.NotPanics(t, func() {
		logger.Debug("")
		logger.Info("", nil)
		logger.Warn("dangling key", "party")
	})
}

func TestOrNop(t *testing.T) {
	require.IsType(t, &NopLogger{}, OrNop(nil))

	custom := NewTest(t)
	require.Same(t, custom, OrNop(custom))
}

func BenchmarkNopLogger(b *testing.B) {
	logger := NewNop()

	for b.Loop() {
		logger.Debug("divisor evaluated", "divisor", 1234.5, "sum", 598)
	}
}
