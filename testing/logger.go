package testing

import (
	"testing"

	"github.com/arloliu/apportion/internal/logging"
	"github.com/arloliu/apportion/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing log output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logging.NewTest(t)
}
