// Package logging provides types.Logger implementations for the apportion library.
//
// Available loggers:
//   - NopLogger: discards everything (default when no logger is configured)
//   - SlogLogger: wraps a log/slog Logger
//   - ZapLogger: wraps a zap SugaredLogger (used by the CLI)
//   - TestLogger: routes output through testing.T
package logging

import "github.com/arloliu/apportion/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is the default for Calculator and the divisor package so that library
// code never has to nil-check its logger.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger.
//
// Returns:
//   - *NopLogger: Logger that performs no operations
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message and does not exit.
func (n *NopLogger) Fatal(_ string, _ ...any) {}

// OrNop returns logger, or a NopLogger when logger is nil.
func OrNop(logger types.Logger) types.Logger {
	if logger == nil {
		return NewNop()
	}

	return logger
}
