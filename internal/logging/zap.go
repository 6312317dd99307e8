package logging

import (
	"go.uber.org/zap"

	"github.com/arloliu/apportion/types"
)

// ZapLogger implements types.Logger on top of a zap SugaredLogger.
//
// Key-value pairs are forwarded to the "w" family of methods (Debugw, Infow, ...),
// which treat them as loosely typed structured fields.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

var _ types.Logger = (*ZapLogger)(nil)

// NewZap wraps a zap SugaredLogger.
//
// Parameters:
//   - logger: The sugared logger to forward to (a no-op logger when nil)
//
// Returns:
//   - *ZapLogger: Logger forwarding every call to logger
//
// Example:
//
//	base, _ := zap.NewProduction()
//	defer base.Sync()
//	calc, _ := apportion.NewCalculator(&cfg, src, apportion.WithLogger(logging.NewZap(base.Sugar())))
func NewZap(logger *zap.SugaredLogger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &ZapLogger{logger: logger}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warnw(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.logger.Fatalw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
