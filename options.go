package apportion

// Option configures a Calculator with optional dependencies.
type Option func(*calculatorOptions)

// calculatorOptions holds optional Calculator configuration.
type calculatorOptions struct {
	metrics MetricsCollector
	logger  Logger
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewCalculator
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	calc, _ := apportion.NewCalculator(&cfg, src, apportion.WithMetrics(metrics.NewPrometheus(reg, "")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *calculatorOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewCalculator
//
// Example:
//
//	base, _ := zap.NewProduction()
//	calc, _ := apportion.NewCalculator(&cfg, src, apportion.WithLogger(logging.NewZap(base.Sugar())))
func WithLogger(logger Logger) Option {
	return func(o *calculatorOptions) {
		o.logger = logger
	}
}
