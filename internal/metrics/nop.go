package metrics

import "github.com/arloliu/apportion/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default when no collector is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	calc, _ := apportion.NewCalculator(&cfg, src, apportion.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// OrNop returns m, or a NopMetrics when m is nil.
func OrNop(m types.MetricsCollector) types.MetricsCollector {
	if m == nil {
		return NewNop()
	}

	return m
}

// RunMetrics implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* duration */ float64, _ /* success */ bool) {
	// No-op
}

// SearchMetrics implementation

// RecordSearchIterations discards the search iteration metric.
func (n *NopMetrics) RecordSearchIterations(_ /* stage */ string, _ /* iterations */ int) {
	// No-op
}

// RecordTieBreak discards the tie-break metric.
func (n *NopMetrics) RecordTieBreak(_ /* stage */ string) {
	// No-op
}

// RecordRepairPasses discards the repair pass metric.
func (n *NopMetrics) RecordRepairPasses(_ /* passes */ int) {
	// No-op
}

// SeatMetrics implementation

// RecordAssemblySize discards the assembly size metric.
func (n *NopMetrics) RecordAssemblySize(_ /* seats */ int) {
	// No-op
}

// RecordOverhangSeats discards the overhang metric.
func (n *NopMetrics) RecordOverhangSeats(_ /* seats */ int) {
	// No-op
}

// RecordLevelingSeats discards the leveling metric.
func (n *NopMetrics) RecordLevelingSeats(_ /* seats */ int) {
	// No-op
}
