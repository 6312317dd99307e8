package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/apportion/types"
)

// DefaultNamespace is the Prometheus namespace used when none is given.
const DefaultNamespace = "apportion"

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration      *prometheus.HistogramVec
	runsTotal        *prometheus.CounterVec
	searchIterations *prometheus.HistogramVec
	tieBreaks        *prometheus.CounterVec
	repairPasses     prometheus.Histogram
	assemblySize     prometheus.Gauge
	overhangSeats    prometheus.Gauge
	levelingSeats    prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "apportion" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	calc, _ := apportion.NewCalculator(&cfg, src, apportion.WithMetrics(metrics.NewPrometheus(reg, "")))
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time of calculator runs in seconds by result.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}, []string{"result"})

		p.runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "run",
			Name:      "total",
			Help:      "Total calculator runs by result (success,failure).",
		}, []string{"result"})

		p.searchIterations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "divisor",
			Name:      "search_iterations",
			Help:      "Rounded-sum evaluations per divisor search by stage.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
		}, []string{"stage"})

		p.tieBreaks = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "divisor",
			Name:      "tie_breaks_total",
			Help:      "Divisor searches resolved by entity order at a tied breakpoint, by stage.",
		}, []string{"stage"})

		p.repairPasses = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "leveling",
			Name:      "repair_passes",
			Help:      "Leveling repair passes needed to lift every party to its floor.",
			Buckets:   []float64{0, 1, 2, 4, 8},
		})

		p.assemblySize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "seats",
			Name:      "assembly_size",
			Help:      "Realized number of seats of the last run.",
		})

		p.overhangSeats = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "seats",
			Name:      "overhang",
			Help:      "Direct mandates exceeding list seats in the last run.",
		})

		p.levelingSeats = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "seats",
			Name:      "leveling",
			Help:      "Seats added above the floor sums in the last run.",
		})

		p.reg.MustRegister(p.runDuration)
		p.reg.MustRegister(p.runsTotal)
		p.reg.MustRegister(p.searchIterations)
		p.reg.MustRegister(p.tieBreaks)
		p.reg.MustRegister(p.repairPasses)
		p.reg.MustRegister(p.assemblySize)
		p.reg.MustRegister(p.overhangSeats)
		p.reg.MustRegister(p.levelingSeats)
	})
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// RunMetrics implementation

// RecordRunDuration observes the run duration and counts the run by result.
func (p *PrometheusCollector) RecordRunDuration(duration float64, success bool) {
	p.ensureRegistered()
	label := resultLabel(success)
	p.runDuration.WithLabelValues(label).Observe(duration)
	p.runsTotal.WithLabelValues(label).Inc()
}

// SearchMetrics implementation

// RecordSearchIterations observes the evaluations of one divisor search.
func (p *PrometheusCollector) RecordSearchIterations(stage string, iterations int) {
	p.ensureRegistered()
	p.searchIterations.WithLabelValues(stage).Observe(float64(iterations))
}

// RecordTieBreak increments the tie-break counter for stage.
func (p *PrometheusCollector) RecordTieBreak(stage string) {
	p.ensureRegistered()
	p.tieBreaks.WithLabelValues(stage).Inc()
}

// RecordRepairPasses observes the leveling repair passes.
func (p *PrometheusCollector) RecordRepairPasses(passes int) {
	p.ensureRegistered()
	p.repairPasses.Observe(float64(passes))
}

// SeatMetrics implementation

// RecordAssemblySize sets the assembly size gauge.
func (p *PrometheusCollector) RecordAssemblySize(seats int) {
	p.ensureRegistered()
	p.assemblySize.Set(float64(seats))
}

// RecordOverhangSeats sets the overhang gauge.
func (p *PrometheusCollector) RecordOverhangSeats(seats int) {
	p.ensureRegistered()
	p.overhangSeats.Set(float64(seats))
}

// RecordLevelingSeats sets the leveling gauge.
func (p *PrometheusCollector) RecordLevelingSeats(seats int) {
	p.ensureRegistered()
	p.levelingSeats.Set(float64(seats))
}
