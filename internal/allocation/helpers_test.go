package allocation

import (
	"sync"

	"github.com/arloliu/apportion/internal/metrics"
)

// recordingMetrics captures search metrics from concurrent workers.
type recordingMetrics struct {
	*metrics.NopMetrics

	mu         sync.Mutex
	iterations map[string]int
	ties       map[string]int
	passes     []int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		NopMetrics: metrics.NewNop(),
		iterations: make(map[string]int),
		ties:       make(map[string]int),
	}
}

func (r *recordingMetrics) RecordSearchIterations(stage string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.iterations[stage]++
}

func (r *recordingMetrics) RecordTieBreak(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ties[stage]++
}

func (r *recordingMetrics) RecordRepairPasses(passes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes = append(r.passes, passes)
}
