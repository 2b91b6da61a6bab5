package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

const (
	correct   = "correct"
	incorrect = "incorrect"
)

// Metrics records the progress of a run on its own registry.
// It can be used as the observer of the training loop.
type Metrics struct {
	mutex      *sync.RWMutex
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates a new set of run metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics()
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		mutex:      new(sync.RWMutex),
		registry:   registry,
		prometheus: p,
	}
}

// Iteration counts a training pass and its empty clusters.
func (m *Metrics) Iteration(i int, empty int) {
	m.prometheus.Iterations.Inc()
	m.prometheus.EmptyClusters.Add(float64(empty))
}

// Converged records the passes needed for convergence.
func (m *Metrics) Converged(iterations int) {
	m.prometheus.Converged.Set(float64(iterations))
}

// Classified records the classification outcome of a test dataset.
func (m *Metrics) Classified(right, total int) {
	m.prometheus.Classified.WithLabelValues(correct).Add(float64(right))
	m.prometheus.Classified.WithLabelValues(incorrect).Add(float64(total - right))
	if total > 0 {
		m.prometheus.Accuracy.Set(float64(right) / float64(total))
	}
}

// Push sends the collected metrics to a prometheus pushgateway.
// Batch runs end before any scrape could happen, hence the push.
func (m *Metrics) Push(url, job, run string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := push.New(url, job).
		Gatherer(m.registry).
		Grouping("run", run).
		Push()
	if err != nil {
		return fmt.Errorf("could not push metrics to '%s': %w", url, err)
	}
	log.Debug().Str("url", url).Str("job", job).Str("run", run).Msg("pushed metrics")
	return nil
}
