package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "kmeans"

// Prometheus holds the collectors of a k-means run.
type Prometheus struct {
	Iterations    prometheus.Counter
	EmptyClusters prometheus.Counter
	Converged     prometheus.Gauge
	Classified    *prometheus.CounterVec
	Accuracy      prometheus.Gauge
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "passes of the training loop over the dataset",
		}),
		EmptyClusters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_clusters_total",
			Help:      "clusters that received no points, summed over all passes",
		}),
		Converged: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "converged_iterations",
			Help:      "number of passes until the centroids stopped moving",
		}),
		Classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classified_total",
			Help:      "classified test points",
		}, []string{"result"}),
		Accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accuracy",
			Help:      "fraction of correctly classified test points",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.Iterations,
		p.EmptyClusters,
		p.Converged,
		p.Classified,
		p.Accuracy,
	}
}
