package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Training(t *testing.T) {
	m := New()
	m.Iteration(1, 2)
	m.Iteration(2, 1)
	m.Iteration(3, 0)
	m.Converged(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.prometheus.Iterations))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.prometheus.EmptyClusters))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.prometheus.Converged))
}

func TestMetrics_Classified(t *testing.T) {

	type test struct {
		right, total int
		accuracy     float64
	}

	tests := map[string]test{
		"all": {
			right:    4,
			total:    4,
			accuracy: 1,
		},
		"half": {
			right:    2,
			total:    4,
			accuracy: 0.5,
		},
		"none": {
			right: 0,
			total: 3,
		},
		"empty": {},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := New()
			m.Classified(tt.right, tt.total)
			assert.Equal(t, float64(tt.right), testutil.ToFloat64(m.prometheus.Classified.WithLabelValues(correct)))
			assert.Equal(t, float64(tt.total-tt.right), testutil.ToFloat64(m.prometheus.Classified.WithLabelValues(incorrect)))
			assert.Equal(t, tt.accuracy, testutil.ToFloat64(m.prometheus.Accuracy))
		})
	}
}

func TestMetrics_Push(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := New()
	m.Iteration(1, 0)
	err := m.Push(server.URL, "kmeans", "run-id")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/kmeans/run/run-id", path)
}

func TestMetrics_PushFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := New().Push(server.URL, "kmeans", "run-id")
	assert.Error(t, err)
}
