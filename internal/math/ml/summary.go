package ml

import (
	"fmt"

	"github.com/drakos74/kmeans/internal/buffer"
	"github.com/drakos74/kmeans/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Cluster describes the members of a cluster.
type Cluster struct {
	Index   int
	Size    int
	Label   float64
	Labeled bool
	// distances of the members to the centroid
	Avg   float64
	StDev float64
	Min   float64
	Max   float64
}

// Summarize describes every cluster of the model against the given dataset.
func Summarize(m Model, ds model.Dataset) ([]Cluster, error) {
	stats := make([]*buffer.Stats, len(m.Centroids))
	for i := range stats {
		stats[i] = buffer.NewStats()
	}
	for _, p := range ds.Points {
		c, err := Closest(p.Features(), m.Centroids)
		if err != nil {
			return nil, fmt.Errorf("could not summarize: %w", err)
		}
		stats[c].Push(floats.Distance(p.Features(), m.Centroids[c], 2))
	}

	clusters := make([]Cluster, len(stats))
	for i, s := range stats {
		l, ok := m.Labels[i]
		clusters[i] = Cluster{
			Index:   i,
			Size:    s.Count(),
			Label:   l,
			Labeled: ok,
			Avg:     s.Avg(),
			StDev:   s.StDev(),
			Min:     s.Min(),
			Max:     s.Max(),
		}
	}
	return clusters, nil
}
