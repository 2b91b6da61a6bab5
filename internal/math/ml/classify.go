package ml

import (
	"github.com/drakos74/kmeans/internal/model"
)

// Classify assigns every point to its closest centroid and counts
// how many carry the label of that cluster.
// A cluster without a label never matches.
func Classify(centroids model.Centroids, labels model.Labels, ds model.Dataset) (int, error) {
	return Model{
		K:         len(centroids),
		Centroids: centroids,
		Labels:    labels,
	}.Classify(ds)
}
