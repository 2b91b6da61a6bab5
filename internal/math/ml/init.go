package ml

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/kmeans/internal/model"
)

// InitCentroids picks k points of the dataset uniformly at random as the initial centroids.
// The same point may be picked for more than one slot.
func InitCentroids(k int, ds model.Dataset, rng *rand.Rand) (model.Centroids, error) {
	if k < 1 {
		return nil, fmt.Errorf("need at least one cluster but got %d: %w", k, ErrInvalidInput)
	}
	if ds.Len() == 0 {
		return nil, fmt.Errorf("cannot pick centroids from an empty dataset: %w", ErrInvalidInput)
	}
	centroids := model.NewCentroids(k, ds.Dim())
	for i := range centroids {
		p := ds.Points[rng.Intn(ds.Len())]
		copy(centroids[i], p.Features())
	}
	return centroids, nil
}
