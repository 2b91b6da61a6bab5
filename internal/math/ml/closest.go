package ml

import (
	"fmt"
	"math"

	"github.com/drakos74/kmeans/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Closest returns the index of the centroid with the smallest euclidean distance to the point.
// On equal distances the lowest index wins.
func Closest(point []float64, centroids model.Centroids) (int, error) {
	if len(centroids) == 0 {
		return 0, fmt.Errorf("no centroids to compare to: %w", ErrInvalidInput)
	}
	closest := 0
	shortest := math.MaxFloat64
	for i, c := range centroids {
		if len(c) != len(point) {
			return 0, fmt.Errorf("centroid %d has dimension %d but point has %d: %w", i, len(c), len(point), ErrInvalidInput)
		}
		d := floats.Distance(point, c, 2)
		if d < shortest {
			closest = i
			shortest = d
		}
	}
	return closest, nil
}
