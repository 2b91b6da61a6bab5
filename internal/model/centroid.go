package model

import "gonum.org/v1/gonum/floats"

// Centroid is the representative feature vector of a cluster.
type Centroid []float64

// Centroids is the fixed size set of cluster centroids.
// The position of a centroid is its cluster identity.
type Centroids []Centroid

// NewCentroids creates k zero centroids of the given dimension.
func NewCentroids(k, dim int) Centroids {
	cc := make(Centroids, k)
	for i := range cc {
		cc[i] = make(Centroid, dim)
	}
	return cc
}

// Clone creates a deep copy of the centroids.
func (cc Centroids) Clone() Centroids {
	clone := make(Centroids, len(cc))
	for i, c := range cc {
		clone[i] = make(Centroid, len(c))
		copy(clone[i], c)
	}
	return clone
}

// Equal checks for exact component-wise equality.
func (cc Centroids) Equal(other Centroids) bool {
	if len(cc) != len(other) {
		return false
	}
	for i := range cc {
		if !floats.Equal(cc[i], other[i]) {
			return false
		}
	}
	return true
}

// Labels maps a cluster index to the label it has been assigned.
type Labels map[int]float64
