package ml

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/drakos74/kmeans/internal/model"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// KMeans clusters labeled points with lloyd's algorithm
// and labels every cluster with the majority label of its members.
type KMeans struct {
	k        int
	observer Observer
}

// NewKMeans creates a new k-means trainer for k clusters.
func NewKMeans(k int) *KMeans {
	return &KMeans{
		k:        k,
		observer: VoidObserver{},
	}
}

// WithObserver registers an observer for the training progress.
func (km *KMeans) WithObserver(observer Observer) *KMeans {
	km.observer = observer
	return km
}

// Fit seeds the centroids from the dataset and trains them until convergence.
func (km *KMeans) Fit(ds model.Dataset, rng *rand.Rand) (Model, error) {
	centroids, err := InitCentroids(km.k, ds, rng)
	if err != nil {
		return Model{}, fmt.Errorf("could not init centroids: %w", err)
	}
	labels, err := km.Train(centroids, ds)
	if err != nil {
		return Model{}, fmt.Errorf("could not train: %w", err)
	}
	return Model{
		K:         km.k,
		Dim:       ds.Dim(),
		Centroids: centroids,
		Labels:    labels,
	}, nil
}

// cluster accumulates the points assigned to a centroid within one iteration.
type cluster struct {
	sum    []float64
	count  int
	labels []float64
}

func newClusters(k, dim int) []*cluster {
	clusters := make([]*cluster, k)
	for i := range clusters {
		clusters[i] = &cluster{sum: make([]float64, dim)}
	}
	return clusters
}

func (c *cluster) push(p model.Point) {
	floats.Add(c.sum, p.Features())
	c.count++
	c.labels = append(c.labels, p.Label())
}

func (c *cluster) mean() model.Centroid {
	mean := make(model.Centroid, len(c.sum))
	for i, s := range c.sum {
		mean[i] = s / float64(c.count)
	}
	return mean
}

// Train moves the given centroids in place until they stop changing
// and returns the majority label of every cluster that holds points.
// A cluster that receives no points keeps its previous centroid.
func (km *KMeans) Train(centroids model.Centroids, ds model.Dataset) (model.Labels, error) {
	if len(centroids) == 0 {
		return nil, fmt.Errorf("no centroids to train: %w", ErrInvalidInput)
	}
	if ds.Len() == 0 {
		return nil, fmt.Errorf("no points to train on: %w", ErrInvalidInput)
	}
	// a NaN centroid never equals its snapshot
	for i, p := range ds.Points {
		for _, v := range p.Features() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("point %d has non-finite feature %v: %w", i, v, ErrInvalidInput)
			}
		}
	}

	dim := ds.Dim()
	var clusters []*cluster
	iterations := 0
	for {
		previous := centroids.Clone()
		clusters = newClusters(len(centroids), dim)

		// all points are compared against the same snapshot
		for _, p := range ds.Points {
			i, err := Closest(p.Features(), previous)
			if err != nil {
				return nil, fmt.Errorf("could not assign point: %w", err)
			}
			clusters[i].push(p)
		}

		empty := 0
		for i, c := range clusters {
			if c.count == 0 {
				copy(centroids[i], previous[i])
				empty++
				continue
			}
			copy(centroids[i], c.mean())
		}
		iterations++
		km.observer.Iteration(iterations, empty)
		log.Debug().
			Int("iteration", iterations).
			Int("empty", empty).
			Msg("k-means iteration")

		// NOTE : exact equality, no tolerance.
		// Centroids oscillating between two states would never terminate.
		if centroids.Equal(previous) {
			break
		}
	}
	km.observer.Converged(iterations)

	labels := make(model.Labels)
	for i, c := range clusters {
		if len(c.labels) == 0 {
			log.Warn().Int("cluster", i).Msg("cluster without points")
			continue
		}
		l, err := MajorityVote(c.labels)
		if err != nil {
			return nil, fmt.Errorf("could not label cluster %d: %w", i, err)
		}
		labels[i] = l
	}

	log.Info().
		Int("k", len(centroids)).
		Int("iterations", iterations).
		Int("labeled", len(labels)).
		Msg("k-means converged")

	return labels, nil
}
