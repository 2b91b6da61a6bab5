package ml

import (
	"fmt"

	"github.com/drakos74/kmeans/internal/model"
	"github.com/drakos74/kmeans/internal/storage"
	"github.com/rs/zerolog/log"
)

// Model is a trained set of centroids together with the labels of their clusters.
type Model struct {
	K         int             `json:"k"`
	Dim       int             `json:"dim"`
	Seed      int64           `json:"seed"`
	Centroids model.Centroids `json:"centroids"`
	Labels    model.Labels    `json:"labels"`
}

// Predict returns the label of the cluster closest to the given features.
// The boolean is false if that cluster has no label.
func (m Model) Predict(features []float64) (int, float64, bool, error) {
	c, err := Closest(features, m.Centroids)
	if err != nil {
		return 0, 0, false, fmt.Errorf("could not predict: %w", err)
	}
	l, ok := m.Labels[c]
	return c, l, ok, nil
}

// Classify counts the correctly classified points of the dataset.
func (m Model) Classify(ds model.Dataset) (int, error) {
	correct := 0
	for i, p := range ds.Points {
		_, l, ok, err := m.Predict(p.Features())
		if err != nil {
			return 0, fmt.Errorf("could not classify point %d: %w", i, err)
		}
		if ok && l == p.Label() {
			correct++
		}
	}
	return correct, nil
}

// Store persists the model under the given key.
func (m Model) Store(store storage.Persistence, k storage.Key) error {
	if err := store.Store(k, m); err != nil {
		log.Error().
			Err(err).
			Str("key", fmt.Sprintf("%+v", k)).
			Msg("could not store k-means model")
		return fmt.Errorf("could not store model: %w", err)
	}
	return nil
}

// LoadModel loads a previously stored model.
func LoadModel(store storage.Persistence, k storage.Key) (Model, error) {
	var m Model
	if err := store.Load(k, &m); err != nil {
		return Model{}, fmt.Errorf("could not load model: %w", err)
	}
	if len(m.Centroids) != m.K {
		return Model{}, fmt.Errorf("model has %d centroids but k is %d: %w", len(m.Centroids), m.K, storage.CouldNotLoadErr)
	}
	return m, nil
}
