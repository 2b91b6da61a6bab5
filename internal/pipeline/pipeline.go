// Package pipeline trains a k-means classifier on a training table
// and counts the correctly classified rows of a test table.
package pipeline

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/kmeans/infra/config"
	kmath "github.com/drakos74/kmeans/internal/math"
	"github.com/drakos74/kmeans/internal/math/ml"
	"github.com/drakos74/kmeans/internal/metrics"
	"github.com/drakos74/kmeans/internal/storage"
	"github.com/drakos74/kmeans/internal/storage/file/json"
	"github.com/drakos74/kmeans/internal/storage/file/table"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const modelLabel = "model"

// Args are the invocation arguments of a run.
type Args struct {
	Seed     int64
	K        int
	Features int
	Train    string
	Test     string
}

// Pipeline runs the train and test phases.
type Pipeline struct {
	run     string
	cfg     config.Config
	shard   storage.Shard
	metrics *metrics.Metrics
}

// New creates a new pipeline for the given config.
// Without a storage directory the model is only kept in memory.
func New(cfg config.Config) *Pipeline {
	shard := json.LocalShard()
	if cfg.Storage.Dir != "" {
		shard = json.BlobShard(cfg.Storage.Dir, storage.ModelDir)
	}
	return &Pipeline{
		run:     uuid.New().String(),
		cfg:     cfg,
		shard:   shard,
		metrics: metrics.New(),
	}
}

// WithShard overrides the model storage.
func (p *Pipeline) WithShard(shard storage.Shard) *Pipeline {
	p.shard = shard
	return p
}

// Run returns the id of this run.
func (p *Pipeline) Run() string {
	return p.run
}

// Key is the storage key of the model trained with the given args.
func (p *Pipeline) Key(args Args) storage.Key {
	return storage.Key{
		Hash:  args.Seed,
		Run:   p.run,
		Label: modelLabel,
	}
}

// Execute trains on the training table and returns the number of
// correctly classified rows of the test table.
func (p *Pipeline) Execute(args Args) (int, error) {
	m, err := p.train(args)
	if err != nil {
		return 0, err
	}

	test, err := table.Load(args.Test)
	if err != nil {
		return 0, fmt.Errorf("could not load test data: %w", err)
	}

	correct, err := m.Classify(test)
	if err != nil {
		return 0, fmt.Errorf("could not classify test data: %w", err)
	}
	p.metrics.Classified(correct, test.Len())

	l := log.Info().
		Str("run", p.run).
		Int("correct", correct).
		Int("total", test.Len())
	if test.Len() > 0 {
		l = l.Float64("accuracy", float64(correct)/float64(test.Len()))
	}
	l.Msg("classified test data")

	p.push()

	return correct, nil
}

// train fits the model on the training table.
// The training data is released once the model is trained.
func (p *Pipeline) train(args Args) (ml.Model, error) {
	train, err := table.Load(args.Train)
	if err != nil {
		return ml.Model{}, fmt.Errorf("could not load training data: %w", err)
	}
	if train.Dim() != args.Features {
		log.Warn().
			Int("features", args.Features).
			Int("dim", train.Dim()).
			Msg("feature count does not match the training data")
	}

	log.Info().
		Str("run", p.run).
		Int64("seed", args.Seed).
		Int("k", args.K).
		Int("rows", train.Len()).
		Int("dim", train.Dim()).
		Msg("training")

	rng := rand.New(rand.NewSource(args.Seed))
	m, err := ml.NewKMeans(args.K).
		WithObserver(p.metrics).
		Fit(train, rng)
	if err != nil {
		return ml.Model{}, fmt.Errorf("could not fit model: %w", err)
	}
	m.Seed = args.Seed

	clusters, err := ml.Summarize(m, train)
	if err != nil {
		return ml.Model{}, fmt.Errorf("could not summarize clusters: %w", err)
	}
	for _, c := range clusters {
		log.Debug().
			Int("cluster", c.Index).
			Str("centroid", kmath.FormatVector(m.Centroids[c.Index])).
			Int("size", c.Size).
			Bool("labeled", c.Labeled).
			Float64("label", c.Label).
			Float64("avg", c.Avg).
			Float64("stdev", c.StDev).
			Float64("min", c.Min).
			Float64("max", c.Max).
			Msg("cluster")
	}

	return p.persist(args, m)
}

// persist stores the trained model and returns the stored copy,
// which is the one the test data is classified with.
func (p *Pipeline) persist(args Args, m ml.Model) (ml.Model, error) {
	persistence, err := p.shard(p.run)
	if err != nil {
		return ml.Model{}, fmt.Errorf("could not create model storage: %w", err)
	}
	k := p.Key(args)
	if err := m.Store(persistence, k); err != nil {
		return ml.Model{}, err
	}
	stored, err := ml.LoadModel(persistence, k)
	if err != nil {
		return ml.Model{}, fmt.Errorf("could not reload model: %w", err)
	}
	return stored, nil
}

func (p *Pipeline) push() {
	if p.cfg.Metrics.PushGateway == "" {
		return
	}
	if err := p.metrics.Push(p.cfg.Metrics.PushGateway, p.cfg.Metrics.Job, p.run); err != nil {
		log.Warn().Err(err).Str("run", p.run).Msg("could not push metrics")
	}
}
