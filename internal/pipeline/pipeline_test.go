package pipeline

import (
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drakos74/kmeans/infra/config"
	"github.com/drakos74/kmeans/internal/math/ml"
	"github.com/drakos74/kmeans/internal/storage"
	"github.com/drakos74/kmeans/internal/storage/file/json"
	"github.com/drakos74/kmeans/internal/storage/file/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trainData = `x y label
0 0 1
0 1 1
10 10 2
10 11 2
`

func write(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// seedForGroups finds a seed that places the initial centroids in different groups.
func seedForGroups(t *testing.T, path string) int64 {
	ds, err := table.Load(path)
	require.NoError(t, err)
	for seed := int64(1); seed < 1000; seed++ {
		centroids, err := ml.InitCentroids(2, ds, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		if centroids[0][0] != centroids[1][0] {
			return seed
		}
	}
	t.Fatal("no seed places the centroids in different groups")
	return 0
}

func singleStore() (*json.LocalStorage, storage.Shard) {
	store := json.NewLocalStorage()
	return store, func(shard string) (storage.Persistence, error) {
		return store, nil
	}
}

func TestPipeline_Execute(t *testing.T) {
	dir := t.TempDir()
	trainPath := write(t, dir, "train.txt", trainData)
	seed := seedForGroups(t, trainPath)

	type test struct {
		test    string
		correct int
	}

	tests := map[string]test{
		"correct": {
			test:    "x y label\n0 0 1\n",
			correct: 1,
		},
		"incorrect": {
			test:    "x y label\n10 10 1\n",
			correct: 0,
		},
		"mixed": {
			test:    "x y label\n0 0 1\n10 10 1\n10 12 2\n-1 0 1\n",
			correct: 3,
		},
		"empty": {
			test:    "x y label\n",
			correct: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := Args{
				Seed:     seed,
				K:        2,
				Features: 2,
				Train:    trainPath,
				Test:     write(t, t.TempDir(), "test.txt", tt.test),
			}

			store, shard := singleStore()
			p := New(config.Default()).WithShard(shard)
			correct, err := p.Execute(args)
			require.NoError(t, err)
			assert.Equal(t, tt.correct, correct)

			m, err := ml.LoadModel(store, p.Key(args))
			require.NoError(t, err)
			assert.Equal(t, seed, m.Seed)
			assert.Len(t, m.Centroids, 2)
			assert.Len(t, m.Labels, 2)
		})
	}
}

func TestPipeline_Reproducible(t *testing.T) {
	dir := t.TempDir()
	args := Args{
		Seed:     5,
		K:        3,
		Features: 2,
		Train:    write(t, dir, "train.txt", trainData+"5 5 1\n6 5 2\n"),
		Test:     write(t, dir, "test.txt", "h\n0 0 1\n5 6 2\n10 10 2\n3 3 1\n"),
	}

	store1, shard1 := singleStore()
	p1 := New(config.Default()).WithShard(shard1)
	c1, err := p1.Execute(args)
	require.NoError(t, err)

	store2, shard2 := singleStore()
	p2 := New(config.Default()).WithShard(shard2)
	c2, err := p2.Execute(args)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
	assert.NotEqual(t, p1.Run(), p2.Run())

	m1, err := ml.LoadModel(store1, p1.Key(args))
	require.NoError(t, err)
	m2, err := ml.LoadModel(store2, p2.Key(args))
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

func TestPipeline_BlobStorage(t *testing.T) {
	dir := t.TempDir()
	args := Args{
		Seed:     1,
		K:        2,
		Features: 2,
		Train:    write(t, dir, "train.txt", trainData),
		Test:     write(t, dir, "test.txt", "h\n0 0 1\n"),
	}

	cfg := config.Default()
	cfg.Storage.Dir = filepath.Join(dir, "storage")
	p := New(cfg)
	_, err := p.Execute(args)
	require.NoError(t, err)

	store := json.NewJsonBlob(cfg.Storage.Dir, storage.ModelDir, p.Run(), false)
	m, err := ml.LoadModel(store, p.Key(args))
	require.NoError(t, err)
	assert.Equal(t, 2, m.K)
	assert.Equal(t, 2, m.Dim)
}

func TestPipeline_Push(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	args := Args{
		Seed:     1,
		K:        2,
		Features: 2,
		Train:    write(t, dir, "train.txt", trainData),
		Test:     write(t, dir, "test.txt", "h\n0 0 1\n"),
	}

	cfg := config.Default()
	cfg.Metrics.PushGateway = server.URL
	p := New(cfg)
	_, err := p.Execute(args)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/metrics/job/kmeans/run/"))
	assert.True(t, strings.HasSuffix(path, p.Run()))
}

func TestPipeline_Errors(t *testing.T) {
	dir := t.TempDir()
	trainPath := write(t, dir, "train.txt", trainData)
	testPath := write(t, dir, "test.txt", "h\n0 0 1\n")

	type test struct {
		args Args
		err  error
	}

	tests := map[string]test{
		"missing-train": {
			args: Args{Seed: 1, K: 2, Train: filepath.Join(dir, "missing.txt"), Test: testPath},
			err:  table.ErrFile,
		},
		"missing-test": {
			args: Args{Seed: 1, K: 2, Train: trainPath, Test: filepath.Join(dir, "missing.txt")},
			err:  table.ErrFile,
		},
		"malformed-train": {
			args: Args{Seed: 1, K: 2, Train: write(t, dir, "bad.txt", "h\n1 2 3\n1 2\n"), Test: testPath},
			err:  table.ErrFormat,
		},
		"empty-train": {
			args: Args{Seed: 1, K: 2, Train: write(t, dir, "empty.txt", "h\n"), Test: testPath},
			err:  ml.ErrInvalidInput,
		},
		"no-clusters": {
			args: Args{Seed: 1, K: 0, Train: trainPath, Test: testPath},
			err:  ml.ErrInvalidInput,
		},
		"test-dimension-mismatch": {
			args: Args{Seed: 1, K: 2, Train: trainPath, Test: write(t, dir, "wide.txt", "h\n1 2 3 1\n")},
			err:  ml.ErrInvalidInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(config.Default()).Execute(tt.args)
			assert.True(t, errors.Is(err, tt.err), "unexpected error: %v", err)
		})
	}
}
