package json

import (
	"path/filepath"

	"github.com/drakos74/kmeans/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage keeps every key as a json file under <path>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

// BlobShard creates json blob storage shards for the given table under the root directory.
func BlobShard(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(root, table, shard, false), nil
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.table, s.shard)
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Info().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.table, s.shard), k.Path(), value)
}

// NewJsonBlob creates a new json file storage.
// table has the same schema
// shard is a logical split
func NewJsonBlob(root, table, shard string, debug bool) *BlobStorage {
	if root == "" {
		root = storage.DefaultDir
	}
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  root,
		debug: debug,
	}
}
