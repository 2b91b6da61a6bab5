package storage

import (
	"errors"
	"fmt"
)

const (
	ModelDir = "model"
)

var (
	// DefaultDir is the root directory for file based storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation
type Key struct {
	Hash  int64  `json:"hash"`
	Run   string `json:"run"`
	Label string `json:"label"`
}

// Path is the file name representation of the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%v_%s", k.Run, k.Hash, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
