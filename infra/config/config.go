package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/rs/zerolog/log"
)

// Env is the environment variable pointing to the config file.
const Env = "KMEANS_CONFIG"

// Config holds the settings of a run that are not part of the invocation.
type Config struct {
	LogLevel string  `json:"log_level"`
	Storage  Storage `json:"storage"`
	Metrics  Metrics `json:"metrics"`
}

// Storage configures where trained models are stored.
// An empty directory disables storage.
type Storage struct {
	Dir string `json:"dir"`
}

// Metrics configures the pushgateway the run metrics are sent to.
// An empty url disables the push.
type Metrics struct {
	PushGateway string `json:"push_gateway"`
	Job         string `json:"job"`
}

// Default returns the default config.
func Default() Config {
	return Config{
		LogLevel: "info",
		Metrics: Metrics{
			Job: "kmeans",
		},
	}
}

// Load loads the config at the given path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not load config '%s': %w", path, err)
	}

	err = json.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not unmarshal the config '%s': %w", path, err)
	}

	log.Debug().Str("path", path).Msg("loaded config")

	return cfg, nil
}

// FromEnv loads the config referenced by the environment,
// or the defaults if there is none.
func FromEnv() (Config, error) {
	path, ok := os.LookupEnv(Env)
	if !ok || path == "" {
		return Default(), nil
	}
	return Load(path)
}
