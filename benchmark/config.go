// SPDX-License-Identifier: MIT

package benchmark

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netpath/internal/validation"
	"github.com/katalvlaran/netpath/network"
)

// ErrInvalidConfig indicates a benchmark configuration that cannot run.
var ErrInvalidConfig = errors.New("benchmark: invalid config")

// Config describes one benchmark run.
type Config struct {
	Nodes       int     `yaml:"nodes" validate:"gte=2"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`

	// Seed drives network generation, case sampling and optimizer seeds.
	// 0 leaves the optimizers unseeded.
	Seed int64 `yaml:"seed"`

	Cases   int `yaml:"cases" validate:"gte=1"`
	Repeats int `yaml:"repeats" validate:"gte=1"`
	Workers int `yaml:"workers" validate:"gte=1"`

	// Reference adds one Dijkstra run per case on per-edge weighted costs.
	Reference bool `yaml:"reference"`

	Weights   network.Weights `yaml:"weights"`
	Genetic   GeneticConfig   `yaml:"genetic"`
	QLearning QLearningConfig `yaml:"qlearning"`
}

// GeneticConfig carries the evolutionary search parameters.
type GeneticConfig struct {
	Population   int     `yaml:"population" validate:"gte=2"`
	Generations  int     `yaml:"generations" validate:"gte=0"`
	MutationRate float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
}

// QLearningConfig carries the Q-learning parameters.
type QLearningConfig struct {
	Episodes int     `yaml:"episodes" validate:"gte=0"`
	Alpha    float64 `yaml:"alpha" validate:"gt=0,lte=1"`
	Gamma    float64 `yaml:"gamma" validate:"gte=0,lte=1"`
	Epsilon  float64 `yaml:"epsilon" validate:"gte=0,lte=1"`
}

// DefaultConfig returns 20 cases × 5 repeats on a 250-node, p=0.4 network
// with near-equal weights, GA P=50 G=50 and 500 Q-learning episodes.
func DefaultConfig() Config {
	return Config{
		Nodes:       250,
		Probability: 0.4,
		Seed:        network.DefaultSeed,
		Cases:       20,
		Repeats:     5,
		Workers:     runtime.NumCPU(),
		Weights:     network.Weights{Delay: 0.33, Reliability: 0.33, Resource: 0.34},
		Genetic: GeneticConfig{
			Population:   50,
			Generations:  50,
			MutationRate: 0.2,
		},
		QLearning: QLearningConfig{
			Episodes: 500,
			Alpha:    0.1,
			Gamma:    0.9,
			Epsilon:  0.1,
		},
	}
}

// Validate checks every field and the weight vector.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML file over DefaultConfig, so omitted keys keep
// their defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}
