// SPDX-License-Identifier: MIT

package genetic

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/netpath/network"
)

// Sentinel errors returned by New.
var (
	// ErrNilNetwork indicates a nil *network.Network.
	ErrNilNetwork = errors.New("genetic: network is nil")

	// ErrInvalidOptions indicates an option value outside its domain.
	ErrInvalidOptions = errors.New("genetic: invalid options")
)

// Defaults for Options.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 100
	DefaultMutationRate   = 0.2
	DefaultTournamentSize = 5
	DefaultEliteCount     = 2

	// initAttemptFactor bounds population seeding to factor·PopulationSize tries.
	initAttemptFactor = 5
)

// State is the lifecycle stage of an Optimizer.
type State int

const (
	StateUninitialized State = iota
	StatePopulated
	StateEvolving
	StateConverged
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StatePopulated:
		return "populated"
	case StateEvolving:
		return "evolving"
	case StateConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// GenerationHook observes the sorted population after each generation.
// The slice is a copy owned by the hook.
type GenerationHook func(generation int, population []network.Route)

// Options configures the evolutionary search.
type Options struct {
	PopulationSize int     `validate:"gte=2"`
	Generations    int     `validate:"gte=0"`
	MutationRate   float64 `validate:"gte=0,lte=1"`
	TournamentSize int     `validate:"gte=1"`
	EliteCount     int     `validate:"gte=0,ltefield=PopulationSize"`

	// Seed fixes the optimizer's random stream; 0 draws a fresh seed.
	Seed int64

	Logger       *slog.Logger   `validate:"-"`
	OnGeneration GenerationHook `validate:"-"`
}

// Option represents a functional option for configuring the Optimizer.
type Option func(*Options)

// DefaultOptions returns P=50, G=100, m=0.2, k=5, e=2, a fresh seed and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		TournamentSize: DefaultTournamentSize,
		EliteCount:     DefaultEliteCount,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// WithPopulationSize sets P.
func WithPopulationSize(p int) Option {
	return func(o *Options) { o.PopulationSize = p }
}

// WithGenerations sets G, the exact number of generations run.
func WithGenerations(g int) Option {
	return func(o *Options) { o.Generations = g }
}

// WithMutationRate sets the per-child mutation probability m.
func WithMutationRate(m float64) Option {
	return func(o *Options) { o.MutationRate = m }
}

// WithTournamentSize sets k.
func WithTournamentSize(k int) Option {
	return func(o *Options) { o.TournamentSize = k }
}

// WithEliteCount sets e.
func WithEliteCount(e int) Option {
	return func(o *Options) { o.EliteCount = e }
}

// WithSeed fixes the random stream for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes progress logs to logger; nil keeps the current one.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithOnGeneration registers a hook called after every generation.
func WithOnGeneration(fn GenerationHook) Option {
	return func(o *Options) { o.OnGeneration = fn }
}
