// SPDX-License-Identifier: MIT

package qlearning

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by New.
var (
	// ErrNilNetwork indicates a nil *network.Network.
	ErrNilNetwork = errors.New("qlearning: network is nil")

	// ErrInvalidOptions indicates an option value outside its domain.
	ErrInvalidOptions = errors.New("qlearning: invalid options")
)

// Defaults for Options.
const (
	DefaultEpisodes   = 1000
	DefaultAlpha      = 0.1
	DefaultGamma      = 0.9
	DefaultEpsilon    = 0.1
	DefaultStepFactor = 2
)

const (
	// TerminalReward is divided by the path cost on reaching the target.
	TerminalReward = 1000.0

	// MinRewardCost floors the cost used in the terminal reward.
	MinRewardCost = 1e-4

	// logEvery is the episode interval of progress logs.
	logEvery = 100
)

// EpisodeHook observes the outcome of every training episode.
type EpisodeHook func(episode int, reachedTarget bool)

// Options configures training.
type Options struct {
	Episodes   int     `validate:"gte=0"`
	Alpha      float64 `validate:"gt=0,lte=1"`
	Gamma      float64 `validate:"gte=0,lte=1"`
	Epsilon    float64 `validate:"gte=0,lte=1"`
	StepFactor int     `validate:"gte=1"`

	// Seed fixes the agent's random stream; 0 draws a fresh seed.
	Seed int64

	Logger    *slog.Logger `validate:"-"`
	OnEpisode EpisodeHook  `validate:"-"`
}

// Option represents a functional option for configuring the Agent.
type Option func(*Options)

// DefaultOptions returns 1000 episodes, α=0.1, γ=0.9, ε=0.1, a step cap of
// 2·N, a fresh seed and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Episodes:   DefaultEpisodes,
		Alpha:      DefaultAlpha,
		Gamma:      DefaultGamma,
		Epsilon:    DefaultEpsilon,
		StepFactor: DefaultStepFactor,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// WithEpisodes sets the number of episodes per Train call.
func WithEpisodes(n int) Option {
	return func(o *Options) { o.Episodes = n }
}

// WithAlpha sets the learning rate.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithGamma sets the discount factor.
func WithGamma(gamma float64) Option {
	return func(o *Options) { o.Gamma = gamma }
}

// WithEpsilon sets the exploration probability.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithStepFactor caps an episode at factor·N steps.
func WithStepFactor(factor int) Option {
	return func(o *Options) { o.StepFactor = factor }
}

// WithSeed fixes the random stream for reproducible training.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes training logs to logger; nil keeps the current one.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithOnEpisode registers a hook called after every episode.
func WithOnEpisode(fn EpisodeHook) Option {
	return func(o *Options) { o.OnEpisode = fn }
}

// Stats summarizes training so far.
type Stats struct {
	Episodes  int // episodes run
	Successes int // episodes that reached the target
}
