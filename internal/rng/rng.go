// SPDX-License-Identifier: MIT

// Package rng centralizes the seed policy of the optimizers and the
// derivation of independent per-run seeds.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to give every worker or run its own stream.
package rng

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded with seed. Policy: seed==0 draws a fresh
// seed from the clock; any other value is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(Resolve(seed)))
}

// Resolve applies the seed policy of New and returns the seed actually used.
func Resolve(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Derive mixes a parent seed and a stream identifier into a new seed. The
// parent goes through the SplitMix64 finalizer before the stream is added,
// so distinct (parent, stream) pairs land on distinct inputs of the final
// mix. The result is never 0, so a derived seed is always reproducible
// under New.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) int64 {
	x := mix(uint64(parent)+golden) + stream
	x = mix(x + golden)
	if x == 0 {
		x = 1
	}
	return int64(x)
}

const golden = 0x9e3779b97f4a7c15

// mix is the SplitMix64 finalizer; it is a bijection on uint64.
func mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
