// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that a start or target id does not exist.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Graph is the read-only view DFS needs; *network.Network satisfies it.
type Graph interface {
	NumNodes() int
	HasNode(id int) bool
	Neighbors(id int) []int
}

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked on discovery (pre-order); an error aborts traversal.
	OnVisit func(id, depth int) error

	// OnExit is invoked after all descendants are explored (post-order);
	// an error aborts traversal.
	OnExit func(id int) error

	// MaxDepth, if non-negative, limits recursion depth. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, returns false to skip an edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns Background context, no hooks and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context; nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first traversal. Depth and Parent
// are indexed by node id; unreached nodes hold -1.
type Result struct {
	Order  []int // post-order
	Depth  []int
	Parent []int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id int) bool {
	return id >= 0 && id < len(r.Depth) && r.Depth[id] >= 0
}
