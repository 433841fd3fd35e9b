// SPDX-License-Identifier: MIT

package inducing

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/magsep/matrix"
)

// Path is a sequence of vertices; consecutive vertices are bidirected-adjacent.
type Path []int

// Start returns the first vertex.
func (p Path) Start() int { return p[0] }

// End returns the last vertex.
func (p Path) End() int { return p[len(p)-1] }

// Interior returns the vertices strictly between the endpoints.
func (p Path) Interior() []int {
	if len(p) < 3 {
		return nil
	}

	return p[1 : len(p)-1]
}

// Edges returns the consecutive pairs as canonical (min, max) edges, in path order.
func (p Path) Edges() []matrix.Edge {
	if len(p) < 2 {
		return nil
	}
	out := make([]matrix.Edge, 0, len(p)-1)
	for i := 0; i+1 < len(p); i++ {
		out = append(out, matrix.Edge{From: p[i], To: p[i+1]}.Canonical())
	}

	return out
}

// String renders the path as "a<->b<->c".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, "<->")
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds configurable parameters for Enumerate.
type Options struct {
	// Adjacency is the directed skeleton used for the non-adjacency test of the
	// endpoints. Nil means only bidirected adjacency is considered.
	Adjacency *matrix.Adjacency

	// MaxLength, if positive, bounds the number of vertices on a path.
	// Default 0 (no limit).
	MaxLength int

	// AdjacentEndpoints reports candidates whose endpoints are adjacent as well
	// (raw enumeration). Default false.
	AdjacentEndpoints bool

	// BothOrientations reports each path from both ends. Default false.
	BothOrientations bool

	// Stats, if non-nil, receives search counters.
	Stats *Stats
}

// Stats collects diagnostics of one Enumerate call.
type Stats struct {
	Frames     int // search frames expanded
	Pruned     int // extensions dropped because no admissible endpoint remained
	Candidates int // paths whose tail was an admissible endpoint
	Reported   int // candidates that passed the emission filter
}

// DefaultOptions returns Options with no skeleton, no length bound,
// non-adjacent endpoints only, canonical orientation and no stats.
func DefaultOptions() Options {
	return Options{
		Adjacency:         nil,
		MaxLength:         0,
		AdjacentEndpoints: false,
		BothOrientations:  false,
		Stats:             nil,
	}
}

// WithAdjacency sets the directed skeleton for the endpoint non-adjacency test.
func WithAdjacency(dir *matrix.Adjacency) Option {
	return func(o *Options) {
		o.Adjacency = dir
	}
}

// WithMaxLength bounds the number of vertices on a reported or extended path.
// Non-positive values mean no limit.
func WithMaxLength(k int) Option {
	return func(o *Options) {
		o.MaxLength = k
	}
}

// WithAdjacentEndpoints also reports candidates between adjacent endpoints.
func WithAdjacentEndpoints() Option {
	return func(o *Options) {
		o.AdjacentEndpoints = true
	}
}

// WithBothOrientations reports every path once per direction.
func WithBothOrientations() Option {
	return func(o *Options) {
		o.BothOrientations = true
	}
}

// WithStats installs a counter sink. The struct is reset at the start of the call.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
