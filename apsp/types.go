// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"math"
	"strings"
)

// Inf marks an unreachable pair. Sums involving Inf are never formed.
const Inf = math.MaxInt

// Distances is an n×n matrix of shortest directed path lengths (edge counts).
// D[i][i] = 0; D[i][j] = 1 exactly when i→j is an edge; Inf when no path exists.
type Distances struct {
	n    int   // order
	data []int // row-major, length n*n
}

// TraceMode selects which split points Trace accepts while decomposing a pair.
type TraceMode int

const (
	// TraceSpan accepts every split k with finite D[i][k]+D[k][j]. The result is
	// the set of edges met by the decomposition of all walks, which always
	// contains a shortest path.
	TraceSpan TraceMode = iota

	// TraceShortest accepts only splits with D[i][k]+D[k][j] == D[i][j], so every
	// returned edge lies on some shortest path.
	TraceShortest
)

// String returns the lower-case mode name used by the CLI and configs.
func (m TraceMode) String() string {
	switch m {
	case TraceSpan:
		return "span"
	case TraceShortest:
		return "shortest"
	default:
		return fmt.Sprintf("TraceMode(%d)", int(m))
	}
}

// ParseTraceMode maps "span" / "shortest" (case-insensitive) to a TraceMode.
func ParseTraceMode(s string) (TraceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "span":
		return TraceSpan, nil
	case "shortest":
		return TraceShortest, nil
	default:
		return TraceSpan, fmt.Errorf("apsp: unknown trace mode %q", s)
	}
}

// TraceOption configures Trace.
type TraceOption func(*traceOptions)

// traceOptions holds Trace configuration; see defaultTraceOptions.
type traceOptions struct {
	mode TraceMode
}

// defaultTraceOptions returns the defaults: TraceSpan.
func defaultTraceOptions() traceOptions {
	return traceOptions{mode: TraceSpan}
}

// WithMode selects the split rule used by Trace.
func WithMode(m TraceMode) TraceOption {
	return func(o *traceOptions) {
		o.mode = m
	}
}
