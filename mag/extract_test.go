// SPDX-License-Identifier: MIT

package mag_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/inducing"
	"github.com/katalvlaran/magsep/mag"
	"github.com/katalvlaran/magsep/matrix"
)

// Vertices of the worked MAG example (q, x, y, w).
const (
	Q = 0
	X = 1
	Y = 2
	W = 3
	D = 4
)

func e(from, to int) matrix.Edge { return matrix.Edge{From: from, To: to} }

type candidate struct {
	dir, bi *matrix.Adjacency
	d       *apsp.Distances
}

func build(t *testing.T, n int, dir, bi []matrix.Edge) candidate {
	t.Helper()
	da, err := matrix.FromEdges(n, dir, false)
	require.NoError(t, err)
	ba, err := matrix.FromEdges(n, bi, true)
	require.NoError(t, err)
	d, err := apsp.Compute(da)
	require.NoError(t, err)

	return candidate{dir: da, bi: ba, d: d}
}

// Directed {w→x, q→y}, bidirected {x↔q, y↔w}: a known-valid MAG.
func TestFindInducingPathViolations_ValidMAG(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(W, X), e(Q, Y)}, []matrix.Edge{e(X, Q), e(Y, W)})

	ips, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d)
	require.NoError(t, err)
	assert.Empty(t, ips)

	adc, err := mag.FindAlmostDirectedCycles(c.dir, c.bi, c.d)
	require.NoError(t, err)
	assert.Empty(t, adc)
}

// Directed {y→x, w→q}, bidirected {x↔w, y↔w, y↔q}: exactly one inducing path
// x↔w↔y↔q, certified by y→x and w→q.
func TestFindInducingPathViolations_OnePath(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(Y, X), e(W, Q)}, []matrix.Edge{e(X, W), e(Y, W), e(Y, Q)})

	got, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d)
	require.NoError(t, err)

	want := []mag.Witness{{
		Kind:       mag.KindInducingPath,
		Path:       []int{Q, Y, W, X},
		Directed:   []matrix.Edge{e(Y, X), e(W, Q)},
		Bidirected: []matrix.Edge{e(Q, Y), e(X, W), e(Y, W)},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("witness mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, got[0].NoGood().MaxPresent)
}

// Directed {x→y, y→q, q→w, y→w}, bidirected {x↔w}: one almost directed cycle.
func TestFindAlmostDirectedCycles_WorkedExample(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(X, Y), e(Y, Q), e(Q, W), e(Y, W)}, []matrix.Edge{e(X, W)})

	span, err := mag.FindAlmostDirectedCycles(c.dir, c.bi, c.d)
	require.NoError(t, err)
	wantSpan := []mag.Witness{{
		Kind:       mag.KindAlmostDirectedCycle,
		Path:       []int{X, W},
		Directed:   []matrix.Edge{e(Q, W), e(X, Y), e(Y, Q), e(Y, W)},
		Bidirected: []matrix.Edge{e(X, W)},
	}}
	if diff := cmp.Diff(wantSpan, span); diff != "" {
		t.Fatalf("span witness mismatch (-want +got):\n%s", diff)
	}

	shortest, err := mag.FindAlmostDirectedCycles(c.dir, c.bi, c.d, mag.WithTraceMode(apsp.TraceShortest))
	require.NoError(t, err)
	require.Len(t, shortest, 1)
	assert.Equal(t, []matrix.Edge{e(X, Y), e(Y, W)}, shortest[0].Directed)

	ips, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d)
	require.NoError(t, err)
	assert.Empty(t, ips)
}

// A bidirected pair inside a directed 2-cycle is reported in both orientations.
func TestFindAlmostDirectedCycles_BothOrientations(t *testing.T) {
	t.Parallel()

	c := build(t, 2, []matrix.Edge{e(0, 1), e(1, 0)}, []matrix.Edge{e(0, 1)})
	got, err := mag.FindAlmostDirectedCycles(c.dir, c.bi, c.d)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, got[0].Path)
	assert.Equal(t, []matrix.Edge{e(0, 1)}, got[0].Directed)
	assert.Equal(t, []int{1, 0}, got[1].Path)
	assert.Equal(t, []matrix.Edge{e(1, 0)}, got[1].Directed)
	assert.Equal(t, got[0].Bidirected, got[1].Bidirected)
}

// Search options are forwarded; the raw enumeration adds adjacent-endpoint
// candidates, which carry no directed evidence here.
func TestFindInducingPathViolations_SearchOptions(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(W, X), e(Q, Y)}, []matrix.Edge{e(X, Q), e(Y, W)})
	got, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d,
		mag.WithSearchOptions(inducing.WithAdjacentEndpoints()))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, w := range got {
		assert.Empty(t, w.Directed)
		assert.Len(t, w.Bidirected, 1)
	}
}

// With both orientations requested a path is reported from each end; the
// edge evidence is the same for both.
func TestFindInducingPathViolations_BothOrientations(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(Y, X), e(W, Q)}, []matrix.Edge{e(X, W), e(Y, W), e(Y, Q)})
	got, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d,
		mag.WithSearchOptions(inducing.WithBothOrientations()))
	require.NoError(t, err)
	require.Len(t, got, 2)

	paths := [][]int{got[0].Path, got[1].Path}
	assert.ElementsMatch(t, [][]int{{Q, Y, W, X}, {X, W, Y, Q}}, paths)
	assert.Equal(t, got[0].Directed, got[1].Directed)
	assert.Equal(t, got[0].Bidirected, got[1].Bidirected)
	assert.Equal(t, []matrix.Edge{e(Y, X), e(W, Q)}, got[0].Directed)
}

func TestExtractors_InputErrors(t *testing.T) {
	t.Parallel()

	c := build(t, D, []matrix.Edge{e(W, X)}, []matrix.Edge{e(X, Q)})
	small := build(t, 2, nil, nil)
	asym, err := matrix.FromEdges(D, []matrix.Edge{e(X, Q)}, false)
	require.NoError(t, err)
	loop, err := matrix.FromRows([][]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	require.NoError(t, err)

	extractors := map[string]func(dir, bi *matrix.Adjacency, d *apsp.Distances, opts ...mag.Option) ([]mag.Witness, error){
		"inducing": mag.FindInducingPathViolations,
		"adc":      mag.FindAlmostDirectedCycles,
	}
	for name, fn := range extractors {
		fn := fn
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := fn(nil, c.bi, c.d)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = fn(c.dir, c.bi, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = fn(c.dir, asym, c.d)
			require.ErrorIs(t, err, matrix.ErrAsymmetry)
			_, err = fn(loop, c.bi, c.d)
			require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
			_, err = fn(c.dir, small.bi, c.d)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = fn(c.dir, c.bi, small.d)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = fn(c.dir, c.bi, small.d, mag.WithoutValidation())
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

// reaches reports whether edges contain a directed path from a to b.
func reaches(n int, edges []matrix.Edge, a, b int) bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, ed := range edges {
		adj[ed.From][ed.To] = true
	}
	seen := make([]bool, n)
	stack := []int{a}
	seen[a] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == b {
			return true
		}
		for v := 0; v < n; v++ {
			if adj[u][v] && !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	return false
}

// Randomized witness soundness: every directed edge belongs to the candidate,
// every bidirected edge too, each interior vertex reaches an endpoint inside
// the directed witness, and each almost directed cycle's witness closes u→v.
func TestWitnesses_Sound_Random(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 30; round++ {
		n := 2 + rng.Intn(7)
		var dirEdges, biEdges []matrix.Edge
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.2 {
					dirEdges = append(dirEdges, e(i, j))
				}
				if i < j && rng.Float64() < 0.35 {
					biEdges = append(biEdges, e(i, j))
				}
			}
		}
		c := build(t, n, dirEdges, biEdges)

		for _, mode := range []apsp.TraceMode{apsp.TraceSpan, apsp.TraceShortest} {
			ips, err := mag.FindInducingPathViolations(c.dir, c.bi, c.d, mag.WithTraceMode(mode))
			require.NoError(t, err)
			for _, w := range ips {
				require.Equal(t, mag.KindInducingPath, w.Kind)
				s, tt := w.Path[0], w.Path[len(w.Path)-1]
				require.Less(t, s, tt)
				require.False(t, c.dir.Adjacent(s, tt) || c.bi.Has(s, tt), "endpoints must be non-adjacent")
				for _, ed := range w.Directed {
					require.True(t, c.dir.Has(ed.From, ed.To))
				}
				for _, ed := range w.Bidirected {
					require.True(t, c.bi.Has(ed.From, ed.To))
					require.Less(t, ed.From, ed.To)
				}
				for _, v := range w.Path[1 : len(w.Path)-1] {
					require.Truef(t, reaches(n, w.Directed, v, s) || reaches(n, w.Directed, v, tt),
						"round %d: interior %d must be an ancestor of %d or %d within %v", round, v, s, tt, w.Directed)
				}
			}

			adc, err := mag.FindAlmostDirectedCycles(c.dir, c.bi, c.d, mag.WithTraceMode(mode))
			require.NoError(t, err)
			expected := 0
			for u := 0; u < n; u++ {
				for v := 0; v < n; v++ {
					if u != v && c.bi.Has(u, v) && c.d.Reachable(u, v) {
						expected++
					}
				}
			}
			require.Len(t, adc, expected, "one witness per reachable bidirected orientation")
			for _, w := range adc {
				require.NotEmpty(t, w.Directed)
				require.True(t, reaches(n, w.Directed, w.Path[0], w.Path[1]))
			}
		}
	}
}
