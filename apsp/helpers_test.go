// SPDX-License-Identifier: MIT
// Package apsp_test contains shared fixtures for the apsp tests.
//
// The q, x, y, w graphs follow the worked MAG example (Rantanen et al., 2021,
// figure 1 a+b); vertices are numbered q=0, x=1, y=2, w=3.

package apsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/matrix"
)

const (
	Q = 0
	X = 1
	Y = 2
	W = 3
	D = 4
)

const inf = apsp.Inf

// mustEdges builds a D-vertex directed adjacency from edges or fails the test.
func mustEdges(t *testing.T, n int, edges ...matrix.Edge) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.FromEdges(n, edges, false)
	require.NoError(t, err)

	return a
}

// e is a short Edge constructor for fixtures.
func e(from, to int) matrix.Edge {
	return matrix.Edge{From: from, To: to}
}

func graph1(t *testing.T) *matrix.Adjacency { return mustEdges(t, D, e(W, X), e(Q, Y)) }
func graph2(t *testing.T) *matrix.Adjacency { return mustEdges(t, D, e(Y, X), e(W, Q)) }
func graph3(t *testing.T) *matrix.Adjacency {
	return mustEdges(t, D, e(X, Y), e(Y, Q), e(Q, W), e(Y, W))
}

// graph3Distances is the expected index of graph3.
var graph3Distances = [][]int{
	{0, inf, inf, 1},   // Q
	{2, 0, 1, 2},       // X
	{1, inf, 0, 1},     // Y
	{inf, inf, inf, 0}, // W
}

// randomDirected returns an n-vertex adjacency with each off-diagonal
// entry present with probability p, from a fixed seed.
func randomDirected(t *testing.T, rng *rand.Rand, n int, p float64) *matrix.Adjacency {
	t.Helper()
	a, err := matrix.NewAdjacency(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < p {
				require.NoError(t, a.Set(i, j, 1))
			}
		}
	}

	return a
}

// bfsDistances computes single-source unit distances restricted to edges,
// used as an independent oracle. Unreached vertices hold inf.
func bfsDistances(n, src int, has func(i, j int) bool) []int {
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if dist[v] == inf && has(u, v) {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}
