// Package magsep is a separation oracle for Maximal Ancestral Graphs.
//
// 🚀 What is magsep?
//
//	Given a candidate mixed graph (a directed and a bidirected 0/1 adjacency
//	matrix over the same vertices), magsep finds the violations of the two
//	global MAG properties and returns, for each one, the exact edges that
//	witness it, ready to become a lazy constraint in an optimizer:
//		• Almost directed cycles: u↔v together with a directed path u→…→v
//		• Inducing paths: a bidirected path whose interior vertices are all
//		  ancestors of an endpoint, between non-adjacent endpoints
//
// ✨ Why magsep?
//
//   - Deterministic: identical inputs give identical witnesses
//   - Pure functions: inputs are never mutated, calls are safe to run in parallel
//   - Batch friendly: mag.CheckAll separates many candidates concurrently
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   : Adjacency, Edge and the input validators
//	apsp/     : Floyd-Warshall reachability index and witness reconstruction (Trace)
//	inducing/ : endpoint-narrowing DFS enumerating inducing-path candidates
//	mag/      : the extractors, Separate, the Oracle interface and CheckAll
//
// The magsep command (cmd/magsep) wraps the library for files in YAML, TOML
// or JSON.
//
// Quick ASCII example:
//
//	    x ──→ y ──→ q ──→ w
//	    │      └──────────↗
//	    └───────↔─────────┘
//
//	x↔w closes the directed path x→y→w: an almost directed cycle.
//
//	go install github.com/katalvlaran/magsep/cmd/magsep@latest
package magsep
