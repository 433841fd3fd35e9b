// Package inducing enumerates inducing-path candidates of a candidate MAG:
// bidirected paths whose interior vertices are all ancestors of at least one
// path endpoint in the directed skeleton.
//
// What:
//
//   - Enumerate: depth-first search over bidirected neighbors, started once
//     from every vertex. Each search frame carries the current path, the set of
//     vertices already on it, and the set of admissible endpoints.
//   - Endpoint narrowing: entering v keeps the endpoint set when v is an
//     ancestor of the start vertex, otherwise intersects it with the set of
//     vertices v is an ancestor of. The set only shrinks, and a branch stops
//     as soon as no admissible endpoint is left off the path.
//   - Emission: a path is reported when its tail is an admissible endpoint, its
//     endpoints are non-adjacent, and it is in canonical orientation
//     (tail > start), so every undirected path is reported once.
//
// Why:
//
//   - Every interior vertex of a bidirected path is a collider, so the path is
//     inducing exactly when each interior vertex is an ancestor of an endpoint.
//     An inducing path between non-adjacent vertices violates maximality.
//
// Key Types:
//
//   - Path:    vertex sequence, consecutive vertices bidirected-adjacent
//   - Options: WithAdjacency, WithMaxLength, WithAdjacentEndpoints,
//     WithBothOrientations, WithStats
//   - Stats:   frame/prune/emission counters for diagnostics
//
// Complexity:
//
//   - Worst case exponential in path length (simple paths of the bidirected
//     graph); endpoint narrowing is what keeps realistic instances tractable.
//   - Memory O(n · depth) for the explicit stack; endpoint sets are bitsets.
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch and the bidirected
//     contract errors (ErrNonZeroDiagonal, ErrAsymmetry).
package inducing
