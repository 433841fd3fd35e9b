// Package apsp implements the all-pairs reachability index over the directed
// skeleton of a candidate mixed graph, and the reconstruction of concrete
// directed edges that witness a connection.
//
// What:
//
//   - Compute: Floyd–Warshall over a 0/1 adjacency with unit edge weights.
//     The diagonal is forced to 0 before relaxation, so Reachable(s, s) is
//     always true; unreachable pairs hold Inf.
//   - Trace: iterative decomposition of a pair (u, v) into directed edges
//     using the distance index. Two split rules are available:
//     TraceSpan (default) keeps every split k with a finite detour u→k→v,
//     TraceShortest keeps only splits on shortest paths.
//
// Why:
//
//   - Ancestral and maximality checks of a MAG are global: they need "is there
//     a directed path from a to b" for many pairs at once, and the optimizer
//     needs the edges of such a path to forbid the offending combination.
//
// Complexity:
//
//   - Compute: Time O(n³), Memory O(n²)
//   - Trace:   Time O(n³) worst case (n² pairs × n splits), Memory O(n²)
//
// Errors:
//
//   - matrix.ErrNilMatrix          nil adjacency or index
//   - matrix.ErrDimensionMismatch  index and adjacency disagree on n
//   - matrix.ErrOutOfRange         vertex outside [0, n)
//   - ErrInvalidDistance           FromRows got a negative or non-zero diagonal entry
//   - ErrInconsistentIndex         Trace met a unit distance without a matching edge
//
// Every call is a pure function of its arguments; the caller's adjacency is
// never written.
package apsp
