// Package mag turns the reachability index and the inducing-path search into
// lazy constraints for an exact MAG structure optimizer.
//
// What:
//
//   - FindInducingPathViolations: every inducing path between non-adjacent
//     vertices, with the bidirected edges of the path and the directed edges
//     proving that each interior vertex is an ancestor of an endpoint.
//   - FindAlmostDirectedCycles: every bidirected edge u↔v with a directed
//     path u→…→v, with the directed edges of that path.
//   - Separate: validates a candidate, builds the index once and runs both.
//   - CheckAll: Separate over independent candidates concurrently.
//
// Why:
//
//   - Both properties are global and cannot be written edge-by-edge into the
//     optimizer's model. The optimizer proposes a candidate, calls an Oracle,
//     and when a Report is not Feasible it adds each Witness as a no-good
//     ("not all of these edges at once") and re-solves.
//
// Determinism:
//
//   - Witness lists are ordered by discovery (start vertex, then DFS order,
//     resp. by bidirected edge); edge lists inside a witness are sorted.
//   - No state survives a call; repeated calls return identical reports.
//
// Errors:
//
//   - Malformed candidates (nil matrices, self-loops, asymmetric bidirected
//     matrix, order mismatch) fail before any witness is produced, with the
//     matrix sentinels reachable through errors.Is.
package mag
