// Package matrix offers the dense numeric kernel behind weatherpath's
// all-pairs shortest-path engine.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, where +Inf
//     is a legal value denoting "no edge" or "no path".
//   - InitSuccessors: builds the next-hop buffer for an adjacency matrix.
//   - FloydWarshall: in-place all-pairs closure with optional next-hop tracking,
//     deterministic k → i → j loop order and strict-improvement relaxation.
//
// Matrices are best for dense or small graphs where O(V²) memory and O(V³)
// solve time are acceptable; road networks between a few dozen cities fit well.
package matrix
