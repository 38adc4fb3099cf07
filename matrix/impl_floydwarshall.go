// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with optional next-hop tracking.
//   - In-place, O(n³) time, no allocations inside the hot loops.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.
//   - Entries are non-negative (travel times); negatives are rejected up front.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall  = "FloydWarshall"
	opInitSuccessors = "InitSuccessors"
)

// NoSuccessor marks "no next hop" in a successor buffer: i == j or j is
// unreachable from i.
const NoSuccessor = -1

// matrixErrorf prefixes err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// InitSuccessors builds the initial next-hop buffer for adjacency d:
// next[i*n+j] = j when i != j and d[i,j] is finite, else NoSuccessor.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2) time and memory.
func InitSuccessors(d *Dense) ([]int, error) {
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opInitSuccessors, err)
	}

	n := d.r
	next := make([]int, n*n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i != j && !math.IsInf(d.data[base+j], 1) {
				next[base+j] = j
			} else {
				next[base+j] = NoSuccessor
			}
		}
	}

	return next, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d and, when
// next is non-nil, maintains the successor buffer alongside.
//
// Contract:
//   - d must be square (n×n) with zero diagonal and +Inf for missing edges.
//   - next, when given, must have n*n entries (see InitSuccessors).
//
// Relaxation:
//   - Loop order is fixed (k → i → j).
//   - Both d[i,k] and d[k,j] are proved finite before they are added.
//   - Only a strict improvement relaxes d[i,j]; equal-cost alternatives keep
//     the earlier successor, so ties are broken by pivot order.
//   - On relax, next[i,j] = next[i,k].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSuccessorShape, ErrNegativeWeight.
// Complexity: Time O(n^3), extra space O(1).
func FloydWarshall(d *Dense, next []int) error {
	if err := ValidateSquare(d); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}
	n := d.r
	if err := ValidateSuccessors(n, next); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	data := d.data
	var idx int
	for idx = 0; idx < len(data); idx++ {
		if data[idx] < 0 {
			return matrixErrorf(opFloydWarshall,
				fmt.Errorf("%w at (%d,%d)", ErrNegativeWeight, idx/n, idx%n))
		}
	}

	floydWarshallInPlace(data, next, n)

	return nil
}

// floydWarshallInPlace is the relaxation loop behind FloydWarshall.
// Upstream guarantees square shape and buffer lengths.
func floydWarshallInPlace(data []float64, next []int, n int) {
	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row offsets for k and i in the flat buffer
		ik, kj, cand float64 // d[i,k], d[k,j], candidate via k
	)
	track := next != nil

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					if track {
						next[baseI+j] = next[baseI+k]
					}
				}
			}
		}
	}
}
