// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic distance-matrix fixtures for the kernel tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weatherpath/matrix"
)

// inf is the "no edge" sentinel used throughout the fixtures.
var inf = math.Inf(1)

// edge is a directed weighted fixture entry.
type edge struct {
	u, v int
	w    float64
}

// MustDistances ALLOCATES an n×n matrix with a zero diagonal, +Inf elsewhere,
// and the given edges applied; fails the test on any error.
func MustDistances(t testing.TB, n int, edges ...edge) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFilled(n, inf)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, d.Set(e.u, e.v, e.w))
	}

	return d
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// walk follows next from i toward j and returns the visited indices,
// or nil when a hop is missing or the walk exceeds n steps.
func walk(next []int, n, i, j int) []int {
	path := []int{i}
	for steps := 0; i != j; steps++ {
		if steps >= n {
			return nil
		}
		i = next[i*n+j]
		if i == matrix.NoSuccessor {
			return nil
		}
		path = append(path, i)
	}

	return path
}
