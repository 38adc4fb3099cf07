// SPDX-License-Identifier: MIT
package floyd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/weatherpath/matrix"
	"github.com/katalvlaran/weatherpath/network"
)

// Solution is an immutable all-pairs snapshot for one regime.
type Solution struct {
	names    []string
	index    map[string]int
	dist     *matrix.Dense
	next     []int
	regime   network.Regime
	revision uint64
	policy   CenterPolicy

	// eccentricity per index under policy; ok[i] false when i is not eligible.
	ecc []float64
	ok  []bool
}

// Solve computes all-pairs shortest distances and successors of g under r.
//
// Implementation:
//   - Stage 1: Validate inputs and capture names and revision.
//   - Stage 2: Project the regime onto an N×N matrix and copy it.
//   - Stage 3: Seed successors and run the Floyd–Warshall kernel.
//   - Stage 4: Precompute eccentricities under the center policy.
//
// Errors:
//   - ErrNilSource, network.ErrInvalidRegime (wrapped), matrix errors (wrapped).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Solve(g Source, r network.Regime, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrNilSource
	}
	if n, isNet := g.(*network.Network); isNet && n == nil {
		return nil, ErrNilSource
	}
	if !r.Valid() {
		return nil, fmt.Errorf("floyd: solve %s: %w", r, network.ErrInvalidRegime)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	names := g.Cities()
	adj, err := g.Adjacency(r)
	if err != nil {
		return nil, fmt.Errorf("floyd: solve %s: %w", r, err)
	}
	if adj.Rows() != len(names) {
		return nil, fmt.Errorf("floyd: solve %s: %d names for %d rows: %w",
			r, len(names), adj.Rows(), matrix.ErrBadShape)
	}

	dist := adj.Clone()
	next, err := matrix.InitSuccessors(dist)
	if err != nil {
		return nil, fmt.Errorf("floyd: solve %s: %w", r, err)
	}
	if err = matrix.FloydWarshall(dist, next); err != nil {
		return nil, fmt.Errorf("floyd: solve %s: %w", r, err)
	}

	s := &Solution{
		names:    names,
		index:    make(map[string]int, len(names)),
		dist:     dist,
		next:     next,
		regime:   r,
		revision: g.Revision(),
		policy:   o.Center,
	}
	for i, name := range names {
		s.index[name] = i
	}
	s.eccentricities()

	return s, nil
}

// eccentricities fills ecc and ok for every index.
func (s *Solution) eccentricities() {
	n := len(s.names)
	s.ecc = make([]float64, n)
	s.ok = make([]bool, n)
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		s.ok[i] = true
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d = s.at(i, j)
			if math.IsInf(d, 1) {
				if s.policy == CenterStrict {
					s.ok[i] = false
					break
				}
				continue
			}
			if d > s.ecc[i] {
				s.ecc[i] = d
			}
		}
	}
}

// at reads a distance for indices already known to be in range.
func (s *Solution) at(i, j int) float64 {
	v, err := s.dist.At(i, j)
	if err != nil {
		return math.Inf(1)
	}

	return v
}
