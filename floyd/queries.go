// SPDX-License-Identifier: MIT
package floyd

import (
	"math"

	"github.com/katalvlaran/weatherpath/matrix"
	"github.com/katalvlaran/weatherpath/network"
)

// Regime returns the regime the solution was computed for.
func (s *Solution) Regime() network.Regime { return s.regime }

// Revision returns the store revision the solution was computed from.
func (s *Solution) Revision() uint64 { return s.revision }

// Stale reports whether a store at revision rev has changed since Solve.
func (s *Solution) Stale(rev uint64) bool { return rev != s.revision }

// Policy returns the center policy in effect.
func (s *Solution) Policy() CenterPolicy { return s.policy }

// Len returns the number of locations in the snapshot.
func (s *Solution) Len() int { return len(s.names) }

// Cities returns a copy of the snapshot names in index order.
func (s *Solution) Cities() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Has reports whether name was part of the snapshot.
func (s *Solution) Has(name string) bool {
	_, ok := s.index[name]

	return ok
}

// Distances returns a copy of the N×N distance matrix.
func (s *Solution) Distances() *matrix.Dense { return s.dist.Clone() }

// Distance returns the shortest travel time from → to, or +Inf when either
// name is unknown or to is unreachable.
func (s *Solution) Distance(from, to string) float64 {
	i, ok := s.index[from]
	if !ok {
		return math.Inf(1)
	}
	j, ok := s.index[to]
	if !ok {
		return math.Inf(1)
	}

	return s.at(i, j)
}

// Reachable reports whether a finite route exists from → to.
func (s *Solution) Reachable(from, to string) bool {
	return !math.IsInf(s.Distance(from, to), 1)
}

// Path reconstructs the shortest route as a list of names, endpoints included.
//
// Behavior highlights:
//   - from == to (known) yields [from].
//   - Unknown names or an unreachable target yield nil.
//   - The walk is bounded by N steps; a successor chain that does not reach
//     the target within that bound yields nil.
func (s *Solution) Path(from, to string) []string {
	i, ok := s.index[from]
	if !ok {
		return nil
	}
	j, ok := s.index[to]
	if !ok {
		return nil
	}
	if i == j {
		return []string{from}
	}
	if math.IsInf(s.at(i, j), 1) {
		return nil
	}

	n := len(s.names)
	path := make([]string, 1, n)
	path[0] = s.names[i]
	cur := i
	for step := 0; step < n; step++ {
		cur = s.next[cur*n+j]
		if cur == matrix.NoSuccessor {
			return nil
		}
		path = append(path, s.names[cur])
		if cur == j {
			return path
		}
	}

	return nil
}

// Intermediates returns the interior of Path (endpoints stripped). It is
// empty for a direct road and nil when there is no route.
func (s *Solution) Intermediates(from, to string) []string {
	p := s.Path(from, to)
	if p == nil {
		return nil
	}
	if len(p) <= 2 {
		return []string{}
	}

	return p[1 : len(p)-1]
}

// DistancesFrom maps every reachable peer of origin to its distance. The
// origin itself and unreachable peers are omitted; an unknown origin yields nil.
func (s *Solution) DistancesFrom(origin string) map[string]float64 {
	i, ok := s.index[origin]
	if !ok {
		return nil
	}
	out := make(map[string]float64)
	var d float64
	for j, name := range s.names {
		if j == i {
			continue
		}
		if d = s.at(i, j); !math.IsInf(d, 1) {
			out[name] = d
		}
	}

	return out
}

// Eccentricity returns the largest distance from name to its peers under the
// center policy. ok is false for unknown names and, under CenterStrict, for
// locations that cannot reach every peer.
func (s *Solution) Eccentricity(name string) (float64, bool) {
	i, found := s.index[name]
	if !found || !s.ok[i] {
		return math.Inf(1), false
	}

	return s.ecc[i], true
}

// Center returns the eligible location with the smallest eccentricity, ties
// broken by lowest index. ok is false when no location is eligible, which
// includes the empty graph.
func (s *Solution) Center() (string, bool) {
	best := -1
	for i := range s.names {
		if !s.ok[i] {
			continue
		}
		if best < 0 || s.ecc[i] < s.ecc[best] {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}

	return s.names[best], true
}
