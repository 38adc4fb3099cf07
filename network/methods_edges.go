// File: methods_edges.go
// Role: Edge mutations, edge queries and per-regime adjacency projection.
//
// Determinism:
//   - Edges() enumerates ordered pairs by (origin index, destination index).
//
// Policy:
//   - A directed pair holds at most one edge; AddEdge overwrites all four weights.
//   - The diagonal is fixed at zero; self-loops are rejected.
package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/weatherpath/matrix"
)

// AddEdge stores the four weights of from→to, registering both names if new.
//
// Implementation:
//   - Stage 1: Validate names and weights; nothing is written on failure.
//   - Stage 2: Resolve (or register) both endpoints.
//   - Stage 3: Overwrite the four cells, bump the revision.
//
// Errors:
//   - ErrInvalidName, ErrInvalidWeight, ErrSelfLoop.
func (g *Network) AddEdge(from, to string, w Weights) error {
	if err := ValidateName(from); err != nil {
		return err
	}
	if err := ValidateName(to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%s→%s: %w", from, to, ErrSelfLoop)
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("%s→%s: %w", from, to, err)
	}

	i, _ := g.Index(from)
	j, _ := g.Index(to)
	for _, r := range Regimes() {
		g.tensor[g.cell(i, j, r)] = w.At(r)
	}
	g.revision++

	return nil
}

// RemoveEdge severs from→to in every regime. Unknown endpoints are a silent no-op.
func (g *Network) RemoveEdge(from, to string) {
	i, ok := g.index[from]
	if !ok {
		return
	}
	j, ok := g.index[to]
	if !ok || i == j {
		return
	}
	for _, r := range Regimes() {
		g.tensor[g.cell(i, j, r)] = Inf
	}
	g.revision++
}

// UpdateRegime overwrites the single weight of from→to under regime r.
// Unknown endpoints and from == to are silent no-ops returning nil; the
// diagonal never changes.
//
// Errors:
//   - ErrInvalidRegime, ErrInvalidWeight.
func (g *Network) UpdateRegime(from, to string, r Regime, w float64) error {
	if !r.Valid() {
		return fmt.Errorf("%s: %w", r, ErrInvalidRegime)
	}
	if err := validateWeight(w); err != nil {
		return fmt.Errorf("%s→%s %s=%v: %w", from, to, r, w, err)
	}
	i, ok := g.index[from]
	if !ok {
		return nil
	}
	j, ok := g.index[to]
	if !ok || i == j {
		return nil
	}
	g.tensor[g.cell(i, j, r)] = w
	g.revision++

	return nil
}

// Weight returns the stored weight of from→to under r: zero on the diagonal
// of a known name, Inf for unknown names, invalid regimes or missing edges.
func (g *Network) Weight(from, to string, r Regime) float64 {
	if !r.Valid() {
		return Inf
	}
	i, ok := g.index[from]
	if !ok {
		return Inf
	}
	j, ok := g.index[to]
	if !ok {
		return Inf
	}

	return g.tensor[g.cell(i, j, r)]
}

// HasEdge reports whether from→to carries a finite weight under r.
func (g *Network) HasEdge(from, to string, r Regime) bool {
	if from == to {
		return false
	}

	return !math.IsInf(g.Weight(from, to, r), 1)
}

// Weights returns all four weights of from→to. ok is false when either name
// is unknown or from == to.
func (g *Network) Weights(from, to string) (Weights, bool) {
	i, ok := g.index[from]
	if !ok {
		return Weights{}, false
	}
	j, ok := g.index[to]
	if !ok || i == j {
		return Weights{}, false
	}

	return g.weightsAt(i, j), true
}

func (g *Network) weightsAt(i, j int) Weights {
	base := g.cell(i, j, Normal)

	return Weights{
		Normal: g.tensor[base],
		Rain:   g.tensor[base+1],
		Snow:   g.tensor[base+2],
		Storm:  g.tensor[base+3],
	}
}

// Edges lists every ordered pair with at least one finite weight, ordered by
// origin index then destination index.
// Complexity: O(N²).
func (g *Network) Edges() []Edge {
	n := len(g.names)
	out := make([]Edge, 0, n)
	var (
		i, j int
		w    Weights
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w = g.weightsAt(i, j)
			if math.IsInf(w.Normal, 1) && math.IsInf(w.Rain, 1) &&
				math.IsInf(w.Snow, 1) && math.IsInf(w.Storm, 1) {
				continue
			}
			out = append(out, Edge{From: g.names[i], To: g.names[j], Weights: w})
		}
	}

	return out
}

// Adjacency projects the tensor onto regime r as an N×N matrix with a zero
// diagonal and Inf for missing edges.
//
// Errors:
//   - ErrInvalidRegime.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func (g *Network) Adjacency(r Regime) (*matrix.Dense, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("adjacency %s: %w", r, ErrInvalidRegime)
	}
	n := len(g.names)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, g.tensor[g.cell(i, j, r)]); err != nil {
				return nil, fmt.Errorf("adjacency: %w", err)
			}
		}
	}

	return m, nil
}
