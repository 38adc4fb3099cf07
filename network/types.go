// Package network defines the graph store behind weatherpath: the set of
// location names, a stable name → dense index mapping assigned in insertion
// order, and a contiguous (N, N, 4) weight tensor indexed by origin,
// destination and weather regime.
//
// This file declares sentinel errors, Weights, Edge, Option and the Network
// type with its constructor.
//
// Errors:
//
//	ErrInvalidName    - name is empty, contains whitespace or is not printable.
//	ErrInvalidWeight  - weight is negative, NaN or ±Inf.
//	ErrInvalidRegime  - regime value outside Normal..Storm.
//	ErrSelfLoop       - edge from a location to itself (the diagonal is fixed at zero).
package network

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph store operations.
var (
	// ErrInvalidName indicates an empty, whitespace-bearing or non-printable location name.
	ErrInvalidName = errors.New("network: invalid location name")

	// ErrInvalidWeight indicates a negative or non-finite travel time.
	ErrInvalidWeight = errors.New("network: invalid weight")

	// ErrInvalidRegime indicates a Regime value outside the four known regimes.
	ErrInvalidRegime = errors.New("network: invalid weather regime")

	// ErrSelfLoop indicates an attempt to set a weight on the diagonal.
	ErrSelfLoop = errors.New("network: self-loop not allowed")
)

// Inf is the "no edge" sentinel stored in the tensor. It never takes part in
// arithmetic without a prior finiteness check.
var Inf = math.Inf(1)

// DefaultCapacity is the number of locations the tensor holds before it first grows.
const DefaultCapacity = 16

// panicCapacityInvalid is raised by WithCapacity on a non-positive argument.
const panicCapacityInvalid = "network: WithCapacity: capacity must be > 0"

// Weights holds the four parallel travel times of one directed edge.
type Weights struct {
	Normal float64
	Rain   float64
	Snow   float64
	Storm  float64
}

// At returns the weight for regime r, or Inf for an invalid regime.
func (w Weights) At(r Regime) float64 {
	switch r {
	case Normal:
		return w.Normal
	case Rain:
		return w.Rain
	case Snow:
		return w.Snow
	case Storm:
		return w.Storm
	default:
		return Inf
	}
}

// Validate reports ErrInvalidWeight (wrapped with the offending regime) when
// any of the four weights is negative or non-finite.
func (w Weights) Validate() error {
	for _, r := range Regimes() {
		if err := validateWeight(w.At(r)); err != nil {
			return fmt.Errorf("%s=%v: %w", r, w.At(r), err)
		}
	}

	return nil
}

// validateWeight accepts finite, non-negative travel times.
func validateWeight(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrInvalidWeight
	}

	return nil
}

// Edge is one directed connection as enumerated by Network.Edges.
type Edge struct {
	From    string
	To      string
	Weights Weights
}

// Option configures a Network before first use.
type Option func(*Network)

// WithCapacity sets the initial tensor capacity (number of locations).
// Panics on a non-positive value (programmer error).
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(g *Network) { g.capacity = n }
}

// Network is the mutable graph store.
//
// Invariants:
//   - index and names are a bijection over the known locations.
//   - tensor holds capacity·capacity·NumRegimes cells; cell (i,j,r) lives at
//     (i*capacity+j)*NumRegimes + r.
//   - diagonal cells are zero for every regime; off-diagonal cells are a
//     finite non-negative weight or Inf (including cells beyond len(names)).
//
// Network is not safe for concurrent use; callers serialize access.
type Network struct {
	names    []string       // dense index → name, insertion order
	index    map[string]int // name → dense index
	capacity int            // allocated rows/cols of the tensor
	tensor   []float64      // contiguous (capacity, capacity, NumRegimes) buffer
	revision uint64         // bumped on every successful mutation
}

// New creates an empty Network.
// Complexity: O(capacity²).
func New(opts ...Option) *Network {
	g := &Network{
		index:    make(map[string]int),
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.tensor = newTensor(g.capacity)

	return g
}

// Revision returns the mutation counter. Any solution computed at an older
// revision is stale.
func (g *Network) Revision() uint64 { return g.revision }

// Len returns the number of known locations.
func (g *Network) Len() int { return len(g.names) }

// Capacity returns the number of locations the tensor holds before growing.
func (g *Network) Capacity() int { return g.capacity }
