// File: methods_locations.go
// Role: Location catalog (name ↔ dense index) and tensor growth.
//
// Determinism:
//   - Indices are assigned in first-reference order starting from 0 and never freed.
//   - Cities() returns names in index order.
package network

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Index returns the dense index of name, registering it if it is new.
//
// Implementation:
//   - Stage 1: Validate the name (non-empty, printable, no whitespace).
//   - Stage 2: Return the existing index when the name is known.
//   - Stage 3: Grow the tensor if full, append the name, bump the revision.
//
// Errors:
//   - ErrInvalidName (wrapped with the quoted name).
//
// Complexity:
//   - Time O(1) amortized; O(cap²) on the growth step.
func (g *Network) Index(name string) (int, error) {
	if err := ValidateName(name); err != nil {
		return -1, err
	}
	if i, ok := g.index[name]; ok {
		return i, nil
	}
	if len(g.names) == g.capacity {
		g.grow(2 * g.capacity)
	}
	i := len(g.names)
	g.names = append(g.names, name)
	g.index[name] = i
	g.revision++

	return i, nil
}

// Lookup returns the index of a known name without registering it.
func (g *Network) Lookup(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// Name returns the location registered at index i.
func (g *Network) Name(i int) (string, bool) {
	if i < 0 || i >= len(g.names) {
		return "", false
	}

	return g.names[i], true
}

// Cities returns a copy of all names in index order.
func (g *Network) Cities() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// ValidateName rejects empty names and names carrying whitespace or
// non-printable runes. Names are otherwise compared byte-exact.
func ValidateName(name string) error {
	if name == "" || !utf8.ValidString(name) {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%q: %w", name, ErrInvalidName)
		}
	}

	return nil
}

// newTensor allocates a (c, c, NumRegimes) buffer with Inf off the diagonal
// and zero on it.
func newTensor(c int) []float64 {
	t := make([]float64, c*c*NumRegimes)
	var i, j, r int
	for i = 0; i < c; i++ {
		for j = 0; j < c; j++ {
			if i == j {
				continue
			}
			base := (i*c + j) * NumRegimes
			for r = 0; r < NumRegimes; r++ {
				t[base+r] = Inf
			}
		}
	}

	return t
}

// grow reallocates the tensor to capacity c, copying every known cell.
// Indices keep their positions; new cells start at Inf with a zero diagonal.
func (g *Network) grow(c int) {
	next := newTensor(c)
	n := len(g.names)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			copy(next[(i*c+j)*NumRegimes:(i*c+j+1)*NumRegimes],
				g.tensor[(i*g.capacity+j)*NumRegimes:(i*g.capacity+j+1)*NumRegimes])
		}
	}
	g.tensor = next
	g.capacity = c
}

// cell returns the tensor offset of (i, j, r).
func (g *Network) cell(i, j int, r Regime) int {
	return (i*g.capacity+j)*NumRegimes + int(r)
}
