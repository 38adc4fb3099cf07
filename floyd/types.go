package floyd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/weatherpath/matrix"
	"github.com/katalvlaran/weatherpath/network"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilSource indicates that Solve received a nil Source.
	ErrNilSource = errors.New("floyd: source is nil")
)

// Source is the read-only view of a graph store that Solve needs.
// *network.Network satisfies it.
type Source interface {
	Cities() []string
	Adjacency(r network.Regime) (*matrix.Dense, error)
	Revision() uint64
}

// CenterPolicy selects how eccentricity treats unreachable peers.
type CenterPolicy uint8

const (
	// CenterStrict requires a center to reach every other location.
	CenterStrict CenterPolicy = iota
	// CenterReachableOnly ignores unreachable peers.
	CenterReachableOnly
)

var policyNames = [...]string{"strict", "reachable-only"}

// String returns "strict" or "reachable-only".
func (p CenterPolicy) String() string {
	if int(p) >= len(policyNames) {
		return fmt.Sprintf("policy(%d)", uint8(p))
	}

	return policyNames[p]
}

// ParseCenterPolicy accepts the names produced by String.
func ParseCenterPolicy(s string) (CenterPolicy, error) {
	for i, name := range policyNames {
		if s == name {
			return CenterPolicy(i), nil
		}
	}

	return 0, fmt.Errorf("floyd: unknown center policy %q", s)
}

// Options configures Solve.
type Options struct {
	Center CenterPolicy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the strict center policy.
func DefaultOptions() Options {
	return Options{Center: CenterStrict}
}

// WithCenterPolicy sets the center policy.
// Panics on an unknown policy value (programmer error).
func WithCenterPolicy(p CenterPolicy) Option {
	if int(p) >= len(policyNames) {
		panic("floyd: WithCenterPolicy: unknown policy")
	}

	return func(o *Options) { o.Center = p }
}
