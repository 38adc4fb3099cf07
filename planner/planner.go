// Package planner is the session façade over one road network: it keeps the
// active weather regime, caches one shortest-path solution per regime, and
// re-solves transparently whenever the network has changed since the cached
// solution was computed.
//
// A Planner is not safe for concurrent use; drivers serialize access.
package planner

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/network"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilNetwork indicates New received a nil network.
	ErrNilNetwork = errors.New("planner: network is nil")

	// ErrUnknownCity indicates a query named a location the network does not hold.
	ErrUnknownCity = errors.New("planner: unknown city")
)

// DefaultCacheSize holds one solution per regime.
const DefaultCacheSize = network.NumRegimes

// Planner owns a network and its cached solutions.
type Planner struct {
	g      *network.Network
	cache  *lru.Cache // network.Regime → *floyd.Solution
	size   int
	log    *zap.Logger
	policy floyd.CenterPolicy
	active network.Regime
	solves int
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("planner: WithLogger: nil logger")
	}

	return func(p *Planner) { p.log = l }
}

// WithCacheSize bounds the number of cached solutions. Panics on n <= 0.
func WithCacheSize(n int) Option {
	if n <= 0 {
		panic("planner: WithCacheSize: size must be > 0")
	}

	return func(p *Planner) { p.size = n }
}

// WithCenterPolicy forwards the center policy to every solve.
// Panics on an unknown policy.
func WithCenterPolicy(c floyd.CenterPolicy) Option {
	_ = floyd.WithCenterPolicy(c)

	return func(p *Planner) { p.policy = c }
}

// WithRegime sets the initial active regime. Panics on an invalid regime.
func WithRegime(r network.Regime) Option {
	if !r.Valid() {
		panic("planner: WithRegime: invalid regime")
	}

	return func(p *Planner) { p.active = r }
}

// New wraps g. The network stays owned by the planner afterwards: mutate it
// through the planner so changes are logged.
func New(g *network.Network, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilNetwork
	}
	p := &Planner{
		g:      g,
		size:   DefaultCacheSize,
		log:    zap.NewNop(),
		policy: floyd.CenterStrict,
		active: network.Normal,
	}
	for _, opt := range opts {
		opt(p)
	}
	cache, err := lru.New(p.size)
	if err != nil {
		return nil, fmt.Errorf("planner: cache: %w", err)
	}
	p.cache = cache

	return p, nil
}

// Network returns the underlying store for read access.
func (p *Planner) Network() *network.Network { return p.g }

// Active returns the regime used by the query helpers.
func (p *Planner) Active() network.Regime { return p.active }

// SetActive switches the active regime.
func (p *Planner) SetActive(r network.Regime) error {
	if !r.Valid() {
		return fmt.Errorf("planner: %s: %w", r, network.ErrInvalidRegime)
	}
	if r != p.active {
		p.log.Info("regime switched", zap.Stringer("from", p.active), zap.Stringer("to", r))
	}
	p.active = r

	return nil
}

// Policy returns the center policy applied to every solve.
func (p *Planner) Policy() floyd.CenterPolicy { return p.policy }

// Solves returns how many times the planner has run the solver.
func (p *Planner) Solves() int { return p.solves }

// Solution returns an up-to-date solution for r, solving only when the cached
// one is missing or stale.
func (p *Planner) Solution(r network.Regime) (*floyd.Solution, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("planner: %s: %w", r, network.ErrInvalidRegime)
	}
	if v, ok := p.cache.Get(r); ok {
		sol := v.(*floyd.Solution)
		if !sol.Stale(p.g.Revision()) {
			return sol, nil
		}
	}

	sol, err := floyd.Solve(p.g, r, floyd.WithCenterPolicy(p.policy))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.solves++
	p.cache.Add(r, sol)
	p.log.Debug("solved",
		zap.Stringer("regime", r),
		zap.Int("cities", sol.Len()),
		zap.Uint64("revision", sol.Revision()))

	return sol, nil
}
