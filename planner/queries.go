package planner

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/network"
)

// Route is the answer to a single origin/destination query.
type Route struct {
	From          string
	To            string
	Regime        network.Regime
	Reachable     bool
	Distance      float64  // +Inf when unreachable
	Path          []string // nil when unreachable
	Intermediates []string // interior of Path
}

// Center is the answer to a center query.
type Center struct {
	Regime       network.Regime
	Policy       floyd.CenterPolicy
	City         string
	Eccentricity float64
	Found        bool
}

// Route answers from → to under the active regime.
func (p *Planner) Route(from, to string) (Route, error) {
	return p.RouteIn(p.active, from, to)
}

// RouteIn answers from → to under r.
func (p *Planner) RouteIn(r network.Regime, from, to string) (Route, error) {
	sol, err := p.Solution(r)
	if err != nil {
		return Route{}, err
	}
	if err = requireCities(sol, from, to); err != nil {
		return Route{}, err
	}
	d := sol.Distance(from, to)

	return Route{
		From:          from,
		To:            to,
		Regime:        r,
		Reachable:     !math.IsInf(d, 1),
		Distance:      d,
		Path:          sol.Path(from, to),
		Intermediates: sol.Intermediates(from, to),
	}, nil
}

// Center answers the center query under the active regime.
func (p *Planner) Center() (Center, error) {
	return p.CenterIn(p.active)
}

// CenterIn answers the center query under r.
func (p *Planner) CenterIn(r network.Regime) (Center, error) {
	sol, err := p.Solution(r)
	if err != nil {
		return Center{}, err
	}
	c := Center{Regime: r, Policy: sol.Policy(), Eccentricity: math.Inf(1)}
	if c.City, c.Found = sol.Center(); c.Found {
		c.Eccentricity, _ = sol.Eccentricity(c.City)
	}

	return c, nil
}

// DistancesFrom lists the reachable peers of city under the active regime.
func (p *Planner) DistancesFrom(city string) (map[string]float64, error) {
	return p.DistancesFromIn(p.active, city)
}

// DistancesFromIn lists the reachable peers of city under r.
func (p *Planner) DistancesFromIn(r network.Regime, city string) (map[string]float64, error) {
	sol, err := p.Solution(r)
	if err != nil {
		return nil, err
	}
	if err = requireCities(sol, city); err != nil {
		return nil, err
	}

	return sol.DistancesFrom(city), nil
}

// AddEdge opens or overwrites the road from → to.
func (p *Planner) AddEdge(from, to string, w network.Weights) error {
	if err := p.g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	p.log.Info("road connected",
		zap.String("from", from), zap.String("to", to),
		zap.Float64("normal", w.Normal), zap.Float64("rain", w.Rain),
		zap.Float64("snow", w.Snow), zap.Float64("storm", w.Storm))

	return nil
}

// RemoveEdge closes the road from → to in every regime. Unknown cities are
// reported as ErrUnknownCity so drivers can tell the user.
func (p *Planner) RemoveEdge(from, to string) error {
	if err := p.requireKnown(from, to); err != nil {
		return err
	}
	p.g.RemoveEdge(from, to)
	p.log.Info("road interrupted", zap.String("from", from), zap.String("to", to))

	return nil
}

// UpdateRegime sets one regime weight of from → to.
func (p *Planner) UpdateRegime(from, to string, r network.Regime, w float64) error {
	if err := p.requireKnown(from, to); err != nil {
		return err
	}
	if err := p.g.UpdateRegime(from, to, r, w); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	p.log.Info("road weather updated",
		zap.String("from", from), zap.String("to", to),
		zap.Stringer("regime", r), zap.Float64("weight", w))

	return nil
}

func (p *Planner) requireKnown(names ...string) error {
	for _, name := range names {
		if _, ok := p.g.Lookup(name); !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownCity)
		}
	}

	return nil
}

func requireCities(sol *floyd.Solution, names ...string) error {
	for _, name := range names {
		if !sol.Has(name) {
			return fmt.Errorf("%q: %w", name, ErrUnknownCity)
		}
	}

	return nil
}
