package floyd_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weatherpath/floyd"
	"github.com/katalvlaran/weatherpath/network"
)

func TestCenterSample(t *testing.T) {
	t.Parallel()
	g := southAmerica(t)

	strict, err := floyd.Solve(g, network.Normal)
	require.NoError(t, err)
	c, ok := strict.Center()
	require.True(t, ok)
	require.Equal(t, "BuenosAires", c)
	ecc, ok := strict.Eccentricity(c)
	require.True(t, ok)
	require.Equal(t, 35.0, ecc)
	require.Equal(t, []string{"BuenosAires", "SaoPaulo", "Caracas"}, strict.Path("BuenosAires", "Caracas"))

	// Only BuenosAires reaches everyone
	_, ok = strict.Eccentricity("Caracas")
	require.False(t, ok)

	legacy, err := floyd.Solve(g, network.Normal, floyd.WithCenterPolicy(floyd.CenterReachableOnly))
	require.NoError(t, err)
	c, ok = legacy.Center()
	require.True(t, ok)
	require.Equal(t, "Caracas", c)
	ecc, _ = legacy.Eccentricity("Caracas")
	require.Zero(t, ecc)
	require.Equal(t, floyd.CenterReachableOnly, legacy.Policy())
}

func TestCenterTieGoesToLowestIndex(t *testing.T) {
	t.Parallel()

	g := MustNetwork(t, []string{"p", "q"}, road{"p", "q", same(4)}, road{"q", "p", same(4)})
	sol, err := floyd.Solve(g, network.Normal)
	require.NoError(t, err)
	c, ok := sol.Center()
	require.True(t, ok)
	require.Equal(t, "p", c)
}

func TestCenterNoneEligible(t *testing.T) {
	t.Parallel()

	g := MustNetwork(t, []string{"x", "y", "z"}, road{"x", "y", same(5)})
	sol, err := floyd.Solve(g, network.Normal)
	require.NoError(t, err)
	c, ok := sol.Center()
	require.False(t, ok)
	require.Empty(t, c)
}

func TestCenterSingleLocation(t *testing.T) {
	t.Parallel()

	g := MustNetwork(t, []string{"solo"})
	sol, err := floyd.Solve(g, network.Normal)
	require.NoError(t, err)
	c, ok := sol.Center()
	require.True(t, ok)
	require.Equal(t, "solo", c)
}

// The returned center never has a larger eccentricity than any other
// eligible location.
func TestCenterIsMinimal(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 30; round++ {
		g := randomNetwork(t, rng, 6, 0.5)
		for _, p := range []floyd.CenterPolicy{floyd.CenterStrict, floyd.CenterReachableOnly} {
			sol, err := floyd.Solve(g, network.Normal, floyd.WithCenterPolicy(p))
			require.NoError(t, err)
			c, ok := sol.Center()
			if !ok {
				continue
			}
			best, _ := sol.Eccentricity(c)
			for _, v := range sol.Cities() {
				if e, eligible := sol.Eccentricity(v); eligible {
					require.LessOrEqual(t, best, e, "%s vs %s (%s)", c, v, p)
				}
			}
		}
	}
}

func TestCenterPolicyNames(t *testing.T) {
	t.Parallel()

	for _, p := range []floyd.CenterPolicy{floyd.CenterStrict, floyd.CenterReachableOnly} {
		got, err := floyd.ParseCenterPolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := floyd.ParseCenterPolicy("loose")
	require.Error(t, err)
	require.Panics(t, func() { floyd.WithCenterPolicy(floyd.CenterPolicy(5)) })
}
