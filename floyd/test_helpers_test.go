package floyd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weatherpath/network"
)

var inf = math.Inf(1)

// road is one directed edge with all four regime weights.
type road struct {
	from, to string
	w        network.Weights
}

// same builds Weights with one value for every regime.
func same(v float64) network.Weights {
	return network.Weights{Normal: v, Rain: v, Snow: v, Storm: v}
}

// MustNetwork registers names first (fixing their indices) and then roads.
func MustNetwork(t testing.TB, names []string, roads ...road) *network.Network {
	t.Helper()
	g := network.New()
	for _, name := range names {
		_, err := g.Index(name)
		require.NoError(t, err)
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r.from, r.to, r.w))
	}

	return g
}

// paperNetwork is the five-edge a/b/c/d example. Storm weights differ so the
// storm regime prefers a→b→d.
func paperNetwork(t testing.TB) *network.Network {
	return MustNetwork(t, []string{"a", "b", "c", "d"},
		road{"a", "b", network.Weights{Normal: 5, Rain: 5, Snow: 5, Storm: 5}},
		road{"a", "c", network.Weights{Normal: 3, Rain: 3, Snow: 3, Storm: 30}},
		road{"b", "c", network.Weights{Normal: 2, Rain: 2, Snow: 2, Storm: 2}},
		road{"b", "d", network.Weights{Normal: 6, Rain: 6, Snow: 6, Storm: 20}},
		road{"c", "d", network.Weights{Normal: 7, Rain: 7, Snow: 7, Storm: 40}},
	)
}

// southAmerica is the eleven-edge sample with its published weights.
func southAmerica(t testing.TB) *network.Network {
	w := func(n, r, s, st float64) network.Weights {
		return network.Weights{Normal: n, Rain: r, Snow: s, Storm: st}
	}

	return MustNetwork(t, nil,
		road{"BuenosAires", "SaoPaulo", w(10, 15, 20, 50)},
		road{"BuenosAires", "Lima", w(15, 20, 30, 70)},
		road{"Lima", "Quito", w(10, 12, 15, 20)},
		road{"SaoPaulo", "Lima", w(8, 10, 12, 25)},
		road{"SaoPaulo", "Quito", w(20, 25, 30, 60)},
		road{"Quito", "Bogota", w(5, 8, 10, 15)},
		road{"Lima", "Bogota", w(12, 15, 18, 35)},
		road{"Bogota", "Caracas", w(8, 10, 12, 20)},
		road{"SaoPaulo", "Caracas", w(25, 30, 35, 70)},
		road{"BuenosAires", "Montevideo", w(3, 4, 5, 8)},
		road{"Montevideo", "SaoPaulo", w(12, 15, 18, 30)},
	)
}

// randomNetwork adds roughly density·n² random roads with weights in [1, 20).
func randomNetwork(t testing.TB, rng *rand.Rand, n int, density float64) *network.Network {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	g := MustNetwork(t, names)
	for _, from := range names {
		for _, to := range names {
			if from != to && rng.Float64() < density {
				require.NoError(t, g.AddEdge(from, to, network.Weights{
					Normal: 1 + math.Floor(rng.Float64()*19),
					Rain:   1 + math.Floor(rng.Float64()*19),
					Snow:   1 + math.Floor(rng.Float64()*19),
					Storm:  1 + math.Floor(rng.Float64()*19),
				}))
			}
		}
	}

	return g
}
