package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/weatherpath/network"
)

var inf = math.Inf(1)

type NetworkSuite struct {
	suite.Suite
	g *network.Network
}

func (s *NetworkSuite) SetupTest() {
	// Small capacity so growth is exercised by ordinary tests
	s.g = network.New(network.WithCapacity(2))
}

func (s *NetworkSuite) TestIndexAssignsInsertionOrder() {
	require := require.New(s.T())

	for want, name := range []string{"Lima", "Quito", "Bogota"} {
		i, err := s.g.Index(name)
		require.NoError(err)
		require.Equal(want, i)
	}
	// Existing name keeps its index
	i, err := s.g.Index("Quito")
	require.NoError(err)
	require.Equal(1, i)
	require.Equal([]string{"Lima", "Quito", "Bogota"}, s.g.Cities())

	name, ok := s.g.Name(2)
	require.True(ok)
	require.Equal("Bogota", name)
	_, ok = s.g.Name(3)
	require.False(ok)

	// Names are case-sensitive
	_, ok = s.g.Lookup("lima")
	require.False(ok)
}

func (s *NetworkSuite) TestIndexRejectsInvalidNames() {
	for _, bad := range []string{"", "New York", "tab\there", "bell\a"} {
		_, err := s.g.Index(bad)
		require.ErrorIs(s.T(), err, network.ErrInvalidName, "name %q", bad)
	}
	require.Zero(s.T(), s.g.Len())
}

func (s *NetworkSuite) TestAddEdgeStoresAllRegimes() {
	require := require.New(s.T())

	w := network.Weights{Normal: 10, Rain: 15, Snow: 20, Storm: 50}
	require.NoError(s.g.AddEdge("A", "B", w))
	require.Equal(2, s.g.Len())

	for _, r := range network.Regimes() {
		require.Equal(w.At(r), s.g.Weight("A", "B", r), "regime %s", r)
		require.True(s.g.HasEdge("A", "B", r))
		require.False(s.g.HasEdge("B", "A", r))
		require.Zero(s.g.Weight("A", "A", r))
	}

	// Re-insertion overwrites
	w2 := network.Weights{Normal: 1, Rain: 2, Snow: 3, Storm: 4}
	require.NoError(s.g.AddEdge("A", "B", w2))
	got, ok := s.g.Weights("A", "B")
	require.True(ok)
	require.Equal(w2, got)
	require.Len(s.g.Edges(), 1)
}

func (s *NetworkSuite) TestAddEdgeValidatesBeforeWriting() {
	require := require.New(s.T())

	err := s.g.AddEdge("A", "B", network.Weights{Normal: 1, Rain: -1, Snow: 1, Storm: 1})
	require.ErrorIs(err, network.ErrInvalidWeight)
	err = s.g.AddEdge("A", "B", network.Weights{Normal: math.NaN()})
	require.ErrorIs(err, network.ErrInvalidWeight)
	err = s.g.AddEdge("A", "B", network.Weights{Normal: inf})
	require.ErrorIs(err, network.ErrInvalidWeight)
	err = s.g.AddEdge("A", "A", network.Weights{})
	require.ErrorIs(err, network.ErrSelfLoop)
	err = s.g.AddEdge("A", "", network.Weights{})
	require.ErrorIs(err, network.ErrInvalidName)

	require.Zero(s.g.Len(), "rejected edges must not register names")
	require.Zero(s.g.Revision())
}

func (s *NetworkSuite) TestRemoveEdge() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge("A", "B", network.Weights{Normal: 1, Rain: 2, Snow: 3, Storm: 4}))
	s.g.RemoveEdge("A", "B")
	for _, r := range network.Regimes() {
		require.Equal(inf, s.g.Weight("A", "B", r))
	}
	require.Empty(s.g.Edges())
	// Names stay registered
	require.Equal(2, s.g.Len())

	rev := s.g.Revision()
	s.g.RemoveEdge("A", "Nowhere")
	s.g.RemoveEdge("Nowhere", "A")
	require.Equal(rev, s.g.Revision())
}

func (s *NetworkSuite) TestUpdateRegime() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge("A", "B", network.Weights{Normal: 1, Rain: 2, Snow: 3, Storm: 4}))
	require.NoError(s.g.UpdateRegime("A", "B", network.Snow, 30))
	got, _ := s.g.Weights("A", "B")
	require.Equal(network.Weights{Normal: 1, Rain: 2, Snow: 30, Storm: 4}, got)

	// Updating a missing edge creates a single-regime edge
	require.NoError(s.g.UpdateRegime("B", "A", network.Storm, 9))
	require.True(s.g.HasEdge("B", "A", network.Storm))
	require.False(s.g.HasEdge("B", "A", network.Normal))

	rev := s.g.Revision()
	require.NoError(s.g.UpdateRegime("A", "Nowhere", network.Rain, 5))
	require.NoError(s.g.UpdateRegime("A", "A", network.Rain, 5))
	require.Equal(rev, s.g.Revision())
	require.Zero(s.g.Weight("A", "A", network.Rain))

	require.ErrorIs(s.g.UpdateRegime("A", "B", network.Regime(7), 5), network.ErrInvalidRegime)
	require.ErrorIs(s.g.UpdateRegime("A", "B", network.Rain, -5), network.ErrInvalidWeight)
}

func (s *NetworkSuite) TestGrowthPreservesIndicesAndWeights() {
	require := require.New(s.T())

	names := []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6"}
	for i := 0; i+1 < len(names); i++ {
		require.NoError(s.g.AddEdge(names[i], names[i+1],
			network.Weights{Normal: float64(i + 1), Rain: 1, Snow: 1, Storm: 1}))
	}
	require.GreaterOrEqual(s.g.Capacity(), len(names))
	for i, name := range names {
		idx, ok := s.g.Lookup(name)
		require.True(ok)
		require.Equal(i, idx)
	}
	for i := 0; i+1 < len(names); i++ {
		require.Equal(float64(i+1), s.g.Weight(names[i], names[i+1], network.Normal))
	}

	adj, err := s.g.Adjacency(network.Normal)
	require.NoError(err)
	require.Equal(len(names), adj.Rows())
	for i := range names {
		for j := range names {
			v, err := adj.At(i, j)
			require.NoError(err)
			switch {
			case i == j:
				require.Zero(v)
			case j == i+1:
				require.Equal(float64(i+1), v)
			default:
				require.Equal(inf, v, "(%d,%d)", i, j)
			}
		}
	}
}

func (s *NetworkSuite) TestAdjacencyRejectsInvalidRegime() {
	_, err := s.g.Adjacency(network.Regime(4))
	require.ErrorIs(s.T(), err, network.ErrInvalidRegime)

	adj, err := s.g.Adjacency(network.Rain)
	require.NoError(s.T(), err)
	require.Zero(s.T(), adj.Rows())
}

func (s *NetworkSuite) TestRevisionIsMonotonic() {
	require := require.New(s.T())

	r0 := s.g.Revision()
	require.NoError(s.g.AddEdge("A", "B", network.Weights{Normal: 1, Rain: 1, Snow: 1, Storm: 1}))
	r1 := s.g.Revision()
	require.Greater(r1, r0)
	require.NoError(s.g.UpdateRegime("A", "B", network.Rain, 2))
	r2 := s.g.Revision()
	require.Greater(r2, r1)
	s.g.RemoveEdge("A", "B")
	require.Greater(s.g.Revision(), r2)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestWithCapacityPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { network.WithCapacity(0) })
}
