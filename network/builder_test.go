package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netpath/network"
)

type BuilderSuite struct {
	suite.Suite
	nw *network.Network
}

// SetupTest builds a triangle 0-1-2 with a pendant node 3 hanging off 2.
func (s *BuilderSuite) SetupTest() {
	nw, err := network.NewBuilder(4).
		SetNode(1, 1.0, 0.98).
		AddEdge(0, 1, 500, 5, 0.99).
		AddEdge(2, 1, 250, 7, 0.97).
		AddEdge(0, 2, 1000, 3, 0.999).
		AddEdge(3, 2, 100, 15, 0.95).
		Build()
	s.Require().NoError(err)
	s.nw = nw
}

func (s *BuilderSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(4, s.nw.NumNodes())
	require.Equal(4, s.nw.NumEdges())
	require.True(s.nw.HasNode(3))
	require.False(s.nw.HasNode(4))
	require.False(s.nw.HasNode(-1))
}

func (s *BuilderSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	require.Equal([]int{1, 2}, s.nw.Neighbors(0))
	require.Equal([]int{0, 1, 3}, s.nw.Neighbors(2))
	require.Equal([]int{2}, s.nw.Neighbors(3))
	require.Nil(s.nw.Neighbors(9))
	require.Equal(3, s.nw.Degree(2))

	for u := 0; u < s.nw.NumNodes(); u++ {
		for i, v := range s.nw.Neighbors(u) {
			e, ok := s.nw.EdgeByID(s.nw.NeighborEdges(u)[i])
			require.True(ok)
			require.Equal(v, e.Other(u))
		}
	}
}

func (s *BuilderSuite) TestEdgeSymmetricAndDerived() {
	require := require.New(s.T())
	a, ok := s.nw.Edge(1, 2)
	require.True(ok)
	b, ok := s.nw.Edge(2, 1)
	require.True(ok)
	require.Equal(a, b)
	require.Equal(1, a.U)
	require.Equal(2, a.V)
	require.InDelta(4.0, a.ResourceCost, 1e-12)
	require.InDelta(-math.Log(0.97), a.ReliabilityCost, 1e-12)

	_, ok = s.nw.Edge(0, 3)
	require.False(ok)
}

func (s *BuilderSuite) TestNodeDefaults() {
	require := require.New(s.T())
	n0, err := s.nw.Node(0)
	require.NoError(err)
	require.Zero(n0.ProcessingDelay)
	require.Zero(n0.ReliabilityCost)

	n1, err := s.nw.Node(1)
	require.NoError(err)
	require.InDelta(-math.Log(0.98), n1.ReliabilityCost, 1e-12)

	_, err = s.nw.Node(7)
	require.ErrorIs(err, network.ErrNodeNotFound)
}

func (s *BuilderSuite) TestCopiesAreIndependent() {
	edges := s.nw.Edges()
	edges[0].Delay = 1e9
	e, _ := s.nw.EdgeByID(0)
	s.Require().NotEqual(1e9, e.Delay)

	nodes := s.nw.Nodes()
	nodes[0].ProcessingDelay = 1e9
	n, _ := s.nw.Node(0)
	s.Require().Zero(n.ProcessingDelay)
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

// TestBuilder_Errors covers each rejection path.
func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name string
		b    *network.Builder
		want error
	}{
		{"zero nodes", network.NewBuilder(0), network.ErrTooFewNodes},
		{"unknown endpoint", network.NewBuilder(2).AddEdge(0, 2, 100, 1, 0.99), network.ErrNodeNotFound},
		{"self loop", network.NewBuilder(2).AddEdge(1, 1, 100, 1, 0.99), network.ErrSelfLoop},
		{"duplicate", network.NewBuilder(2).AddEdge(0, 1, 100, 1, 0.99).AddEdge(1, 0, 200, 2, 0.99), network.ErrDuplicateEdge},
		{"zero bandwidth", network.NewBuilder(2).AddEdge(0, 1, 0, 1, 0.99), network.ErrInvalidAttribute},
		{"negative delay", network.NewBuilder(2).AddEdge(0, 1, 100, -1, 0.99), network.ErrInvalidAttribute},
		{"zero reliability", network.NewBuilder(2).AddEdge(0, 1, 100, 1, 0), network.ErrInvalidAttribute},
		{"node reliability above one", network.NewBuilder(2).SetNode(0, 1, 1.5), network.ErrInvalidAttribute},
		{"unknown node", network.NewBuilder(2).SetNode(3, 1, 0.99), network.ErrNodeNotFound},
		{"sticky", network.NewBuilder(2).AddEdge(0, 0, 100, 1, 0.99).AddEdge(0, 1, 100, 1, 0.99), network.ErrSelfLoop},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.b.Build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCheckQuery(t *testing.T) {
	nw, err := network.NewBuilder(3).AddEdge(0, 1, 100, 3, 0.99).Build()
	require.NoError(t, err)

	require.NoError(t, nw.CheckQuery(0, 2))
	require.ErrorIs(t, nw.CheckQuery(-1, 2), network.ErrNodeNotFound)
	require.ErrorIs(t, nw.CheckQuery(0, 3), network.ErrNodeNotFound)
	require.ErrorIs(t, nw.CheckQuery(1, 1), network.ErrSameEndpoints)
}
