package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/network"
)

// chain builds 0-1-2 with distinct attributes on every element.
func chain(t *testing.T) *network.Network {
	t.Helper()
	nw, err := network.NewBuilder(3).
		SetNode(0, 1.5, 0.96).
		SetNode(1, 0.7, 0.98).
		SetNode(2, 1.9, 0.95).
		AddEdge(0, 1, 200, 4, 0.99).
		AddEdge(1, 2, 800, 9, 0.97).
		Build()
	require.NoError(t, err)
	return nw
}

func TestPathMetrics_Degenerate(t *testing.T) {
	nw := chain(t)
	for _, p := range []network.Path{nil, {}, {0}, {0, 2}, {0, 5}} {
		m := nw.PathMetrics(p)
		assert.True(t, m.Degenerate(), "path %v", p)
		assert.True(t, math.IsInf(m.Delay, 1))
		assert.True(t, math.IsInf(m.ReliabilityCost, 1))
		assert.True(t, math.IsInf(m.ResourceCost, 1))
	}
}

// TestPathMetrics_TwoNodes: endpoints never contribute node attributes.
func TestPathMetrics_TwoNodes(t *testing.T) {
	nw := chain(t)
	m := nw.PathMetrics(network.Path{0, 1})
	assert.InDelta(t, 4.0, m.Delay, 1e-12)
	assert.InDelta(t, -math.Log(0.99), m.ReliabilityCost, 1e-12)
	assert.InDelta(t, 5.0, m.ResourceCost, 1e-12)

	back := nw.PathMetrics(network.Path{1, 0})
	assert.Equal(t, m, back)
}

// TestPathMetrics_ThreeNodes: only the middle node contributes.
func TestPathMetrics_ThreeNodes(t *testing.T) {
	nw := chain(t)
	m := nw.PathMetrics(network.Path{0, 1, 2})
	assert.InDelta(t, 4+0.7+9, m.Delay, 1e-12)
	assert.InDelta(t, -math.Log(0.99)-math.Log(0.98)-math.Log(0.97), m.ReliabilityCost, 1e-12)
	assert.InDelta(t, 5+1.25, m.ResourceCost, 1e-12)
	assert.InDelta(t, 0.99*0.98*0.97, m.Reliability(), 1e-12)
}

func TestWeightedCost(t *testing.T) {
	nw := chain(t)
	p := network.Path{0, 1, 2}
	m := nw.PathMetrics(p)

	w := network.Weights{Delay: 0.5, Reliability: 0.25, Resource: 0.25}
	want := 0.5*m.Delay + 0.25*m.ReliabilityCost + 0.25*m.ResourceCost
	assert.InDelta(t, want, nw.WeightedCost(p, w), 1e-12)

	// Pure: repeated evaluation is identical.
	assert.Equal(t, nw.WeightedCost(p, w), nw.WeightedCost(p, w))

	// Degenerate paths cost +Inf even with zero weights.
	zero := network.Weights{Delay: 1}
	assert.True(t, math.IsInf(nw.WeightedCost(network.Path{0}, zero), 1))
	assert.False(t, math.IsNaN(nw.WeightedCost(network.Path{0}, network.Weights{})))
}

func TestEvaluate(t *testing.T) {
	nw := chain(t)
	w := network.Weights{Delay: 1}
	r := nw.Evaluate(network.Path{0, 1, 2}, w)
	require.True(t, r.Found())
	assert.InDelta(t, 13.7, r.Cost, 1e-12)

	none := nw.Evaluate(network.Path{0}, w)
	assert.False(t, none.Found())
	assert.Nil(t, none.Path)
	assert.True(t, math.IsInf(none.Cost, 1))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, network.Weights{Delay: 0.33, Reliability: 0.33, Resource: 0.34}.Validate())
	assert.NoError(t, network.Weights{Delay: 1}.Validate())
	assert.NoError(t, network.Weights{Delay: 0.5, Reliability: 0.505}.Validate())

	for _, w := range []network.Weights{
		{Delay: -0.1, Reliability: 0.6, Resource: 0.5},
		{Delay: math.NaN(), Reliability: 1},
		{Delay: math.Inf(1)},
		{Delay: 0.5, Reliability: 0.2},
		{},
	} {
		assert.ErrorIs(t, w.Validate(), network.ErrInvalidWeights, "%v", w)
	}
}

func TestPath_Helpers(t *testing.T) {
	p := network.Path{3, 1, 4}
	assert.True(t, p.IsSimple())
	assert.False(t, network.Path{3, 1, 3}.IsSimple())
	assert.Equal(t, 1, p.Index(1))
	assert.Equal(t, -1, p.Index(9))
	assert.Equal(t, "3,1,4", p.Key())
	assert.Equal(t, "3 → 1 → 4", p.String())
	assert.Equal(t, "<none>", network.Path(nil).String())

	c := p.Clone()
	c[0] = 9
	assert.Equal(t, 3, p[0])
	assert.True(t, p.Equal(network.Path{3, 1, 4}))
	assert.False(t, p.Equal(c))
	assert.Nil(t, network.Path(nil).Clone())
}
