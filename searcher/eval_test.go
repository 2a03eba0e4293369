package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ra/game"
)

func TestEvaluateNoAuctionTiles(t *testing.T) {
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, nil)
	require.NoError(t, err)

	valuations := EvaluateNoAuctionTiles(g)
	// both players: 10 starting points, the pharaoh tie nets +3, no
	// civilizations is -5
	require.Equal(t, 8.0, valuations["P1"])
	require.Equal(t, 8.0, valuations["P2"])
}

func TestStateScore(t *testing.T) {
	valuations := map[string]float64{"P1": 12, "P2": 7, "P3": 9}

	require.Equal(t, 3.0, StateScore("P1", valuations), "Leader scores the gap to the runner-up")
	require.Equal(t, -5.0, StateScore("P2", valuations), "Trailers score the gap to the leader")
	require.Equal(t, -3.0, StateScore("P3", valuations))
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.CacheHit()
	c.CacheMiss()
	c.CacheMiss()
	c.TerminalNode(3)
	c.HeuristicNode(1)
	c.IntermediateNode(1)
	c.IntermediateNode(2)
	c.ObserveDepth(4)
	c.ObserveDepth(2)

	m := c.Metrics()
	require.Equal(t, int64(1), m.CacheHits)
	require.Equal(t, int64(2), m.CacheMisses)
	require.Equal(t, int64(4), m.TotalNodes())
	require.Equal(t, int64(4), m.MaxDepth, "Depth observations keep the maximum")
	require.Equal(t, [game.NumRounds]int64{2, 1, 1}, m.NodesPerRound)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.CacheHit()
	c.TerminalNode(1)
	c.ObserveDepth(9)

	require.Equal(t, SearchMetric{}, c.Metrics(), "The dummy collector records nothing")
}
