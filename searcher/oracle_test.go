package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ra/game"
)

func TestOracleSearchFullPile(t *testing.T) {
	g := fullPileState(t)
	o := NewOracle()

	action, valuations, metrics, err := o.Search(g)
	require.NoError(t, err)
	require.Equal(t, game.ActionAuction, action)
	require.Contains(t, valuations, "P1")
	require.Contains(t, valuations, "P2")

	require.Greater(t, metrics.TotalNodes(), int64(0))
	require.Greater(t, metrics.CacheMisses, int64(0))
	require.GreaterOrEqual(t, metrics.MaxDepth, int64(1))
	require.Greater(t, metrics.NodesPerRound[0], int64(0), "All nodes here belong to round one")
}

func TestOracleSearchBidding(t *testing.T) {
	g := biddingState(t)
	o := NewOracle()

	action, valuations, _, err := o.Search(g)
	require.NoError(t, err)
	// as with the chance search, all bidding lines hand seat 0 the gold,
	// so the tie keeps the lowest bid
	require.Equal(t, game.ActionBid1, action)
	require.Greater(t, valuations["P1"], valuations["P2"])
}

func TestOracleSearchPrefersDrawingTowardGold(t *testing.T) {
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, []game.Tile{
		game.TileMonFortress, game.TileMonPyramid, game.TileMonStepPyramid,
		game.TileNile, game.TileNile, game.TileNile,
		game.TileMonObelisk, game.TileGold,
	})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err := g.Execute(game.ActionDraw, nil, game.NoTile)
		require.NoError(t, err)
	}
	prev, err := g.Bag().SetNextTile(game.TileGold)
	require.NoError(t, err)
	require.Equal(t, game.TileMonObelisk, prev)

	action, valuations, _, err := NewOracle().Search(g)
	require.NoError(t, err)
	// the pile is monuments and dry niles, worth nothing this round;
	// the next tile is a gold and seat 0's 9 sun wins any auction it
	// contests, so drawing strictly beats auctioning now
	require.Equal(t, game.ActionDraw, action)
	require.Equal(t, 11.0, valuations["P1"], "Gold winner values three ahead of the baseline")
	require.Equal(t, 8.0, valuations["P2"])
}

func TestOracleSearchReturnsLegalAction(t *testing.T) {
	g := fullPileState(t)
	o := NewOracle(WithAuctionBudget(2))

	action, _, _, err := o.Search(g)
	require.NoError(t, err)
	require.Contains(t, g.LegalActions(), action)
}

func TestOracleMemoization(t *testing.T) {
	g := biddingState(t)
	o := NewOracle()
	c := NewCollector()
	memo := make(map[game.StateHash]memoEntry)

	action1, valuations1, _, _ := o.searchInternal(g, o.auctionBudget, memo, c, 0)
	hitsAfterFirst := c.Metrics().CacheHits
	require.NotEmpty(t, memo, "The first search should populate the memo")

	// a structurally equal state, not the same instance: the memo is
	// keyed by the state hash
	action2, valuations2, _, _ := o.searchInternal(g.Copy(), o.auctionBudget, memo, c, 0)
	require.Equal(t, hitsAfterFirst+1, c.Metrics().CacheHits,
		"Repeating the search should answer from the memo")
	require.Equal(t, action1, action2)
	require.Equal(t, valuations1, valuations2,
		"Integer valuations should survive the packed cache")
}

func TestOracleSearchDoesNotMutateState(t *testing.T) {
	g := biddingState(t)
	before := g.Hash()

	_, _, _, err := NewOracle().Search(g)
	require.NoError(t, err)
	require.Equal(t, before, g.Hash())
}

func TestOracleSearchEndedGame(t *testing.T) {
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, game.NewTileBag().DrawOrder())
	require.NoError(t, err)
	playOut(t, g)

	_, _, _, searchErr := NewOracle().Search(g)
	require.Error(t, searchErr)
}

func TestOracleAgentReturnsLegalAction(t *testing.T) {
	g := fullPileState(t)

	action, err := OracleAgent(DefaultAuctionBudget)(g)
	require.NoError(t, err)
	require.Contains(t, g.LegalActions(), action)
}
