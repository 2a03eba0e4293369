package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ra/game"
)

// drawnOutState builds a game whose bag held exactly the given tiles and
// has been drawn empty, leaving them all on the auction pile.
func drawnOutState(t *testing.T, order []game.Tile) *game.GameState {
	t.Helper()
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, order)
	require.NoError(t, err)
	for range order {
		_, err := g.Execute(game.ActionDraw, nil, game.NoTile)
		require.NoError(t, err)
	}
	return g
}

func fullPileState(t *testing.T) *game.GameState {
	t.Helper()
	return drawnOutState(t, []game.Tile{
		game.TileGold, game.TileNile, game.TilePharaoh, game.TileFlood,
		game.TileGold, game.TileNile, game.TilePharaoh, game.TileNile,
	})
}

// biddingState builds an auction over two gold tiles: seat 0 invoked it
// voluntarily and seat 1 is to bid.
func biddingState(t *testing.T) *game.GameState {
	t.Helper()
	g := drawnOutState(t, []game.Tile{game.TileGold, game.TileGold})
	_, err := g.Execute(game.ActionAuction, nil, game.NoTile)
	require.NoError(t, err)
	require.Equal(t, 1, g.CurrentPlayer())
	return g
}

func TestSearchFullPile(t *testing.T) {
	g := fullPileState(t)

	action, valuations, err := Search(g)
	require.NoError(t, err)
	require.Equal(t, game.ActionAuction, action,
		"Starting the auction is the only legal action on a full pile")
	require.Contains(t, valuations, "P1")
	require.Contains(t, valuations, "P2")
}

func TestSearchBidding(t *testing.T) {
	g := biddingState(t)

	action, valuations, err := Search(g)
	require.NoError(t, err)
	// every bidding line ends with seat 0 taking the gold, either by
	// overbidding or by being forced to bid after a pass, so the lines
	// tie and the lowest-id action is kept
	require.Equal(t, game.ActionBid1, action)
	require.Greater(t, valuations["P1"], valuations["P2"],
		"The auction invoker should come out ahead")
}

func TestSearchDrawExpectation(t *testing.T) {
	// two golds and a Ra left: the draw branches over both tile types,
	// weighted by count
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"},
		[]game.Tile{game.TileGold, game.TileGold, game.TileRa})
	require.NoError(t, err)

	action, valuations, err := Search(g)
	require.NoError(t, err)
	require.Equal(t, game.ActionDraw, action,
		"Drawing toward the gold beats auctioning an empty pile")

	// seat 0 holds the unbeatable 9 sun, so it wins any auction it
	// contests: a revealed gold is worth 11 to it and an immediate Ra
	// cuts the search off at the 8-point baseline, so the draw is
	// worth 2/3*11 + 1/3*8
	require.InDelta(t, 10.0, valuations["P1"], 1e-9)
	require.InDelta(t, 8.0, valuations["P2"], 1e-9)
}

func TestSearchDoesNotMutateState(t *testing.T) {
	g := fullPileState(t)
	before := g.Hash()

	_, _, err := Search(g)
	require.NoError(t, err)
	require.Equal(t, before, g.Hash())
}

func TestSearchEndedGame(t *testing.T) {
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, game.NewTileBag().DrawOrder())
	require.NoError(t, err)
	playOut(t, g)

	_, _, err = Search(g)
	require.Error(t, err)
}

// playOut runs a game to completion with the first-legal baseline.
func playOut(t *testing.T, g *game.GameState) {
	t.Helper()
	for !g.GameEnded() {
		action, err := FirstLegalAgent(g)
		require.NoError(t, err)
		_, err = g.Execute(action, nil, game.NoTile)
		require.NoError(t, err)
	}
}

func TestFirstLegalAgent(t *testing.T) {
	g, err := game.NewGameStateFromOrder([]string{"P1", "P2"}, game.NewTileBag().DrawOrder())
	require.NoError(t, err)

	action, err := FirstLegalAgent(g)
	require.NoError(t, err)
	require.Equal(t, game.ActionDraw, action)
}

func TestSearchAgentReturnsLegalAction(t *testing.T) {
	g := fullPileState(t)

	action, err := SearchAgent()(g)
	require.NoError(t, err)
	require.Contains(t, g.LegalActions(), action)
}
