package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	t.Run("valid construction", func(t *testing.T) {
		g, err := NewGameState([]string{"P1", "P2", "P3"})
		require.NoError(t, err)

		require.Equal(t, 3, g.NumPlayers())
		require.Equal(t, 1, g.CurrentRound())
		require.Equal(t, NumRasPerRound[3], g.NumRasPerRound())
		require.Equal(t, StartingCenterSun, g.CenterSun())
		require.Equal(t, 0, g.CurrentPlayer())
		require.Empty(t, g.AuctionTiles())
		require.False(t, g.AuctionStarted())
		require.False(t, g.GameEnded())
		require.Equal(t, StartingNumTiles, g.Bag().Remaining())
		for i := 0; i < 3; i++ {
			require.True(t, g.IsPlayerActive(i), "All players should start active")
			require.Equal(t, StartingPlayerPoints, g.Player(i).Points())
		}
	})

	t.Run("seat zero gets the first sun set", func(t *testing.T) {
		g, err := NewGameState([]string{"P1", "P2"})
		require.NoError(t, err)
		require.Equal(t, []int{2, 5, 6, 9}, g.Player(0).UsableSun(),
			"The first starting sun set always goes to seat 0")
	})

	t.Run("rejects invalid player counts", func(t *testing.T) {
		_, err := NewGameState([]string{"P1"})
		require.Error(t, err, "One player is too few")

		_, err = NewGameState([]string{"P1", "P2", "P3", "P4", "P5", "P6"})
		require.Error(t, err, "Six players is too many")
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewGameState([]string{"P1", "P1"})
		require.Error(t, err)
	})
}

func TestGameStateFromOrderIsDeterministic(t *testing.T) {
	order := NewTileBag().DrawOrder()
	a, err := NewGameStateFromOrder([]string{"P1", "P2", "P3"}, order)
	require.NoError(t, err)
	b, err := NewGameStateFromOrder([]string{"P1", "P2", "P3"}, order)
	require.NoError(t, err)

	require.True(t, a.Equal(b), "The same names and draw order should produce identical states")
	require.Equal(t, a.Hash(), b.Hash())
	for i := 0; i < 3; i++ {
		require.Equal(t, StartingSunSets[3][i], a.Player(i).UsableSun(),
			"Sun sets should be assigned in canonical order")
	}
}

func TestGameStateCopy(t *testing.T) {
	g, err := NewGameState([]string{"P1", "P2"})
	require.NoError(t, err)
	g.auctionTiles = []Tile{TileGold}

	c := g.Copy()
	require.True(t, g.Equal(c), "A copy should be structurally equal")
	require.Equal(t, g.Hash(), c.Hash())

	c.Bag().Draw()
	c.players[0].AddPoints(5)
	c.auctionTiles = append(c.auctionTiles, TileNile)

	require.Equal(t, StartingNumTiles, g.Bag().Remaining(), "Mutating the copy's bag should not affect the original")
	require.Equal(t, StartingPlayerPoints, g.Player(0).Points(), "Mutating the copy's players should not affect the original")
	require.Len(t, g.AuctionTiles(), 1, "Mutating the copy's pile should not affect the original")
	require.False(t, g.Equal(c))
}

func TestGameStateHashIgnoresPileOrder(t *testing.T) {
	order := NewTileBag().DrawOrder()
	a, err := NewGameStateFromOrder([]string{"P1", "P2"}, order)
	require.NoError(t, err)
	b := a.Copy()

	a.auctionTiles = []Tile{TileGold, TileNile}
	b.auctionTiles = []Tile{TileNile, TileGold}

	require.Equal(t, a.Hash(), b.Hash(), "Auction pile permutations should hash equal")
	require.True(t, a.Equal(b), "Auction pile permutations should compare equal")
}

func TestGameStateSerialize(t *testing.T) {
	g, err := NewGameState([]string{"P1", "P2"})
	require.NoError(t, err)
	g.auctionTiles = []Tile{TileGold}

	s := g.Serialize()
	require.Equal(t, NumRounds, s.TotalRounds)
	require.Equal(t, 2, s.NumPlayers)
	require.Equal(t, 1, s.CurrentRound)
	require.Equal(t, []Tile{TileGold}, s.AuctionTiles)
	require.Len(t, s.PlayerStates, 2)
	require.Equal(t, "P1", s.PlayerStates[0].PlayerName)
	require.False(t, s.GameEnded)
}
