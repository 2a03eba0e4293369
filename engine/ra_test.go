package engine

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"ra/game"
)

func TestNewRaGame(t *testing.T) {
	t.Run("fixed play order is kept", func(t *testing.T) {
		g, err := NewRaGame([]string{"P1", "P2", "P3"}, WithFixedPlayOrder())
		require.NoError(t, err)
		require.Equal(t, []string{"P1", "P2", "P3"}, g.PlayerNames())
	})

	t.Run("a full draw order is generated when not given", func(t *testing.T) {
		g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
		require.NoError(t, err)
		require.Len(t, g.Log().DrawOrder, game.StartingNumTiles)
		require.Equal(t, game.StartingNumTiles, g.State().Bag().Remaining())
	})

	t.Run("invalid player counts are rejected", func(t *testing.T) {
		_, err := NewRaGame([]string{"P1"})
		require.Error(t, err)
	})
}

func TestGetActionRetries(t *testing.T) {
	g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
	require.NoError(t, err)

	attempts := 0
	stubborn := func(*game.GameState) (game.Action, error) {
		attempts++
		return game.ActionBid1, nil // never legal at the opening
	}

	_, getErr := g.GetAction(stubborn, g.State().LegalActions())
	require.Error(t, getErr)
	require.Equal(t, maxActionAttempts, attempts, "The provider should get every allowed attempt")
}

func TestGetActionProviderError(t *testing.T) {
	g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
	require.NoError(t, err)

	failing := func(*game.GameState) (game.Action, error) {
		return 0, fmt.Errorf("no action available")
	}
	_, getErr := g.GetAction(failing, g.State().LegalActions())
	require.Error(t, getErr)
}

func TestPlayRunsToCompletion(t *testing.T) {
	var buf bytes.Buffer
	g, err := NewRaGame([]string{"P1", "P2"},
		WithFixedPlayOrder(), WithLogWriter(&buf))
	require.NoError(t, err)

	require.NoError(t, g.Play(context.Background()))
	require.True(t, g.State().GameEnded())
	require.NotEmpty(t, g.Log().Moves)

	parsed, parseErr := ParseMoveLog(&buf)
	require.NoError(t, parseErr)
	require.Equal(t, g.Log(), *parsed, "The streamed log should match the in-memory history")
}

func TestPlayHonorsContext(t *testing.T) {
	g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, g.Play(ctx), context.Canceled)
}

func TestReplayReproducesGame(t *testing.T) {
	g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
	require.NoError(t, err)
	require.NoError(t, g.Play(context.Background()))

	moveLog := g.Log()
	replayed, err := Replay(&moveLog)
	require.NoError(t, err)

	require.True(t, g.State().Equal(replayed.State()),
		"Replaying the log should land on the same final state")
	require.Equal(t, g.Log(), replayed.Log())
}

func TestReplayViaLogRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	g, err := NewRaGame([]string{"P1", "P2"},
		WithFixedPlayOrder(), WithLogWriter(&buf))
	require.NoError(t, err)
	require.NoError(t, g.Play(context.Background()))

	replayed, err := LoadLog(&buf)
	require.NoError(t, err)
	require.True(t, g.State().Equal(replayed.State()))
}

func TestReplayDetectsDrawMismatch(t *testing.T) {
	moveLog := &MoveLog{
		PlayerNames: []string{"P1", "P2"},
		DrawOrder:   []game.Tile{game.TileGold},
		Moves:       []Move{{Action: game.ActionDraw, Drawn: game.TileNile}},
	}

	_, err := Replay(moveLog)
	require.Error(t, err, "A logged draw that disagrees with the bag is corrupt")
}

func TestSerialize(t *testing.T) {
	g, err := NewRaGame([]string{"P1", "P2"}, WithFixedPlayOrder())
	require.NoError(t, err)

	s := g.Serialize()
	require.Equal(t, []string{"P1", "P2"}, s.PlayerNames)
	require.Equal(t, 2, s.GameState.NumPlayers)
}
