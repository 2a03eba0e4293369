package searcher

import "ra/game"

// EvaluateNoAuctionTiles returns a valuation of each player's position:
// current points plus the points the player would gain if the round
// ended now. Auction tiles are not factored in, so this should only be
// called when the auction pile is empty.
//
// Valuations are not point predictions; the only guarantee is that
// better positions value higher.
func EvaluateNoAuctionTiles(state *game.GameState) map[string]float64 {
	players := state.Players()
	unrealized := game.UnrealizedPoints(players, state.IsFinalRound())
	valuations := make(map[string]float64, len(players))
	for _, p := range players {
		valuations[p.Name()] = float64(p.Points() + unrealized[p.Name()])
	}
	return valuations
}

// finalScores returns each player's actual point total. Only meaningful
// once the game has ended.
func finalScores(state *game.GameState) map[string]float64 {
	players := state.Players()
	scores := make(map[string]float64, len(players))
	for _, p := range players {
		scores[p.Name()] = float64(p.Points())
	}
	return scores
}

// StateScore reduces per-player valuations to a single score for one
// player: how far ahead of the best other player they are, or how far
// behind the leader.
func StateScore(playerName string, valuations map[string]float64) float64 {
	maxOther := 0.0
	first := true
	for name, valuation := range valuations {
		if name == playerName {
			continue
		}
		if first || valuation > maxOther {
			maxOther = valuation
			first = false
		}
	}
	return valuations[playerName] - maxOther
}
