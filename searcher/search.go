package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"ra/game"
)

// Search picks an action for the current player by expectimax. Draws
// branch over every tile type left in the bag, weighted by how many of
// that type remain. The search runs until the game ends or until at
// least one auction has occurred and the auction pile is empty, at
// which point the position is valued heuristically.
//
// Golden-god takes are not searched; they are skipped as candidates.
func Search(state *game.GameState) (game.Action, map[string]float64, error) {
	if state.GameEnded() {
		return 0, nil, fmt.Errorf("cannot search an ended game")
	}
	legal := state.LegalActions()
	if len(legal) == 0 {
		return 0, nil, fmt.Errorf("no legal actions to search")
	}

	action, valuations := searchInternal(state, false)
	log.Debug().
		Int("action", int(action)).
		Str("player", state.CurrentPlayerName()).
		Msg("search done")
	return action, valuations, nil
}

// searchInternal returns the best searchable action and the valuations
// that result from it. Ties keep the first action in ascending id order.
func searchInternal(state *game.GameState, auctionOccurred bool) (game.Action, map[string]float64) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		panic("searchInternal called with no legal actions")
	}
	currentName := state.CurrentPlayerName()

	var bestAction game.Action
	var bestValuations map[string]float64
	bestScore := 0.0
	for _, action := range legal {
		if action.IsGodTake() {
			continue
		}

		var valuations map[string]float64
		if action == game.ActionDraw {
			valuations = drawExpectation(state, legal, auctionOccurred)
			if valuations == nil {
				continue
			}
		} else {
			next := state.Copy()
			if _, err := next.Execute(action, legal, game.NoTile); err != nil {
				panic(fmt.Sprintf("legal action %d failed: %v", int(action), err))
			}
			valuations = valueState(next, auctionOccurred || action == game.ActionAuction)
		}

		score := StateScore(currentName, valuations)
		if bestValuations == nil || score > bestScore {
			bestAction, bestValuations, bestScore = action, valuations, score
		}
	}
	if bestValuations == nil {
		panic("no searchable actions")
	}
	return bestAction, bestValuations
}

// drawExpectation values a draw as the expectation over every tile type
// left in the bag. Returns nil when the bag is empty.
func drawExpectation(state *game.GameState, legal []game.Action, auctionOccurred bool) map[string]float64 {
	bag := state.Bag()
	total := bag.Remaining()
	if total == 0 {
		return nil
	}
	counts := bag.Counts()

	expected := map[string]float64{}
	for t := 0; t < game.NumTileTypes; t++ {
		count := counts[t]
		if count == 0 {
			continue
		}
		next := state.Copy()
		tile, err := next.Execute(game.ActionDraw, legal, game.Tile(t))
		if err != nil {
			panic(fmt.Sprintf("draw of %v failed: %v", game.Tile(t), err))
		}
		weight := float64(count) / float64(total)
		for name, v := range valueState(next, auctionOccurred || tile.IsRa()) {
			expected[name] += weight * v
		}
	}
	return expected
}

// valueState values a position: actual final scores at game end, the
// heuristic once the search horizon is reached, and otherwise the value
// of the best continuation.
func valueState(state *game.GameState, auctionOccurred bool) map[string]float64 {
	if state.GameEnded() {
		return finalScores(state)
	}
	if auctionOccurred && len(state.AuctionTiles()) == 0 {
		return EvaluateNoAuctionTiles(state)
	}
	_, valuations := searchInternal(state, auctionOccurred)
	return valuations
}
