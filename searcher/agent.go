package searcher

import (
	"fmt"

	"ra/game"
)

// Agent picks an action for the current player of a game state.
type Agent func(*game.GameState) (game.Action, error)

// FirstLegalAgent always picks the lowest-id legal action. Useful as a
// baseline and in tests.
func FirstLegalAgent(state *game.GameState) (game.Action, error) {
	legal := state.LegalActions()
	if len(legal) == 0 {
		return 0, fmt.Errorf("no legal actions")
	}
	return legal[0], nil
}

// SearchAgent returns an agent that picks actions by expectimax search.
func SearchAgent() Agent {
	return func(state *game.GameState) (game.Action, error) {
		action, _, err := Search(state)
		return action, err
	}
}

// OracleAgent returns an agent that picks actions by oracle search with
// the given auction budget.
func OracleAgent(auctionBudget int) Agent {
	oracle := NewOracle(WithAuctionBudget(auctionBudget), WithoutMetrics())
	return func(state *game.GameState) (game.Action, error) {
		action, _, _, err := oracle.Search(state)
		return action, err
	}
}
