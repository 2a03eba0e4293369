package game

import (
	"fmt"
	"sort"
)

// LegalActions returns the actions the current player may take, sorted
// ascending by action id. Returns nil once the game has ended.
func (g *GameState) LegalActions() []Action {
	if g.gameEnded {
		return nil
	}

	var legal []Action

	switch {
	case g.auctionStarted:
		maxBid := 0
		for _, s := range g.auctionSuns {
			if s > maxBid {
				maxBid = s
			}
		}
		for i, sun := range g.players[g.currentPlayer].usableSun {
			if sun > maxBid {
				legal = append(legal, ActionBid1+Action(i))
			}
		}
		// the auction starter of a voluntary auction must bid unless
		// someone else already has
		if g.currentPlayer != g.auctionStartPlayer ||
			g.auctionForced ||
			g.numAuctionSuns() > 0 {
			legal = append(legal, ActionBidNothing)
		}

	case g.disastersPending():
		if g.auctionWinningPlayer == noPlayer {
			panic("disasters pending with no auction winner")
		}
		winner := g.players[g.auctionWinningPlayer]
		if g.numCivsToDiscard > 0 {
			for i := 0; i < NumCivs; i++ {
				if winner.collection[FirstCiv+Tile(i)] > 0 {
					legal = append(legal, ActionDiscardAstronomy+Action(i))
				}
			}
		} else {
			for i := 0; i < NumMonuments; i++ {
				if winner.collection[FirstMonument+Tile(i)] > 0 {
					legal = append(legal, ActionDiscardFortress+Action(i))
				}
			}
		}
		if len(legal) == 0 {
			panic(fmt.Sprintf(
				"no legal discards for player %d with %d civs and %d monuments to discard",
				g.auctionWinningPlayer, g.numCivsToDiscard, g.numMonsToDiscard))
		}

	default:
		legal = append(legal, ActionAuction)
		if len(g.auctionTiles) < g.maxAuctionTiles {
			legal = append(legal, ActionDraw)
			if g.players[g.currentPlayer].collection[TileGod] > 0 {
				for i, t := range g.auctionTiles {
					if !t.IsDisaster() {
						legal = append(legal, ActionGod1+Action(i))
					}
				}
			}
		}
	}

	sort.Slice(legal, func(i, j int) bool { return legal[i] < legal[j] })
	return legal
}
