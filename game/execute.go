package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Execute applies the given action for the current player. legal should
// be the result of LegalActions for this state; pass nil to have it
// recomputed. forcedDraw forces a draw action to produce a specific
// tile type instead of the head of the draw order; pass NoTile for the
// natural draw.
//
// Returns the tile drawn if the action was a draw, NoTile otherwise.
func (g *GameState) Execute(action Action, legal []Action, forcedDraw Tile) (Tile, error) {
	if legal == nil {
		legal = g.LegalActions()
	}
	if !containsAction(legal, action) {
		return NoTile, fmt.Errorf("cannot execute non-legal action %d; legal actions: %v",
			int(action), legal)
	}

	switch {
	case action == ActionDraw:
		return g.executeDraw(forcedDraw)

	case action == ActionAuction:
		// starting an auction on a full pile counts as forced, so the
		// starter keeps the right to pass
		wasForced := len(g.auctionTiles) == g.maxAuctionTiles
		g.startAuction(wasForced)
		g.advanceCurrentPlayer()
		return NoTile, nil

	case action.IsGodTake():
		g.executeGodTake(action.GodTileIndex())
		return NoTile, nil

	case action.IsBid():
		g.executeBid(action.BidSunIndex())
		return NoTile, nil

	case action == ActionBidNothing:
		if g.currentPlayer == g.auctionStartPlayer {
			g.resolveAuction()
		} else {
			g.advanceCurrentPlayer()
		}
		return NoTile, nil

	case action.IsCivDiscard():
		g.executeDisasterDiscard(action.DiscardTile(), &g.numCivsToDiscard)
		return NoTile, nil

	case action.IsMonumentDiscard():
		g.executeDisasterDiscard(action.DiscardTile(), &g.numMonsToDiscard)
		return NoTile, nil
	}

	return NoTile, fmt.Errorf("unhandled action %d", int(action))
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func (g *GameState) executeDraw(forcedDraw Tile) (Tile, error) {
	var tile Tile
	if forcedDraw != NoTile {
		t, err := g.bag.DrawOfType(forcedDraw)
		if err != nil {
			return NoTile, err
		}
		tile = t
	} else {
		tile = g.bag.Draw()
		if tile == NoTile {
			return NoTile, fmt.Errorf("cannot draw: tile bag is empty")
		}
	}

	if tile.IsRa() {
		g.numRasThisRound++
		if g.numRasThisRound == g.numRasPerRound {
			g.endRound()
			return tile, nil
		}
		g.startAuction(true)
	} else {
		if len(g.auctionTiles) >= g.maxAuctionTiles {
			panic("drew onto a full auction pile")
		}
		g.auctionTiles = append(g.auctionTiles, tile)
	}

	g.advanceCurrentPlayer()
	return tile, nil
}

func (g *GameState) startAuction(forced bool) {
	g.auctionStarted = true
	g.auctionForced = forced
	g.auctionStartPlayer = g.currentPlayer
}

func (g *GameState) executeGodTake(pileIndex int) {
	if pileIndex >= len(g.auctionTiles) {
		panic(fmt.Sprintf("god take of auction tile %d with only %d tiles",
			pileIndex, len(g.auctionTiles)))
	}
	tile := g.auctionTiles[pileIndex]
	g.auctionTiles = append(g.auctionTiles[:pileIndex], g.auctionTiles[pileIndex+1:]...)
	current := g.players[g.currentPlayer]
	current.AddTiles([]Tile{tile})
	current.RemoveSingleTiles([]Tile{TileGod})
	g.advanceCurrentPlayer()
}

func (g *GameState) executeBid(sunIndex int) {
	usable := g.players[g.currentPlayer].usableSun
	if sunIndex >= len(usable) {
		panic(fmt.Sprintf("bid of sun %d with only %d usable", sunIndex, len(usable)))
	}
	sun := usable[sunIndex]
	if !g.auctionStarted {
		panic("cannot bid outside an auction")
	}
	if g.auctionSuns[g.currentPlayer] > 0 {
		panic(fmt.Sprintf("player %d already bid %d", g.currentPlayer, g.auctionSuns[g.currentPlayer]))
	}
	g.auctionSuns[g.currentPlayer] = sun

	if g.currentPlayer == g.auctionStartPlayer {
		g.resolveAuction()
	} else {
		g.advanceCurrentPlayer()
	}
}

// resolveAuction ends the bidding once it has come back around to the
// auction starter: the highest bid wins the pile, or a full pile is
// discarded on a complete pass.
func (g *GameState) resolveAuction() {
	maxSun, winner := 0, noPlayer
	for i, s := range g.auctionSuns {
		if s > maxSun {
			maxSun, winner = s, i
		}
	}

	if winner == noPlayer {
		if len(g.auctionTiles) == g.maxAuctionTiles {
			g.auctionTiles = nil
		}
	} else {
		g.awardAuction(winner, maxSun)
	}

	g.endAuction()

	if g.gameEnded {
		return
	}
	if !g.disastersPending() {
		g.advanceCurrentPlayer()
	} else {
		g.currentPlayer = g.auctionWinningPlayer
	}
}

func (g *GameState) awardAuction(winner, winningSun int) {
	log.Debug().
		Int("winner", winner).
		Int("sun", winningSun).
		Int("tiles", len(g.auctionTiles)).
		Msg("auction won")

	g.players[winner].ExchangeSun(winningSun, g.centerSun)
	g.centerSun = winningSun

	tiles := g.auctionTiles
	g.auctionTiles = nil
	var collectibles []Tile
	for _, t := range tiles {
		if t.IsCollectible() {
			collectibles = append(collectibles, t)
		}
	}
	g.players[winner].AddTiles(collectibles)

	g.resolveDisasters(winner, tiles)

	if !g.disastersPending() {
		g.markPassedAndMaybeEndRound(winner)
	}
}

// resolveDisasters applies any disaster tiles in the won pile. Pharaoh
// and nile losses are capped and taken immediately; civilization and
// monument losses become pending discards when the winner holds more
// than the loss, because the winner chooses which types to give up.
func (g *GameState) resolveDisasters(winner int, wonTiles []Tile) {
	countDisasters := func(disaster Tile) int {
		n := 0
		for _, t := range wonTiles {
			if t == disaster {
				n++
			}
		}
		return n
	}
	winnerState := g.players[winner]

	if n := countDisasters(TileDisPharaoh) * NumDiscardsPerDisaster; n > 0 {
		toDiscard := min(n, winnerState.collection[TilePharaoh])
		for i := 0; i < toDiscard; i++ {
			winnerState.RemoveSingleTiles([]Tile{TilePharaoh})
		}
	}

	if n := countDisasters(TileDisNile) * NumDiscardsPerDisaster; n > 0 {
		// floods are lost before niles
		floodsToDiscard := min(n, winnerState.collection[TileFlood])
		nilesToDiscard := min(n-floodsToDiscard, winnerState.collection[TileNile])
		for i := 0; i < floodsToDiscard; i++ {
			winnerState.RemoveSingleTiles([]Tile{TileFlood})
		}
		for i := 0; i < nilesToDiscard; i++ {
			winnerState.RemoveSingleTiles([]Tile{TileNile})
		}
	}

	if n := countDisasters(TileDisCiv) * NumDiscardsPerDisaster; n > 0 {
		owned := 0
		for _, t := range civTiles() {
			owned += winnerState.collection[t]
		}
		if owned <= n {
			winnerState.RemoveAllTiles(civTiles())
		} else {
			g.numCivsToDiscard = n
			g.auctionWinningPlayer = winner
		}
	}

	if n := countDisasters(TileDisMonument) * NumDiscardsPerDisaster; n > 0 {
		owned := 0
		for _, t := range monumentTiles() {
			owned += winnerState.collection[t]
		}
		if owned <= n {
			winnerState.RemoveAllTiles(monumentTiles())
		} else {
			g.numMonsToDiscard = n
			g.auctionWinningPlayer = winner
		}
	}
}

// markPassedAndMaybeEndRound marks a player passed once they are out of
// usable sun, and ends the round if everyone has passed.
func (g *GameState) markPassedAndMaybeEndRound(player int) {
	if len(g.players[player].usableSun) == 0 {
		g.activePlayers[player] = false
	}
	if g.allPlayersPassed() {
		g.endRound()
	}
}

func (g *GameState) endAuction() {
	for i := range g.auctionSuns {
		g.auctionSuns[i] = 0
	}
	g.auctionStarted = false
}

func (g *GameState) executeDisasterDiscard(tile Tile, pending *int) {
	if g.auctionWinningPlayer == noPlayer {
		panic("disaster discard with no auction winner")
	}
	g.players[g.auctionWinningPlayer].RemoveSingleTiles([]Tile{tile})
	*pending--
	if *pending < 0 {
		panic("pending discard count went negative")
	}

	if !g.disastersPending() {
		g.markPassedAndMaybeEndRound(g.auctionWinningPlayer)
		if g.gameEnded {
			return
		}
		// resume play after the player that started the auction
		g.currentPlayer = g.auctionStartPlayer
		g.advanceCurrentPlayer()
	}
}

// endRound scores the round, discards temporary tiles, flips suns back
// up, and either advances to the next round or ends the game.
func (g *GameState) endRound() {
	g.auctionTiles = nil
	g.endAuction()
	g.numRasThisRound = 0

	ApplyRoundEndScoring(g.players)

	for _, p := range g.players {
		p.RemoveAllTiles(temporaryCollectibleTiles())
		p.MakeAllSunsUsable()
	}

	if g.IsFinalRound() {
		ApplyGameEndScoring(g.players)
		g.gameEnded = true
		log.Info().Interface("scores", g.PlayerPoints()).Msg("game ended")
		return
	}

	log.Debug().Int("round", g.currentRound).Msg("round ended")

	for i := range g.activePlayers {
		g.activePlayers[i] = true
	}
	g.advanceCurrentPlayer()
	g.currentRound++
}
