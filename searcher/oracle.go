package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ra/game"
)

// DefaultAuctionBudget is how many auctions an oracle search will look
// past by default.
const DefaultAuctionBudget = 1

// Oracle searches with full knowledge of the tile bag's draw order:
// draws are not chance nodes, they reveal the actual next tile. The
// search horizon is an auction budget, spent whenever a Ra is drawn or
// an auction is started.
type Oracle struct {
	auctionBudget int
	newCollector  func() Collector
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithAuctionBudget sets how many auctions the search looks past.
func WithAuctionBudget(n int) Option {
	return func(o *Oracle) { o.auctionBudget = n }
}

// WithoutMetrics disables metrics collection.
func WithoutMetrics() Option {
	return func(o *Oracle) { o.newCollector = NewDummyCollector }
}

// NewOracle returns an Oracle with the given options applied.
func NewOracle(opts ...Option) *Oracle {
	o := &Oracle{
		auctionBudget: DefaultAuctionBudget,
		newCollector:  NewCollector,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// memoEntry caches the search result for one state. Valuations are
// stored packed in seat order.
type memoEntry struct {
	action     game.Action
	valuations game.PackedScores
	maxDepth   int
	finished   bool
}

// Search returns the best action for the current player, the resulting
// per-player valuations, and the metrics of this invocation. The memo
// cache lives for one call and is discarded afterwards.
func (o *Oracle) Search(state *game.GameState) (game.Action, map[string]float64, SearchMetric, error) {
	if state.GameEnded() {
		return 0, nil, SearchMetric{}, fmt.Errorf("cannot search an ended game")
	}
	if len(state.LegalActions()) == 0 {
		return 0, nil, SearchMetric{}, fmt.Errorf("no legal actions to search")
	}

	c := o.newCollector()
	memo := make(map[game.StateHash]memoEntry)
	start := time.Now()

	action, valuations, maxDepth, _ := o.searchInternal(state, o.auctionBudget, memo, c, 0)

	metrics := c.Metrics()
	log.Debug().
		Int("action", int(action)).
		Int("maxDepth", maxDepth).
		Int("uniqueStates", len(memo)).
		Int64("cacheHits", metrics.CacheHits).
		Dur("elapsed", time.Since(start)).
		Msg("oracle search done")
	return action, valuations, metrics, nil
}

// searchInternal finds the best searchable action for the state's
// current player. Ties keep the first action in ascending id order.
func (o *Oracle) searchInternal(
	state *game.GameState,
	auctionsLeft int,
	memo map[game.StateHash]memoEntry,
	c Collector,
	depth int,
) (game.Action, map[string]float64, int, bool) {
	names := state.PlayerNames()
	hash := state.Hash()
	if entry, ok := memo[hash]; ok {
		c.CacheHit()
		return entry.action, unpackValuations(entry.valuations, names), entry.maxDepth, entry.finished
	}
	c.CacheMiss()
	c.IntermediateNode(state.CurrentRound())
	c.ObserveDepth(depth)

	legal := state.LegalActions()
	if len(legal) == 0 {
		panic("oracle search on a state with no legal actions")
	}
	currentName := state.CurrentPlayerName()

	var bestAction game.Action
	var bestValuations map[string]float64
	bestScore := 0.0
	maxDepth := 0
	allFinished := true
	for _, action := range legal {
		if action.IsGodTake() {
			continue
		}
		if action == game.ActionDraw && state.Bag().Remaining() == 0 {
			continue
		}

		next := state.Copy()
		tile, err := next.Execute(action, legal, game.NoTile)
		if err != nil {
			panic(fmt.Sprintf("legal action %d failed: %v", int(action), err))
		}

		budget := auctionsLeft
		if tile.IsRa() || action == game.ActionAuction {
			budget--
		}
		valuations, childDepth, finished := o.valueState(next, budget, memo, c, depth+1)

		score := StateScore(currentName, valuations)
		if bestValuations == nil || score > bestScore {
			bestAction, bestValuations, bestScore = action, valuations, score
		}
		maxDepth = max(maxDepth, childDepth)
		allFinished = allFinished && finished
	}
	if bestValuations == nil {
		panic("no searchable actions")
	}

	memo[hash] = memoEntry{
		action:     bestAction,
		valuations: packValuations(bestValuations, names),
		maxDepth:   maxDepth + 1,
		finished:   allFinished,
	}
	return bestAction, bestValuations, maxDepth + 1, allFinished
}

// valueState values a position: actual final scores at game end, the
// heuristic once the auction budget is spent and the pile is empty, and
// otherwise the value of the best continuation.
func (o *Oracle) valueState(
	state *game.GameState,
	auctionsLeft int,
	memo map[game.StateHash]memoEntry,
	c Collector,
	depth int,
) (map[string]float64, int, bool) {
	if state.GameEnded() {
		c.TerminalNode(state.CurrentRound())
		c.ObserveDepth(depth)
		return finalScores(state), 0, true
	}
	if auctionsLeft <= 0 && len(state.AuctionTiles()) == 0 {
		c.HeuristicNode(state.CurrentRound())
		c.ObserveDepth(depth)
		return EvaluateNoAuctionTiles(state), 0, false
	}
	_, valuations, maxDepth, finished := o.searchInternal(state, auctionsLeft, memo, c, depth)
	return valuations, maxDepth, finished
}

func packValuations(valuations map[string]float64, names []string) game.PackedScores {
	scores := make([]float64, len(names))
	for i, name := range names {
		scores[i] = valuations[name]
	}
	packed, err := game.PackScores(scores)
	if err != nil {
		panic(fmt.Sprintf("cannot pack valuations: %v", err))
	}
	return packed
}

func unpackValuations(packed game.PackedScores, names []string) map[string]float64 {
	scores := game.UnpackScores(packed)
	valuations := make(map[string]float64, len(names))
	for i, name := range names {
		valuations[name] = scores[i]
	}
	return valuations
}
