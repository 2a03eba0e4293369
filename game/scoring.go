package game

// Scoring constants.
const (
	PointsPerGod       = 2
	PointsPerGold      = 3
	PointsForLeastPhar = -2
	PointsForMostPhar  = 5
	PointsForLeastSun  = -5
	PointsForMostSun   = 5
)

// PointsForCivs maps the number of distinct civilizations to points.
var PointsForCivs = [NumCivs + 1]int{-5, 0, 0, 5, 10, 15}

// PointsForMonDepth maps copies of a single monument to points.
var PointsForMonDepth = [6]int{0, 0, 0, 5, 10, 15}

// PointsForMonBreadth maps distinct monuments to points.
var PointsForMonBreadth = [NumMonuments + 1]int{0, 1, 2, 3, 4, 5, 6, 10, 15}

// RoundEndPoints calculates the points each player would gain from
// round-end scoring: gods, gold, pharaoh majorities, niles with floods,
// and distinct civilizations. Pure; nothing is applied.
func RoundEndPoints(players []*PlayerState) map[string]int {
	leastPhars, mostPhars := leastAndMostPharaohs(players)

	gained := make(map[string]int, len(players))
	for _, p := range players {
		points := 0
		points += p.collection[TileGod] * PointsPerGod
		points += p.collection[TileGold] * PointsPerGold

		if p.collection[TilePharaoh] == leastPhars {
			points += PointsForLeastPhar
		}
		if p.collection[TilePharaoh] == mostPhars {
			points += PointsForMostPhar
		}

		// niles score only if at least one flood was collected
		if p.collection[TileFlood] > 0 {
			points += p.collection[TileNile] + p.collection[TileFlood]
		}

		points += PointsForCivs[numDistinctCivs(p)]
		gained[p.Name()] = points
	}
	return gained
}

// GameEndPoints calculates the points each player would gain from
// game-end scoring: monuments and sun totals. Pure; nothing is applied.
func GameEndPoints(players []*PlayerState) map[string]int {
	leastSuns, mostSuns := leastAndMostSuns(players)

	gained := make(map[string]int, len(players))
	for _, p := range players {
		points := monumentPoints(p)
		if p.SunTotal() == leastSuns {
			points += PointsForLeastSun
		}
		if p.SunTotal() == mostSuns {
			points += PointsForMostSun
		}
		gained[p.Name()] = points
	}
	return gained
}

// UnrealizedPoints calculates the points each player would gain if the
// current round ended now; in the final round this includes game-end
// scoring.
func UnrealizedPoints(players []*PlayerState, isFinalRound bool) map[string]int {
	gained := RoundEndPoints(players)
	if isFinalRound {
		for name, points := range GameEndPoints(players) {
			gained[name] += points
		}
	}
	return gained
}

// AuctionTileValues calculates, per player, how many extra points the
// current auction tiles would be worth if that player won them all.
// Disaster tiles are ignored.
func AuctionTileValues(auctionTiles []Tile, players []*PlayerState) map[string]int {
	var collectibles []Tile
	for _, t := range auctionTiles {
		if t.IsCollectible() {
			collectibles = append(collectibles, t)
		}
	}

	baseline := make(map[string]int, len(players))
	baseRound := RoundEndPoints(players)
	baseGame := GameEndPoints(players)
	for _, p := range players {
		baseline[p.Name()] = baseRound[p.Name()] + baseGame[p.Name()]
	}

	values := make(map[string]int, len(players))
	for i, p := range players {
		sim := make([]*PlayerState, len(players))
		copy(sim, players)
		simPlayer := p.Copy()
		simPlayer.AddTiles(collectibles)
		sim[i] = simPlayer

		simRound := RoundEndPoints(sim)
		simGame := GameEndPoints(sim)
		values[p.Name()] = simRound[p.Name()] + simGame[p.Name()] - baseline[p.Name()]
	}
	return values
}

// ApplyRoundEndScoring adds round-end points to each player.
func ApplyRoundEndScoring(players []*PlayerState) {
	gained := RoundEndPoints(players)
	for _, p := range players {
		p.AddPoints(gained[p.Name()])
	}
}

// ApplyGameEndScoring adds game-end points to each player.
func ApplyGameEndScoring(players []*PlayerState) {
	gained := GameEndPoints(players)
	for _, p := range players {
		p.AddPoints(gained[p.Name()])
	}
}

func leastAndMostPharaohs(players []*PlayerState) (int, int) {
	least, most := players[0].collection[TilePharaoh], players[0].collection[TilePharaoh]
	for _, p := range players[1:] {
		least = min(least, p.collection[TilePharaoh])
		most = max(most, p.collection[TilePharaoh])
	}
	return least, most
}

func leastAndMostSuns(players []*PlayerState) (int, int) {
	least, most := players[0].SunTotal(), players[0].SunTotal()
	for _, p := range players[1:] {
		least = min(least, p.SunTotal())
		most = max(most, p.SunTotal())
	}
	return least, most
}

func numDistinctCivs(p *PlayerState) int {
	distinct := 0
	for _, t := range civTiles() {
		if p.collection[t] > 0 {
			distinct++
		}
	}
	return distinct
}

func monumentPoints(p *PlayerState) int {
	points, distinct := 0, 0
	for _, t := range monumentTiles() {
		points += PointsForMonDepth[p.collection[t]]
		if p.collection[t] > 0 {
			distinct++
		}
	}
	return points + PointsForMonBreadth[distinct]
}
