package game

// SerializedTile is the data-only representation of one tile type.
type SerializedTile struct {
	Name        string `json:"name"`
	StartingNum int    `json:"startingNum"`
	Keep        bool   `json:"toKeep"`
	TileType    string `json:"tileType"`
	Index       int    `json:"index"`
}

// SerializedPlayerState is a data-only snapshot of one player.
type SerializedPlayerState struct {
	PlayerName  string `json:"playerName"`
	Points      int    `json:"points"`
	UsableSun   []int  `json:"usableSun"`
	UnusableSun []int  `json:"unusableSun"`
	// Collection expands the per-type counts into one entry per tile.
	Collection []Tile `json:"collection"`
}

// SerializedGameState is a data-only snapshot of the whole game,
// suitable for display or JSON encoding.
type SerializedGameState struct {
	TotalRounds     int `json:"totalRounds"`
	NumRasPerRound  int `json:"numRasPerRound"`
	NumPlayers      int `json:"numPlayers"`
	MaxAuctionTiles int `json:"maxAuctionTiles"`

	CurrentRound         int    `json:"currentRound"`
	ActivePlayers        []bool `json:"activePlayers"`
	NumRasThisRound      int    `json:"numRasThisRound"`
	CenterSun            int    `json:"centerSun"`
	AuctionTiles         []Tile `json:"auctionTiles"`
	AuctionSuns          []int  `json:"auctionSuns"`
	AuctionStarted       bool   `json:"auctionStarted"`
	AuctionStartPlayer   int    `json:"auctionStartPlayer"`
	CurrentPlayer        int    `json:"currentPlayer"`
	AuctionWinningPlayer int    `json:"auctionWinningPlayer"`

	PlayerStates []SerializedPlayerState `json:"playerStates"`

	GameEnded bool `json:"gameEnded"`
}

// SerializeTile returns the data-only representation of a tile type.
func SerializeTile(t Tile) SerializedTile {
	info := TileInfos[t]
	return SerializedTile{
		Name:        info.Name,
		StartingNum: info.StartingNum,
		Keep:        info.Keep,
		TileType:    info.Kind.String(),
		Index:       int(t),
	}
}

// Serialize returns a data-only snapshot of the game state.
func (g *GameState) Serialize() SerializedGameState {
	playerStates := make([]SerializedPlayerState, len(g.players))
	for i, p := range g.players {
		playerStates[i] = p.Serialize()
	}
	return SerializedGameState{
		TotalRounds:          g.totalRounds,
		NumRasPerRound:       g.numRasPerRound,
		NumPlayers:           g.numPlayers,
		MaxAuctionTiles:      g.maxAuctionTiles,
		CurrentRound:         g.currentRound,
		ActivePlayers:        append([]bool(nil), g.activePlayers...),
		NumRasThisRound:      g.numRasThisRound,
		CenterSun:            g.centerSun,
		AuctionTiles:         g.AuctionTiles(),
		AuctionSuns:          g.AuctionSuns(),
		AuctionStarted:       g.auctionStarted,
		AuctionStartPlayer:   g.auctionStartPlayer,
		CurrentPlayer:        g.currentPlayer,
		AuctionWinningPlayer: g.auctionWinningPlayer,
		PlayerStates:         playerStates,
		GameEnded:            g.gameEnded,
	}
}
