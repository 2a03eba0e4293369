package game

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// StateHash is a structural hash of a game state, usable as a map key.
type StateHash uint64

// noPlayer marks player-index fields that are unset.
const noPlayer = -1

// GameState holds the full state of a game in progress.
type GameState struct {
	totalRounds     int
	numRasPerRound  int
	numPlayers      int
	maxAuctionTiles int

	bag             *TileBag
	currentRound    int
	activePlayers   []bool
	numRasThisRound int
	centerSun       int
	auctionTiles    []Tile
	// auctionSuns[i] is player i's bid, or 0 for no bid yet.
	auctionSuns        []int
	auctionStarted     bool
	auctionForced      bool
	auctionStartPlayer int
	currentPlayer      int
	numMonsToDiscard   int
	numCivsToDiscard   int
	// set when an auction winner must still resolve disasters
	auctionWinningPlayer int

	players     []*PlayerState
	playerNames []string

	gameEnded bool
}

// NewGameState starts a game for the named players with a shuffled tile
// bag. The first starting sun set goes to seat 0; the remaining sets are
// shuffled among the other seats.
func NewGameState(playerNames []string) (*GameState, error) {
	sunSets, err := shuffledSunSets(len(playerNames))
	if err != nil {
		return nil, err
	}
	return newGameState(playerNames, NewTileBag(), sunSets)
}

// NewGameStateFromOrder starts a game with a fixed tile draw order and
// the starting sun sets assigned to seats in canonical order. Used for
// replay and tests, where determinism matters.
func NewGameStateFromOrder(playerNames []string, drawOrder []Tile) (*GameState, error) {
	sunSets, ok := StartingSunSets[len(playerNames)]
	if !ok {
		return nil, fmt.Errorf("cannot start a game with %d players", len(playerNames))
	}
	return newGameState(playerNames, NewTileBagFromOrder(drawOrder), sunSets)
}

func shuffledSunSets(numPlayers int) ([][]int, error) {
	sets, ok := StartingSunSets[numPlayers]
	if !ok {
		return nil, fmt.Errorf("cannot start a game with %d players", numPlayers)
	}
	shuffled := make([][]int, len(sets))
	copy(shuffled, sets)
	rest := shuffled[1:]
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	return shuffled, nil
}

func newGameState(playerNames []string, bag *TileBag, sunSets [][]int) (*GameState, error) {
	numPlayers := len(playerNames)
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("cannot start a game with %d players", numPlayers)
	}
	seen := map[string]bool{}
	for _, name := range playerNames {
		if seen[name] {
			return nil, fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true
	}

	g := &GameState{
		totalRounds:          NumRounds,
		numRasPerRound:       NumRasPerRound[numPlayers],
		numPlayers:           numPlayers,
		maxAuctionTiles:      MaxAuctionTiles,
		bag:                  bag,
		currentRound:         1,
		activePlayers:        make([]bool, numPlayers),
		centerSun:            StartingCenterSun,
		auctionSuns:          make([]int, numPlayers),
		auctionStartPlayer:   noPlayer,
		auctionWinningPlayer: noPlayer,
		playerNames:          append([]string(nil), playerNames...),
	}
	for i := range g.activePlayers {
		g.activePlayers[i] = true
	}
	for i, name := range playerNames {
		g.players = append(g.players, NewPlayerState(name, i, sunSets[i], StartingPlayerPoints))
	}
	return g, nil
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	c := *g
	c.bag = g.bag.Copy()
	c.activePlayers = append([]bool(nil), g.activePlayers...)
	c.auctionTiles = append([]Tile(nil), g.auctionTiles...)
	c.auctionSuns = append([]int(nil), g.auctionSuns...)
	c.playerNames = append([]string(nil), g.playerNames...)
	c.players = make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		c.players[i] = p.Copy()
	}
	return &c
}

// Hash returns a structural hash of the state. States that will play
// out identically hash equal; the auction pile is hashed in sorted
// order so pile permutations coincide.
func (g *GameState) Hash() StateHash {
	h := fnv.New64a()
	writeInt := func(n int) {
		h.Write([]byte{byte(n >> 8), byte(n)})
	}
	writeBool := func(b bool) {
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeInt(g.currentRound)
	writeInt(g.numRasThisRound)
	writeInt(g.centerSun)
	writeInt(g.currentPlayer)
	writeInt(g.auctionStartPlayer)
	writeInt(g.auctionWinningPlayer)
	writeInt(g.numCivsToDiscard)
	writeInt(g.numMonsToDiscard)
	writeBool(g.auctionStarted)
	writeBool(g.auctionForced)
	writeBool(g.gameEnded)
	for _, active := range g.activePlayers {
		writeBool(active)
	}
	sortedPile := append([]Tile(nil), g.auctionTiles...)
	sort.Slice(sortedPile, func(i, j int) bool { return sortedPile[i] < sortedPile[j] })
	for _, t := range sortedPile {
		h.Write([]byte{byte(t)})
	}
	h.Write([]byte{0xff})
	for _, s := range g.auctionSuns {
		writeInt(s)
	}
	bagHash := g.bag.Hash()
	for shift := 56; shift >= 0; shift -= 8 {
		h.Write([]byte{byte(bagHash >> shift)})
	}
	for _, p := range g.players {
		pHash := p.Hash()
		for shift := 56; shift >= 0; shift -= 8 {
			h.Write([]byte{byte(pHash >> shift)})
		}
	}
	return StateHash(h.Sum64())
}

// Equal reports whether two states are structurally identical, with the
// auction pile compared order-insensitively and the bags compared by
// their undrawn contents.
func (g *GameState) Equal(other *GameState) bool {
	if g.numPlayers != other.numPlayers ||
		g.currentRound != other.currentRound ||
		g.numRasThisRound != other.numRasThisRound ||
		g.centerSun != other.centerSun ||
		g.currentPlayer != other.currentPlayer ||
		g.auctionStarted != other.auctionStarted ||
		g.auctionForced != other.auctionForced ||
		g.auctionStartPlayer != other.auctionStartPlayer ||
		g.auctionWinningPlayer != other.auctionWinningPlayer ||
		g.numCivsToDiscard != other.numCivsToDiscard ||
		g.numMonsToDiscard != other.numMonsToDiscard ||
		g.gameEnded != other.gameEnded ||
		!g.bag.Equal(other.bag) {
		return false
	}
	for i := range g.activePlayers {
		if g.activePlayers[i] != other.activePlayers[i] {
			return false
		}
	}
	for i := range g.auctionSuns {
		if g.auctionSuns[i] != other.auctionSuns[i] {
			return false
		}
	}
	if len(g.auctionTiles) != len(other.auctionTiles) {
		return false
	}
	pile, otherPile := append([]Tile(nil), g.auctionTiles...), append([]Tile(nil), other.auctionTiles...)
	sort.Slice(pile, func(i, j int) bool { return pile[i] < pile[j] })
	sort.Slice(otherPile, func(i, j int) bool { return otherPile[i] < otherPile[j] })
	for i := range pile {
		if pile[i] != otherPile[i] {
			return false
		}
	}
	for i := range g.players {
		if !g.players[i].Equal(other.players[i]) {
			return false
		}
	}
	return true
}

// accessors

func (g *GameState) NumPlayers() int { return g.numPlayers }

func (g *GameState) TotalRounds() int { return g.totalRounds }

func (g *GameState) CurrentRound() int { return g.currentRound }

func (g *GameState) IsFinalRound() bool { return g.currentRound == g.totalRounds }

func (g *GameState) GameEnded() bool { return g.gameEnded }

func (g *GameState) Bag() *TileBag { return g.bag }

func (g *GameState) NumRasPerRound() int { return g.numRasPerRound }

func (g *GameState) NumRasThisRound() int { return g.numRasThisRound }

func (g *GameState) CenterSun() int { return g.centerSun }

func (g *GameState) MaxAuctionTiles() int { return g.maxAuctionTiles }

// AuctionTiles returns a copy of the tiles currently up for auction.
func (g *GameState) AuctionTiles() []Tile {
	return append([]Tile(nil), g.auctionTiles...)
}

// AuctionSuns returns each player's current bid; 0 means no bid.
func (g *GameState) AuctionSuns() []int {
	return append([]int(nil), g.auctionSuns...)
}

func (g *GameState) AuctionStarted() bool { return g.auctionStarted }

func (g *GameState) AuctionForced() bool { return g.auctionForced }

// AuctionStartPlayer returns the seat that started the current or most
// recent auction; ok is false if no auction has run.
func (g *GameState) AuctionStartPlayer() (int, bool) {
	return g.auctionStartPlayer, g.auctionStartPlayer != noPlayer
}

// AuctionWinningPlayer returns the seat that won the auction and must
// resolve disasters; ok is false if none is pending.
func (g *GameState) AuctionWinningPlayer() (int, bool) {
	return g.auctionWinningPlayer, g.auctionWinningPlayer != noPlayer
}

func (g *GameState) NumCivsToDiscard() int { return g.numCivsToDiscard }

func (g *GameState) NumMonsToDiscard() int { return g.numMonsToDiscard }

func (g *GameState) CurrentPlayer() int { return g.currentPlayer }

func (g *GameState) CurrentPlayerName() string { return g.playerNames[g.currentPlayer] }

// PlayerNames returns the player names in seat order.
func (g *GameState) PlayerNames() []string {
	return append([]string(nil), g.playerNames...)
}

// Player returns the state of the given seat.
func (g *GameState) Player(idx int) *PlayerState {
	if idx < 0 || idx >= g.numPlayers {
		panic(fmt.Sprintf("invalid player index %d", idx))
	}
	return g.players[idx]
}

// Players returns the player states in seat order.
func (g *GameState) Players() []*PlayerState {
	return append([]*PlayerState(nil), g.players...)
}

// PlayerPoints returns every player's current point total by name.
func (g *GameState) PlayerPoints() map[string]int {
	points := make(map[string]int, g.numPlayers)
	for _, p := range g.players {
		points[p.Name()] = p.Points()
	}
	return points
}

func (g *GameState) IsPlayerActive(idx int) bool { return g.activePlayers[idx] }

func (g *GameState) allPlayersPassed() bool {
	for _, active := range g.activePlayers {
		if active {
			return false
		}
	}
	return true
}

func (g *GameState) disastersPending() bool {
	return g.numCivsToDiscard > 0 || g.numMonsToDiscard > 0
}

func (g *GameState) numAuctionSuns() int {
	n := 0
	for _, s := range g.auctionSuns {
		if s > 0 {
			n++
		}
	}
	return n
}

// nextActivePlayer returns the next seat after current that has not
// been marked passed, or noPlayer if everyone has.
func (g *GameState) nextActivePlayer() int {
	for i := 1; i <= g.numPlayers; i++ {
		candidate := (g.currentPlayer + i) % g.numPlayers
		if g.activePlayers[candidate] {
			return candidate
		}
	}
	return noPlayer
}

func (g *GameState) advanceCurrentPlayer() {
	next := g.nextActivePlayer()
	if next == noPlayer {
		panic("cannot advance current player: all players passed")
	}
	g.currentPlayer = next
}

func (g *GameState) String() string {
	var sb strings.Builder
	sb.WriteString("-------------------------------------------------\n")
	for _, p := range g.players {
		fmt.Fprintf(&sb, "Player: %s\n", p.Name())
		fmt.Fprintf(&sb, "  Usable Sun: %v\n", p.UsableSun())
		fmt.Fprintf(&sb, "  Unusable Sun: %v\n", p.UnusableSun())
		for i, count := range p.Collection() {
			if count > 0 {
				fmt.Fprintf(&sb, "  %s: %d collected\n", Tile(i), count)
			}
		}
		fmt.Fprintf(&sb, "  Points: %d\n", p.Points())
	}
	fmt.Fprintf(&sb, "Round: %d\n", g.currentRound)
	fmt.Fprintf(&sb, "Num Ras This Round: %d\n", g.numRasThisRound)
	fmt.Fprintf(&sb, "Center Sun: %d\n", g.centerSun)
	sb.WriteString("Auction Tiles:\n")
	for _, t := range g.auctionTiles {
		fmt.Fprintf(&sb, "    %s\n", t)
	}
	if g.auctionStarted {
		fmt.Fprintf(&sb, "Auctioned Suns: %v\n", g.auctionSuns)
	}
	fmt.Fprintf(&sb, "Player To Move: %s\n", g.CurrentPlayerName())
	return sb.String()
}
