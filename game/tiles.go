package game

// Game constants. The tile table and the numbers below define the full
// standard game; nothing else in the package hardcodes tile counts.

const (
	MinPlayers = 2
	MaxPlayers = 5

	// NumRounds is the number of rounds in a game.
	NumRounds = 3

	// StartingCenterSun is the value of the sun that starts in the middle.
	StartingCenterSun = 1

	// StartingPlayerPoints is how many points each player starts with.
	StartingPlayerPoints = 10

	// MaxAuctionTiles is the most tiles that can be up for auction at once.
	MaxAuctionTiles = 8

	// NumDiscardsPerDisaster is how many tiles each disaster destroys.
	NumDiscardsPerDisaster = 2
)

// NumRasPerRound maps player count to the number of Ra tiles that end a round.
var NumRasPerRound = map[int]int{2: 6, 3: 8, 4: 9, 5: 10}

// StartingSunSets maps player count to the starting sun sets. The first set
// always goes to seat 0; the rest are shuffled among the remaining seats.
var StartingSunSets = map[int][][]int{
	2: {{2, 5, 6, 9}, {3, 4, 7, 8}},
	3: {{2, 5, 8, 13}, {3, 6, 9, 12}, {4, 7, 10, 11}},
	4: {{2, 6, 13}, {3, 7, 12}, {4, 8, 11}, {5, 9, 10}},
	5: {{2, 7, 16}, {3, 8, 15}, {4, 9, 14}, {5, 10, 13}, {6, 11, 12}},
}

// Tile identifies one of the fixed tile types. Its value doubles as the
// index into TileInfos and, for collectible types, into a player's
// collection vector.
type Tile int

const (
	TileGod Tile = iota
	TileGold
	TilePharaoh
	TileNile
	TileFlood
	TileCivAstronomy
	TileCivAgriculture
	TileCivWriting
	TileCivReligion
	TileCivArt
	TileMonFortress
	TileMonObelisk
	TileMonPalace
	TileMonPyramid
	TileMonTemple
	TileMonStatue
	TileMonStepPyramid
	TileMonSphinx
	TileDisPharaoh
	TileDisNile
	TileDisCiv
	TileDisMonument
	TileRa
)

// NoTile is the absent-tile sentinel (e.g. a non-draw action drew nothing).
const NoTile Tile = -1

const (
	// NumTileTypes is the total number of tile types in the game.
	NumTileTypes = int(TileRa) + 1
	// NumCollectibleTileTypes is the number of types a player can hold.
	NumCollectibleTileTypes = int(TileMonSphinx) + 1

	FirstCiv = TileCivAstronomy
	NumCivs  = 5

	FirstMonument = TileMonFortress
	NumMonuments  = 8
)

// TileKind is the broad category of a tile type.
type TileKind int

const (
	KindCollectible TileKind = iota
	KindDisaster
	KindRa
)

func (k TileKind) String() string {
	switch k {
	case KindCollectible:
		return "COLLECTIBLE"
	case KindDisaster:
		return "DISASTER"
	case KindRa:
		return "RA"
	}
	return "UNKNOWN"
}

// TileInfo describes one tile type.
type TileInfo struct {
	// Name is the display name.
	Name string
	// StartingNum is how many start in the bag.
	StartingNum int
	// Keep reports whether the tile survives round-end cleanup.
	Keep bool
	// Kind is the tile category.
	Kind TileKind
}

// TileInfos is the immutable, process-wide tile table, indexed by Tile.
var TileInfos = [NumTileTypes]TileInfo{
	TileGod:            {Name: "Golden God", StartingNum: 8, Keep: false, Kind: KindCollectible},
	TileGold:           {Name: "Gold", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TilePharaoh:        {Name: "Pharaoh", StartingNum: 25, Keep: true, Kind: KindCollectible},
	TileNile:           {Name: "Nile", StartingNum: 25, Keep: true, Kind: KindCollectible},
	TileFlood:          {Name: "Flood", StartingNum: 12, Keep: false, Kind: KindCollectible},
	TileCivAstronomy:   {Name: "Civilization -- Astronomy", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TileCivAgriculture: {Name: "Civilization -- Agriculture", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TileCivWriting:     {Name: "Civilization -- Writing", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TileCivReligion:    {Name: "Civilization -- Religion", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TileCivArt:         {Name: "Civilization -- Art", StartingNum: 5, Keep: false, Kind: KindCollectible},
	TileMonFortress:    {Name: "Monument -- Fortress", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonObelisk:     {Name: "Monument -- Obelisk", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonPalace:      {Name: "Monument -- Palace", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonPyramid:     {Name: "Monument -- Pyramid", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonTemple:      {Name: "Monument -- Temple", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonStatue:      {Name: "Monument -- Statue", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonStepPyramid: {Name: "Monument -- Step Pyramid", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileMonSphinx:      {Name: "Monument -- Sphinx", StartingNum: 5, Keep: true, Kind: KindCollectible},
	TileDisPharaoh:     {Name: "Disaster -- Funeral", StartingNum: 2, Keep: false, Kind: KindDisaster},
	TileDisNile:        {Name: "Disaster -- Drought", StartingNum: 2, Keep: false, Kind: KindDisaster},
	TileDisCiv:         {Name: "Disaster -- War", StartingNum: 4, Keep: false, Kind: KindDisaster},
	TileDisMonument:    {Name: "Disaster -- Earthquake", StartingNum: 2, Keep: false, Kind: KindDisaster},
	TileRa:             {Name: "Ra", StartingNum: 30, Keep: false, Kind: KindRa},
}

// StartingNumTiles is the total number of tiles that start in the bag.
var StartingNumTiles = func() int {
	total := 0
	for _, info := range TileInfos {
		total += info.StartingNum
	}
	return total
}()

func (t Tile) Valid() bool { return t >= 0 && int(t) < NumTileTypes }

func (t Tile) String() string {
	if !t.Valid() {
		return "None"
	}
	return TileInfos[t].Name
}

func (t Tile) IsCollectible() bool { return t.Valid() && TileInfos[t].Kind == KindCollectible }

func (t Tile) IsDisaster() bool { return t.Valid() && TileInfos[t].Kind == KindDisaster }

func (t Tile) IsRa() bool { return t == TileRa }

func (t Tile) IsCiv() bool { return t >= FirstCiv && t < FirstCiv+NumCivs }

func (t Tile) IsMonument() bool { return t >= FirstMonument && t < FirstMonument+NumMonuments }

// temporaryCollectibleTiles lists the collectible types discarded at round end.
func temporaryCollectibleTiles() []Tile {
	var tiles []Tile
	for i, info := range TileInfos {
		if info.Kind == KindCollectible && !info.Keep {
			tiles = append(tiles, Tile(i))
		}
	}
	return tiles
}

func civTiles() []Tile {
	tiles := make([]Tile, NumCivs)
	for i := range tiles {
		tiles[i] = FirstCiv + Tile(i)
	}
	return tiles
}

func monumentTiles() []Tile {
	tiles := make([]Tile, NumMonuments)
	for i := range tiles {
		tiles[i] = FirstMonument + Tile(i)
	}
	return tiles
}
