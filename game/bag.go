package game

import (
	"fmt"
	"hash/fnv"
	"time"

	"golang.org/x/exp/rand"
)

var rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// TileBag holds the tiles still available for draw. The draw order is
// fixed at construction; drawing consumes the head of the undrawn
// suffix unless a specific tile type is requested.
type TileBag struct {
	counts    [NumTileTypes]int
	remaining int
	// order keeps drawn tiles as a dead prefix; the undrawn suffix is
	// order[len(order)-remaining:].
	order []Tile
	hash  uint64
}

// NewTileBag returns a full bag with a randomly shuffled draw order.
func NewTileBag() *TileBag {
	order := make([]Tile, 0, StartingNumTiles)
	for i, info := range TileInfos {
		for n := 0; n < info.StartingNum; n++ {
			order = append(order, Tile(i))
		}
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return NewTileBagFromOrder(order)
}

// NewTileBagFromOrder returns a bag that will draw tiles in the given order.
func NewTileBagFromOrder(order []Tile) *TileBag {
	b := &TileBag{
		remaining: len(order),
		order:     append([]Tile(nil), order...),
	}
	for _, t := range order {
		if !t.Valid() {
			panic(fmt.Sprintf("invalid tile %d in draw order", int(t)))
		}
		b.counts[t]++
	}
	b.rehash()
	return b
}

// rehash recomputes the content hash over the undrawn suffix. Bags that
// will draw the same tiles in the same order hash equal regardless of
// what was drawn before.
func (b *TileBag) rehash() {
	h := fnv.New64a()
	for _, t := range b.undrawn() {
		h.Write([]byte{byte(t)})
	}
	b.hash = h.Sum64()
}

func (b *TileBag) undrawn() []Tile {
	return b.order[len(b.order)-b.remaining:]
}

// Copy returns a deep copy of the bag.
func (b *TileBag) Copy() *TileBag {
	c := *b
	c.order = append([]Tile(nil), b.order...)
	return &c
}

// Hash returns the content hash of the bag.
func (b *TileBag) Hash() uint64 { return b.hash }

// Equal reports whether both bags will draw the same tiles in the same order.
func (b *TileBag) Equal(other *TileBag) bool {
	return b.remaining == other.remaining && b.hash == other.hash
}

// Remaining returns how many tiles are left in the bag.
func (b *TileBag) Remaining() int { return b.remaining }

// Count returns how many tiles of the given type are left.
func (b *TileBag) Count(t Tile) int {
	if !t.Valid() {
		return 0
	}
	return b.counts[t]
}

// Counts returns the per-type tile counts left in the bag.
func (b *TileBag) Counts() [NumTileTypes]int { return b.counts }

// DrawOrder returns a copy of the undrawn draw order.
func (b *TileBag) DrawOrder() []Tile {
	return append([]Tile(nil), b.undrawn()...)
}

// PeekNext returns the next tile to be drawn without drawing it, or
// NoTile if the bag is empty.
func (b *TileBag) PeekNext() Tile {
	if b.remaining == 0 {
		return NoTile
	}
	return b.undrawn()[0]
}

// Draw removes and returns the next tile in the draw order, or NoTile
// if the bag is empty.
func (b *TileBag) Draw() Tile {
	if b.remaining == 0 {
		return NoTile
	}
	t := b.undrawn()[0]
	b.remaining--
	b.counts[t]--
	b.rehash()
	return t
}

// DrawOfType removes a random undrawn occurrence of the given tile type.
func (b *TileBag) DrawOfType(t Tile) (Tile, error) {
	if !t.Valid() || b.counts[t] == 0 {
		return NoTile, fmt.Errorf("bag does not contain tile %v", t)
	}
	occurrence := rng.Intn(b.counts[t]) + 1
	undrawn := b.undrawn()
	for i, cand := range undrawn {
		if cand != t {
			continue
		}
		occurrence--
		if occurrence > 0 {
			continue
		}
		// splice the occurrence out of the undrawn suffix
		start := len(b.order) - b.remaining
		b.order = append(b.order[:start+i], b.order[start+i+1:]...)
		b.remaining--
		b.counts[t]--
		b.rehash()
		return t, nil
	}
	panic(fmt.Sprintf("tile count for %v disagrees with draw order", t))
}

// SetNextTile makes the given tile type the next draw by swapping the
// head of the undrawn suffix with the first undrawn occurrence of the
// type. Returns what the next draw would have been otherwise.
func (b *TileBag) SetNextTile(t Tile) (Tile, error) {
	if !t.Valid() || b.counts[t] == 0 {
		return NoTile, fmt.Errorf("cannot set %v as next draw: not in bag", t)
	}
	undrawn := b.undrawn()
	next := undrawn[0]
	if next == t {
		return t, nil
	}
	for i, cand := range undrawn {
		if cand == t {
			undrawn[0], undrawn[i] = undrawn[i], undrawn[0]
			b.rehash()
			return next, nil
		}
	}
	panic(fmt.Sprintf("tile count for %v disagrees with draw order", t))
}

func (b *TileBag) String() string {
	val := "Bag Contents:\n"
	for i := 0; i < NumTileTypes; i++ {
		val += fmt.Sprintf("%s: %d remaining (%d initially)\n",
			Tile(i), b.counts[i], TileInfos[i].StartingNum)
	}
	return val
}
