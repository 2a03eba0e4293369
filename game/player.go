package game

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// PlayerState tracks one player's collection, points, and suns.
type PlayerState struct {
	name       string
	idx        int
	collection [NumCollectibleTileTypes]int
	points     int
	// usableSun and unusableSun are kept sorted ascending.
	usableSun   []int
	unusableSun []int
}

// NewPlayerState returns a player with the given starting suns and points.
func NewPlayerState(name string, idx int, startingSun []int, startingPoints int) *PlayerState {
	usable := append([]int(nil), startingSun...)
	sort.Ints(usable)
	return &PlayerState{
		name:      name,
		idx:       idx,
		points:    startingPoints,
		usableSun: usable,
	}
}

// Copy returns a deep copy of the player state.
func (p *PlayerState) Copy() *PlayerState {
	c := *p
	c.usableSun = append([]int(nil), p.usableSun...)
	c.unusableSun = append([]int(nil), p.unusableSun...)
	return &c
}

// Hash returns a content hash over collection, points, and suns.
func (p *PlayerState) Hash() uint64 {
	h := fnv.New64a()
	for _, n := range p.collection {
		h.Write([]byte{byte(n)})
	}
	h.Write([]byte{byte(p.points >> 8), byte(p.points)})
	h.Write([]byte{0xff})
	for _, s := range p.usableSun {
		h.Write([]byte{byte(s)})
	}
	h.Write([]byte{0xff})
	for _, s := range p.unusableSun {
		h.Write([]byte{byte(s)})
	}
	return h.Sum64()
}

// Equal reports whether two player states have the same collection,
// points, and suns. Names are not compared.
func (p *PlayerState) Equal(other *PlayerState) bool {
	return p.Hash() == other.Hash()
}

func (p *PlayerState) Name() string { return p.name }

func (p *PlayerState) Index() int { return p.idx }

func (p *PlayerState) Points() int { return p.points }

// AddPoints adds points to the player; points may be negative.
func (p *PlayerState) AddPoints(points int) { p.points += points }

// Collection returns the player's per-type tile counts.
func (p *PlayerState) Collection() [NumCollectibleTileTypes]int { return p.collection }

// CountOf returns how many tiles of the given type the player holds.
func (p *PlayerState) CountOf(t Tile) int {
	if !t.IsCollectible() {
		return 0
	}
	return p.collection[t]
}

// AddTiles adds tiles to the player's collection.
func (p *PlayerState) AddTiles(tiles []Tile) {
	for _, t := range tiles {
		if !t.IsCollectible() {
			panic(fmt.Sprintf("cannot add non-collectible tile %v to a collection", t))
		}
		p.collection[t]++
	}
}

// RemoveSingleTiles removes one tile per listed type, skipping types the
// player does not hold.
func (p *PlayerState) RemoveSingleTiles(tiles []Tile) {
	for _, t := range tiles {
		if t.IsCollectible() && p.collection[t] > 0 {
			p.collection[t]--
		}
	}
}

// RemoveAllTiles removes every tile of each listed type.
func (p *PlayerState) RemoveAllTiles(tiles []Tile) {
	for _, t := range tiles {
		if t.IsCollectible() {
			p.collection[t] = 0
		}
	}
}

// UsableSun returns the suns the player can still bid, ascending.
func (p *PlayerState) UsableSun() []int {
	return append([]int(nil), p.usableSun...)
}

// UnusableSun returns the suns the player has already bid, ascending.
func (p *PlayerState) UnusableSun() []int {
	return append([]int(nil), p.unusableSun...)
}

// AllSun returns the merged multiset of usable and unusable suns.
func (p *PlayerState) AllSun() []int {
	all := append(p.UsableSun(), p.unusableSun...)
	sort.Ints(all)
	return all
}

// SunTotal returns the sum of all the player's suns.
func (p *PlayerState) SunTotal() int {
	total := 0
	for _, s := range p.usableSun {
		total += s
	}
	for _, s := range p.unusableSun {
		total += s
	}
	return total
}

// ExchangeSun gives away a usable sun and receives another face down.
func (p *PlayerState) ExchangeSun(sunToGive, sunToReceive int) {
	for i, s := range p.usableSun {
		if s == sunToGive {
			p.usableSun = append(p.usableSun[:i], p.usableSun[i+1:]...)
			p.unusableSun = append(p.unusableSun, sunToReceive)
			sort.Ints(p.unusableSun)
			return
		}
	}
	panic(fmt.Sprintf("player %q has no usable sun %d", p.name, sunToGive))
}

// MakeAllSunsUsable flips the player's bid suns face up for a new round.
func (p *PlayerState) MakeAllSunsUsable() {
	p.usableSun = append(p.usableSun, p.unusableSun...)
	p.unusableSun = nil
	sort.Ints(p.usableSun)
}

// Serialize returns a data-only snapshot of the player.
func (p *PlayerState) Serialize() SerializedPlayerState {
	collection := []Tile{}
	for i, count := range p.collection {
		for n := 0; n < count; n++ {
			collection = append(collection, Tile(i))
		}
	}
	return SerializedPlayerState{
		PlayerName:  p.name,
		Points:      p.points,
		UsableSun:   p.UsableSun(),
		UnusableSun: p.UnusableSun(),
		Collection:  collection,
	}
}
