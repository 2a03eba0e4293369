package game

import "fmt"

// Action identifies a move a player can make. The numeric values are
// stable: they appear in move-history logs.
type Action int

const (
	ActionDraw    Action = 0
	ActionAuction Action = 1

	ActionGod1 Action = 2
	ActionGod2 Action = 3
	ActionGod3 Action = 4
	ActionGod4 Action = 5
	ActionGod5 Action = 6
	ActionGod6 Action = 7
	ActionGod7 Action = 8
	ActionGod8 Action = 9

	ActionBid1       Action = 10
	ActionBid2       Action = 11
	ActionBid3       Action = 12
	ActionBid4       Action = 13
	ActionBidNothing Action = 14

	ActionDiscardAstronomy   Action = 15
	ActionDiscardAgriculture Action = 16
	ActionDiscardWriting     Action = 17
	ActionDiscardReligion    Action = 18
	ActionDiscardArt         Action = 19
	ActionDiscardFortress    Action = 20
	ActionDiscardObelisk     Action = 21
	ActionDiscardPalace      Action = 22
	ActionDiscardPyramid     Action = 23
	ActionDiscardTemple      Action = 24
	ActionDiscardStatue      Action = 25
	ActionDiscardStepPyramid Action = 26
	ActionDiscardSphinx      Action = 27
)

// NumActions is the number of distinct actions.
const NumActions = int(ActionDiscardSphinx) + 1

var actionDescriptions = [NumActions]string{
	ActionDraw:               "Draw a Tile",
	ActionAuction:            "Start an Auction",
	ActionGod1:               "Golden God -- Take the 1st auction tile",
	ActionGod2:               "Golden God -- Take the 2nd auction tile",
	ActionGod3:               "Golden God -- Take the 3rd auction tile",
	ActionGod4:               "Golden God -- Take the 4th auction tile",
	ActionGod5:               "Golden God -- Take the 5th auction tile",
	ActionGod6:               "Golden God -- Take the 6th auction tile",
	ActionGod7:               "Golden God -- Take the 7th auction tile",
	ActionGod8:               "Golden God -- Take the 8th auction tile",
	ActionBid1:               "Bid your lowest sun",
	ActionBid2:               "Bid your second lowest sun",
	ActionBid3:               "Bid your third lowest sun",
	ActionBid4:               "Bid your fourth lowest sun",
	ActionBidNothing:         "Pass without bidding",
	ActionDiscardAstronomy:   "Discard the ASTRONOMY civilization tile",
	ActionDiscardAgriculture: "Discard the AGRICULTURE civilization tile",
	ActionDiscardWriting:     "Discard the WRITING civilization tile",
	ActionDiscardReligion:    "Discard the RELIGION civilization tile",
	ActionDiscardArt:         "Discard the ART civilization tile",
	ActionDiscardFortress:    "Discard the FORT monument tile",
	ActionDiscardObelisk:     "Discard the OBELISK monument tile",
	ActionDiscardPalace:      "Discard the PALACE monument tile",
	ActionDiscardPyramid:     "Discard the PYRAMID monument tile",
	ActionDiscardTemple:      "Discard the TEMPLE monument tile",
	ActionDiscardStatue:      "Discard the STATUE monument tile",
	ActionDiscardStepPyramid: "Discard the STEP PYRAMID monument tile",
	ActionDiscardSphinx:      "Discard the SPHINX monument tile",
}

func (a Action) Valid() bool { return a >= 0 && int(a) < NumActions }

// Description returns a human-readable description of the action.
func (a Action) Description() string {
	if !a.Valid() {
		return fmt.Sprintf("Unknown action %d", int(a))
	}
	return actionDescriptions[a]
}

func (a Action) String() string { return a.Description() }

func (a Action) IsGodTake() bool { return a >= ActionGod1 && a <= ActionGod8 }

func (a Action) IsBid() bool { return a >= ActionBid1 && a <= ActionBid4 }

func (a Action) IsCivDiscard() bool {
	return a >= ActionDiscardAstronomy && a <= ActionDiscardArt
}

func (a Action) IsMonumentDiscard() bool {
	return a >= ActionDiscardFortress && a <= ActionDiscardSphinx
}

// GodTileIndex returns the auction-pile position a god take targets.
func (a Action) GodTileIndex() int {
	if !a.IsGodTake() {
		panic(fmt.Sprintf("action %d is not a god take", int(a)))
	}
	return int(a - ActionGod1)
}

// BidSunIndex returns which of the player's usable suns is bid, lowest first.
func (a Action) BidSunIndex() int {
	if !a.IsBid() {
		panic(fmt.Sprintf("action %d is not a bid", int(a)))
	}
	return int(a - ActionBid1)
}

// DiscardTile returns the tile a discard action gives up.
func (a Action) DiscardTile() Tile {
	switch {
	case a.IsCivDiscard():
		return FirstCiv + Tile(a-ActionDiscardAstronomy)
	case a.IsMonumentDiscard():
		return FirstMonument + Tile(a-ActionDiscardFortress)
	}
	panic(fmt.Sprintf("action %d is not a discard", int(a)))
}
