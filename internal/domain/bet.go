package domain

// BetType identifies one of the supported outside bets.
type BetType string

const (
	BetRed      BetType = "red"
	BetBlack    BetType = "black"
	BetOdd      BetType = "odd"
	BetEven     BetType = "even"
	BetFirst12  BetType = "first12"
	BetSecond12 BetType = "second12"
	BetThird12  BetType = "third12"
	// BetStraight is used in winning-bet entries; straight stakes live in
	// BetSet.Straight keyed by number.
	BetStraight BetType = "straight"
)

// OutsideBetTypes lists every bet type placed by key (everything except straight).
var OutsideBetTypes = []BetType{
	BetRed, BetBlack, BetOdd, BetEven,
	BetFirst12, BetSecond12, BetThird12,
}

// BetSet is the set of stakes a player has placed before a spin.
// A zero stake is equivalent to an absent bet.
type BetSet struct {
	Stakes   map[BetType]int `json:"stakes,omitempty"`
	Straight map[int]int     `json:"straight,omitempty"`
}

// NewBetSet returns an empty bet set ready for placement.
func NewBetSet() BetSet {
	return BetSet{
		Stakes:   make(map[BetType]int),
		Straight: make(map[int]int),
	}
}

// TotalStake sums every placed stake, outside and straight.
func (b BetSet) TotalStake() int {
	total := 0
	for _, stake := range b.Stakes {
		total += stake
	}
	for _, stake := range b.Straight {
		total += stake
	}
	return total
}

// IsEmpty reports whether no positive stake has been placed.
func (b BetSet) IsEmpty() bool {
	return b.TotalStake() == 0
}

// Clone returns a deep copy, so callers can mutate placements without
// aliasing the original maps.
func (b BetSet) Clone() BetSet {
	c := NewBetSet()
	for t, stake := range b.Stakes {
		if stake != 0 {
			c.Stakes[t] = stake
		}
	}
	for n, stake := range b.Straight {
		if stake != 0 {
			c.Straight[n] = stake
		}
	}
	return c
}
