package domain

// StackingPolicy decides how payout bonuses from simultaneously active
// modifiers combine.
type StackingPolicy string

const (
	StackAdditive       StackingPolicy = "additive"
	StackMultiplicative StackingPolicy = "multiplicative"
)

// Bonuses is the aggregated view of the active modifiers for one spin.
// The payout resolver consumes PayoutBonus and Overrides; the progression
// engine consumes StreakBonus and NoXP.
type Bonuses struct {
	StreakBonus int     `json:"streak_bonus"`
	PayoutBonus float64 `json:"payout_bonus"`
	NoXP        bool    `json:"no_xp"`
	// Overrides replaces the base multiplier for a bet type; it does not
	// stack with PayoutBonus scaling for that entry.
	Overrides map[BetType]int `json:"overrides,omitempty"`
}
