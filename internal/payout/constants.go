package payout

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// Base payout multipliers on stake. The multiplier includes the return of
// the original stake, so an even-money bet pays 2x.
const (
	EvenMoneyMultiplier = 2
	DozenMultiplier     = 3
	StraightMultiplier  = 36 // 35:1 plus the stake back
)

// baseMultipliers maps every outside bet type to its base multiplier.
var baseMultipliers = map[domain.BetType]int{
	domain.BetRed:      EvenMoneyMultiplier,
	domain.BetBlack:    EvenMoneyMultiplier,
	domain.BetOdd:      EvenMoneyMultiplier,
	domain.BetEven:     EvenMoneyMultiplier,
	domain.BetFirst12:  DozenMultiplier,
	domain.BetSecond12: DozenMultiplier,
	domain.BetThird12:  DozenMultiplier,
}
