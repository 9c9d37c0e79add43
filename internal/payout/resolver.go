// Package payout resolves a wheel outcome against a placed bet set.
// Resolution is a pure function; all mutation of balances happens in the
// session layer.
package payout

import (
	"math"
	"sort"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// Resolve computes the payout for one spin. Winning entries record the base
// win per bet; active payout bonuses scale total winnings (never the stake)
// before net gain is computed. A multiplier override for a bet type replaces
// the base multiplier for that type and is exempt from bonus scaling.
//
// A bet set with zero total stake yields ClassificationNone; callers treat
// that as a no-op spin.
func Resolve(outcome domain.Outcome, bets domain.BetSet, bonuses domain.Bonuses) domain.PayoutResult {
	totalStaked := 0
	baseWinnings := 0
	overrideWinnings := 0
	var winning []domain.WinningBet

	for _, betType := range domain.OutsideBetTypes {
		stake := bets.Stakes[betType]
		if stake <= 0 {
			continue
		}
		totalStaked += stake
		if !outsideBetWins(betType, outcome) {
			continue
		}
		multiplier, overridden := effectiveMultiplier(betType, bonuses)
		win := stake * multiplier
		if overridden {
			overrideWinnings += win
		} else {
			baseWinnings += win
		}
		winning = append(winning, domain.WinningBet{Type: betType, Stake: stake, Win: win})
	}

	// Straight bets are evaluated per distinct number, each independently.
	// Iterate in number order so winning-bet entries are deterministic.
	numbers := make([]int, 0, len(bets.Straight))
	for number := range bets.Straight {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	for _, number := range numbers {
		stake := bets.Straight[number]
		if stake <= 0 {
			continue
		}
		totalStaked += stake
		if number != outcome.Number {
			continue
		}
		multiplier, overridden := effectiveMultiplier(domain.BetStraight, bonuses)
		win := stake * multiplier
		if overridden {
			overrideWinnings += win
		} else {
			baseWinnings += win
		}
		winning = append(winning, domain.WinningBet{
			Type:   domain.BetStraight,
			Number: number,
			Stake:  stake,
			Win:    win,
		})
	}

	totalWinnings := baseWinnings + overrideWinnings
	if bonuses.PayoutBonus > 0 && baseWinnings > 0 {
		totalWinnings = int(math.Floor(float64(baseWinnings)*(1+bonuses.PayoutBonus))) + overrideWinnings
	}

	net := totalWinnings - totalStaked

	return domain.PayoutResult{
		TotalWinnings:  totalWinnings,
		TotalStaked:    totalStaked,
		NetGain:        net,
		Classification: classify(net, totalStaked),
		WinningBets:    winning,
	}
}

func effectiveMultiplier(betType domain.BetType, bonuses domain.Bonuses) (int, bool) {
	if m, ok := bonuses.Overrides[betType]; ok && m > 0 {
		return m, true
	}
	if betType == domain.BetStraight {
		return StraightMultiplier, false
	}
	return baseMultipliers[betType], false
}

func outsideBetWins(betType domain.BetType, outcome domain.Outcome) bool {
	switch betType {
	case domain.BetRed:
		return outcome.Color == domain.ColorRed && !outcome.IsZero()
	case domain.BetBlack:
		return outcome.Color == domain.ColorBlack && !outcome.IsZero()
	case domain.BetOdd:
		return outcome.IsOdd && !outcome.IsZero()
	case domain.BetEven:
		return outcome.IsEven && !outcome.IsZero()
	case domain.BetFirst12:
		return outcome.Dozen == domain.DozenFirst
	case domain.BetSecond12:
		return outcome.Dozen == domain.DozenSecond
	case domain.BetThird12:
		return outcome.Dozen == domain.DozenThird
	default:
		return false
	}
}

func classify(net, staked int) domain.Classification {
	switch {
	case staked == 0:
		return domain.ClassificationNone
	case net > 0:
		return domain.ClassificationWin
	case net < 0:
		return domain.ClassificationLoss
	default:
		return domain.ClassificationPush
	}
}
