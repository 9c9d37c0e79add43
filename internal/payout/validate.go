package payout

import (
	"fmt"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/wheel"
)

// ValidateBetSet rejects malformed bet sets before they ever reach the
// resolver: negative stakes, unknown outside-bet keys and out-of-range
// straight numbers are all placement-time errors.
func ValidateBetSet(bets domain.BetSet) error {
	for betType, stake := range bets.Stakes {
		if !isKnownBetType(betType) {
			return fmt.Errorf("%w: unknown bet type %q", domain.ErrInvalidBet, betType)
		}
		if stake < 0 {
			return fmt.Errorf("%w: negative stake %d on %s", domain.ErrInvalidBet, stake, betType)
		}
	}
	for number, stake := range bets.Straight {
		if number < 0 || number > wheel.MaxNumber {
			return fmt.Errorf("%w: straight number %d out of range", domain.ErrInvalidBet, number)
		}
		if stake < 0 {
			return fmt.Errorf("%w: negative stake %d on straight %d", domain.ErrInvalidBet, stake, number)
		}
	}
	return nil
}

// CheckFunds refuses a bet set whose total stake exceeds the balance.
func CheckFunds(bets domain.BetSet, balance int) error {
	if total := bets.TotalStake(); total > balance {
		return fmt.Errorf("%w: staked %d, balance %d", domain.ErrInsufficientFunds, total, balance)
	}
	return nil
}

func isKnownBetType(betType domain.BetType) bool {
	for _, known := range domain.OutsideBetTypes {
		if betType == known {
			return true
		}
	}
	return false
}
