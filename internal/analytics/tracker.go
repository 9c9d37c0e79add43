// Package analytics folds resolved spins into running session statistics.
// Update is a pure function so sequences of spins can be replayed and
// asserted deterministically.
package analytics

import (
	"math"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// Update folds one payout result into the session counters and returns the
// new state. A zero-stake resolution is a no-op and returns the input
// unchanged. A push is counted in the totals but neither extends nor resets
// the current streak.
func Update(state domain.AnalyticsState, result domain.PayoutResult) domain.AnalyticsState {
	if result.TotalStaked == 0 {
		return state
	}

	next := state
	next.TotalSpins++
	next.TotalWagered += result.TotalStaked
	next.TotalWon += result.TotalWinnings

	switch result.Classification {
	case domain.ClassificationWin:
		next.Wins++
		if result.NetGain > next.BiggestWin {
			next.BiggestWin = result.NetGain
		}
		if next.CurrentStreakType == domain.StreakWin {
			next.CurrentStreak++
		} else {
			next.CurrentStreak = 1
			next.CurrentStreakType = domain.StreakWin
		}
		if next.CurrentStreak > next.LongestWinStreak {
			next.LongestWinStreak = next.CurrentStreak
		}
	case domain.ClassificationLoss:
		next.Losses++
		if next.CurrentStreakType == domain.StreakLoss {
			next.CurrentStreak++
		} else {
			next.CurrentStreak = 1
			next.CurrentStreakType = domain.StreakLoss
		}
		if next.CurrentStreak > next.LongestLossStreak {
			next.LongestLossStreak = next.CurrentStreak
		}
	case domain.ClassificationPush:
		next.Pushes++
	}

	return next
}

// ResetStreak clears the current streak without touching the cumulative
// counters. Used when an event effect demands a streak reset.
func ResetStreak(state domain.AnalyticsState) domain.AnalyticsState {
	next := state
	next.CurrentStreak = 0
	next.CurrentStreakType = domain.StreakNone
	return next
}

// WinRate returns the session win percentage rounded to the nearest integer.
func WinRate(state domain.AnalyticsState) int {
	if state.TotalSpins == 0 {
		return 0
	}
	return int(math.Round(float64(state.Wins) / float64(state.TotalSpins) * 100))
}
