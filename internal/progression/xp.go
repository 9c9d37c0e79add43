package progression

import (
	"math"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// XPEarned computes the XP award for one resolved spin.
//
// Base award, multiplied by the win bonus on a winning spin, multiplied again
// by the straight bonus when a straight bet hit, plus an additive bonus per
// streak step beyond the first. An active no-XP modifier forces the award to
// zero regardless of everything else.
func XPEarned(result domain.PayoutResult, streakLength int, bonuses domain.Bonuses) int {
	if bonuses.NoXP {
		return 0
	}

	xp := float64(BaseXPPerSpin)
	if result.IsWin() {
		xp *= WinBonusMultiplier
	}
	if result.StraightHit() {
		xp *= StraightBonusMultiplier
	}
	if streakLength > 1 {
		perStep := StreakBonusPerStep + bonuses.StreakBonus
		xp += float64((streakLength - 1) * perStep)
	}

	return int(math.Floor(xp))
}
