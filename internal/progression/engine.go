// Package progression converts spin results into experience, levels and
// cosmetic entitlements.
package progression

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// LevelUpResult reports what a single XP application changed.
type LevelUpResult struct {
	LeveledUp  bool
	OldLevel   int
	NewLevel   int
	NewUnlocks []Cosmetic
}

// Engine owns the level curve and the unlock rules. It holds no player
// state; ProgressionState is threaded through calls by the session.
type Engine struct {
	curve *Curve
}

// NewEngine creates a progression engine with a fresh curve cache.
func NewEngine() *Engine {
	return &Engine{curve: NewCurve()}
}

// LevelFor exposes the memoized curve lookup.
func (e *Engine) LevelFor(totalXP int) domain.LevelInfo {
	return e.curve.LevelFor(totalXP)
}

// ApplySpinXP adds a spin's XP award, counts the spin, and grants any newly
// gated cosmetics.
func (e *Engine) ApplySpinXP(state domain.ProgressionState, award int) (domain.ProgressionState, LevelUpResult) {
	next, result := e.GrantXP(state, award)
	next.TotalSpins++
	return next, result
}

// GrantXP adds a non-negative XP amount without counting a spin (event
// effects grant XP outside the spin award). One grant may cross several
// level boundaries at once; every gate passed on the way is granted.
func (e *Engine) GrantXP(state domain.ProgressionState, award int) (domain.ProgressionState, LevelUpResult) {
	if award < 0 {
		award = 0
	}

	next := state
	next.UnlockedCosmetics = append([]string(nil), state.UnlockedCosmetics...)
	next.TotalXP += award

	before := e.curve.LevelFor(state.TotalXP)
	after := e.curve.LevelFor(next.TotalXP)

	result := LevelUpResult{
		LeveledUp: after.Level > before.Level,
		OldLevel:  before.Level,
		NewLevel:  after.Level,
	}

	if result.LeveledUp {
		for _, cosmetic := range UnlockedAt(after.Level) {
			if !next.HasCosmetic(cosmetic.ID) {
				next.UnlockedCosmetics = append(next.UnlockedCosmetics, cosmetic.ID)
				result.NewUnlocks = append(result.NewUnlocks, cosmetic)
			}
		}
	}

	return next, result
}
