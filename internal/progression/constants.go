package progression

import "time"

// XP tuning. Win and straight bonuses multiply; streak bonuses add per step
// beyond the first.
const (
	BaseXPPerSpin           = 10
	WinBonusMultiplier      = 1.5
	StraightBonusMultiplier = 5.0
	StreakBonusPerStep      = 2
)

// Level curve tuning: the XP required to clear level L is
// floor(LevelScalingBase * L^LevelScalingExponent).
const (
	LevelScalingBase     = 100.0
	LevelScalingExponent = 1.5
)

// Curve cache sizing. Level lookups happen once per spin with monotonically
// growing totals, so a small LRU absorbs the repeated walk up the curve.
const (
	curveCacheSize = 512
	curveCacheTTL  = 10 * time.Minute
)
