package progression

import (
	"math"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// LevelThreshold returns the XP required to clear the given level. Strictly
// increasing for level >= 1, and always >= LevelScalingBase, so the curve
// walk below terminates and never divides by zero.
func LevelThreshold(level int) int {
	return int(math.Floor(LevelScalingBase * math.Pow(float64(level), LevelScalingExponent)))
}

// TotalXPForLevel returns the cumulative XP needed to have cleared the given
// level, i.e. the sum of all thresholds up to and including it.
func TotalXPForLevel(level int) int {
	total := 0
	for l := 1; l <= level; l++ {
		total += LevelThreshold(l)
	}
	return total
}

// Curve maps total XP to level information, memoizing lookups with an
// expirable LRU.
type Curve struct {
	cache *expirable.LRU[int, domain.LevelInfo]
}

// NewCurve creates a level curve with a warm cache.
func NewCurve() *Curve {
	return &Curve{
		cache: expirable.NewLRU[int, domain.LevelInfo](curveCacheSize, nil, curveCacheTTL),
	}
}

// LevelFor returns the highest level whose cumulative threshold is within
// totalXP, plus progress into the current level. Levels start at 1.
func (c *Curve) LevelFor(totalXP int) domain.LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}
	if info, ok := c.cache.Get(totalXP); ok {
		return info
	}

	level := 1
	needed := LevelThreshold(level)
	accumulated := 0
	for accumulated+needed <= totalXP {
		accumulated += needed
		level++
		needed = LevelThreshold(level)
	}

	into := totalXP - accumulated
	info := domain.LevelInfo{
		Level:           level,
		CurrentXP:       into,
		XPToNextLevel:   needed - into,
		ProgressPercent: int(math.Round(float64(into) / float64(needed) * 100)),
	}
	c.cache.Add(totalXP, info)
	return info
}
