package progression

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// Cosmetic is a level-gated cosmetic entitlement granted automatically on
// level-up. Purchasable cosmetics live in the shop catalog instead.
type Cosmetic struct {
	ID            string
	Name          string
	Category      domain.CosmeticCategory
	RequiredLevel int
}

// Cosmetics is the full level-gated catalog: table skins, border styles and
// dealer personalities. The shared "default" entry is unlocked from level 1.
var Cosmetics = []Cosmetic{
	{ID: "default", Name: "Classic Green", Category: domain.CosmeticTable, RequiredLevel: 1},
	{ID: "table_ocean", Name: "Deep Ocean", Category: domain.CosmeticTable, RequiredLevel: 5},
	{ID: "table_sunset", Name: "Sunset Blvd", Category: domain.CosmeticTable, RequiredLevel: 10},
	{ID: "table_neon", Name: "Neon Tokyo", Category: domain.CosmeticTable, RequiredLevel: 15},
	{ID: "table_gold", Name: "Golden Fortune", Category: domain.CosmeticTable, RequiredLevel: 25},

	{ID: "border_pink", Name: "Neon Pink", Category: domain.CosmeticBorder, RequiredLevel: 3},
	{ID: "border_cyan", Name: "Cyber Cyan", Category: domain.CosmeticBorder, RequiredLevel: 8},
	{ID: "border_gold", Name: "Royal Gold", Category: domain.CosmeticBorder, RequiredLevel: 20},
	{ID: "border_rainbow", Name: "Rainbow", Category: domain.CosmeticBorder, RequiredLevel: 30},

	{ID: "dealer_sassy", Name: "Sassy", Category: domain.CosmeticDealer, RequiredLevel: 7},
	{ID: "dealer_wise", Name: "Wise Old", Category: domain.CosmeticDealer, RequiredLevel: 12},
	{ID: "dealer_hype", Name: "Hype Man", Category: domain.CosmeticDealer, RequiredLevel: 18},
}

// UnlockedAt returns every cosmetic whose level gate is met.
func UnlockedAt(level int) []Cosmetic {
	var unlocked []Cosmetic
	for _, c := range Cosmetics {
		if c.RequiredLevel <= level {
			unlocked = append(unlocked, c)
		}
	}
	return unlocked
}

// NextUnlock returns the lowest-level locked cosmetic in a category, or nil
// when the category is exhausted.
func NextUnlock(level int, category domain.CosmeticCategory) *Cosmetic {
	var next *Cosmetic
	for i := range Cosmetics {
		c := Cosmetics[i]
		if c.Category != category || c.RequiredLevel <= level {
			continue
		}
		if next == nil || c.RequiredLevel < next.RequiredLevel {
			next = &c
		}
	}
	return next
}
