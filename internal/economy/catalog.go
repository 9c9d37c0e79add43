package economy

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// Tier gates a group of catalog entries behind a level.
type Tier struct {
	UnlockLevel int
	Label       string
}

// Shop tiers.
var (
	Tier1 = Tier{UnlockLevel: 2, Label: "Tier 1"}
	Tier2 = Tier{UnlockLevel: 5, Label: "Tier 2"}
	Tier3 = Tier{UnlockLevel: 10, Label: "Tier 3"}
	Tier4 = Tier{UnlockLevel: 15, Label: "Tier 4"}
)

// ShopItem is one purchasable catalog entry.
type ShopItem struct {
	ID          string
	Name        string
	Description string
	Type        domain.ItemType
	Tier        Tier
	Price       int
}

// ShopCatalog is the full purchasable inventory, keyed by item ID.
var ShopCatalog = map[string]ShopItem{
	"table_ocean": {
		ID: "table_ocean", Name: "Deep Ocean", Description: "Calm blue waters",
		Type: domain.ItemTableSkin, Tier: Tier1, Price: 200,
	},
	"table_sunset": {
		ID: "table_sunset", Name: "Sunset Blvd", Description: "Warm evening colors",
		Type: domain.ItemTableSkin, Tier: Tier2, Price: 350,
	},
	"table_neon": {
		ID: "table_neon", Name: "Neon Tokyo", Description: "Vibrant purple glow",
		Type: domain.ItemTableSkin, Tier: Tier3, Price: 600,
	},
	"table_gold": {
		ID: "table_gold", Name: "Golden Fortune", Description: "Luxury gold finish",
		Type: domain.ItemTableSkin, Tier: Tier4, Price: 1200,
	},
	"border_pink": {
		ID: "border_pink", Name: "Neon Pink", Description: "Hot pink glow",
		Type: domain.ItemBorderStyle, Tier: Tier1, Price: 150,
	},
	"border_cyan": {
		ID: "border_cyan", Name: "Cyber Cyan", Description: "Electric blue",
		Type: domain.ItemBorderStyle, Tier: Tier2, Price: 400,
	},
	"border_gold": {
		ID: "border_gold", Name: "Royal Gold", Description: "Regal golden edge",
		Type: domain.ItemBorderStyle, Tier: Tier3, Price: 650,
	},
	"item_cassette": {
		ID: "item_cassette", Name: "Cassette Charm", Description: "80s music vibes",
		Type: domain.ItemCosmeticItem, Tier: Tier1, Price: 120,
	},
	"item_ramen": {
		ID: "item_ramen", Name: "Ramen Pass", Description: "Free ramen coupon",
		Type: domain.ItemCosmeticItem, Tier: Tier1, Price: 180,
	},
	"item_neon_tag": {
		ID: "item_neon_tag", Name: "Shibuya Neon Tag", Description: "Glowing city tag",
		Type: domain.ItemCosmeticItem, Tier: Tier2, Price: 260,
	},
	"item_vinyl": {
		ID: "item_vinyl", Name: "City Pop Vinyl", Description: "Rare collector's item",
		Type: domain.ItemCosmeticItem, Tier: Tier3, Price: 400,
	},
	"item_watch": {
		ID: "item_watch", Name: "Bubble Era Watch", Description: "Luxury timepiece",
		Type: domain.ItemCosmeticItem, Tier: Tier4, Price: 700,
	},
	"item_banner": {
		ID: "item_banner", Name: "Midnight Kanji", Description: "Mysterious banner",
		Type: domain.ItemCosmeticItem, Tier: Tier4, Price: 950,
	},
}

// AvailableItems returns catalog entries whose tier gate is met.
func AvailableItems(level int) []ShopItem {
	var out []ShopItem
	for _, item := range ShopCatalog {
		if item.Tier.UnlockLevel <= level {
			out = append(out, item)
		}
	}
	return out
}

// LockedItems returns catalog entries still behind a level gate.
func LockedItems(level int) []ShopItem {
	var out []ShopItem
	for _, item := range ShopCatalog {
		if item.Tier.UnlockLevel > level {
			out = append(out, item)
		}
	}
	return out
}
