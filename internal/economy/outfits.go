package economy

import (
	"fmt"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// Outfit tiers.
var (
	OutfitTier1 = Tier{UnlockLevel: 1, Label: "Lounge Standard"}
	OutfitTier2 = Tier{UnlockLevel: 5, Label: "After Hours"}
	OutfitTier3 = Tier{UnlockLevel: 10, Label: "80s Icon"}
)

// Outfit is one dealer outfit; purely cosmetic, single equip slot.
type Outfit struct {
	ID          string
	Name        string
	Description string
	Tier        Tier
	Price       int
}

// OutfitCatalog is the dealer wardrobe, keyed by outfit ID.
var OutfitCatalog = map[string]Outfit{
	"outfit_blazer":       {ID: "outfit_blazer", Name: "Velvet Blazer", Description: "Classic lounge elegance", Tier: OutfitTier1, Price: 200},
	"outfit_cocktail":     {ID: "outfit_cocktail", Name: "Silk Cocktail", Description: "Smooth silk finish", Tier: OutfitTier1, Price: 250},
	"outfit_croupier":     {ID: "outfit_croupier", Name: "Classic Croupier", Description: "Traditional casino style", Tier: OutfitTier1, Price: 180},
	"outfit_neon_vest":    {ID: "outfit_neon_vest", Name: "Neon Trim Vest", Description: "Subtle glow accents", Tier: OutfitTier1, Price: 300},
	"outfit_jazz_dress":   {ID: "outfit_jazz_dress", Name: "Midnight Jazz Dress", Description: "After-hours sophistication", Tier: OutfitTier2, Price: 450},
	"outfit_street_jacket": {ID: "outfit_street_jacket", Name: "Leather Street Jacket", Description: "Urban edge", Tier: OutfitTier2, Price: 500},
	"outfit_high_roller":  {ID: "outfit_high_roller", Name: "High Roller Suit", Description: "Luxury redefined", Tier: OutfitTier2, Price: 550},
	"outfit_golden_lounge": {ID: "outfit_golden_lounge", Name: "Golden Lounge Gown", Description: "Pure elegance", Tier: OutfitTier2, Price: 600},
	"outfit_city_pop":     {ID: "outfit_city_pop", Name: "City Pop Stage", Description: "80s superstar vibes", Tier: OutfitTier3, Price: 800},
	"outfit_bubble_gold":  {ID: "outfit_bubble_gold", Name: "Bubble Economy Gold", Description: "Excess and luxury", Tier: OutfitTier3, Price: 1000},
}

// OutfitPurchaseResult reports a successful outfit purchase.
type OutfitPurchaseResult struct {
	Outfit     Outfit
	NewBalance int
	State      domain.OutfitState
}

// PurchaseOutfit validates and executes an outfit purchase with the same
// guard order as the shop.
func PurchaseOutfit(outfitID string, balance, level int, state domain.OutfitState) (OutfitPurchaseResult, error) {
	outfit, ok := OutfitCatalog[outfitID]
	if !ok {
		return OutfitPurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, outfitID)
	}
	if state.Owns(outfitID) {
		return OutfitPurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, outfitID)
	}
	if level < outfit.Tier.UnlockLevel {
		return OutfitPurchaseResult{}, fmt.Errorf("%w: %s requires level %d", domain.ErrLevelLocked, outfitID, outfit.Tier.UnlockLevel)
	}
	if balance < outfit.Price {
		return OutfitPurchaseResult{}, fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, outfitID, outfit.Price, balance)
	}

	next := state
	next.OwnedOutfits = append(append([]string(nil), state.OwnedOutfits...), outfitID)

	return OutfitPurchaseResult{
		Outfit:     outfit,
		NewBalance: balance - outfit.Price,
		State:      next,
	}, nil
}

// EquipOutfit selects an owned outfit; the dealer wears exactly one.
func EquipOutfit(outfitID string, state domain.OutfitState) (domain.OutfitState, error) {
	if _, ok := OutfitCatalog[outfitID]; !ok {
		return state, fmt.Errorf("%w: %s", domain.ErrItemNotFound, outfitID)
	}
	if !state.Owns(outfitID) {
		return state, fmt.Errorf("%w: %s", domain.ErrNotOwned, outfitID)
	}
	next := state
	next.EquippedOutfit = outfitID
	return next, nil
}
