package session

import (
	"context"
	"fmt"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/economy"
	"github.com/kairokome/waifu-roulette-lounge/internal/progression"
	"github.com/kairokome/waifu-roulette-lounge/internal/storage"
)

// Shop returns a copy of the shop state.
func (s *Session) Shop() domain.ShopState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shop.Clone()
}

// Outfits returns the dealer wardrobe state.
func (s *Session) Outfits() domain.OutfitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outfits
}

// Achievements returns the earned badge state.
func (s *Session) Achievements() domain.AchievementState {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.achievements
	next.Unlocked = append([]string(nil), s.achievements.Unlocked...)
	return next
}

// PurchaseItem buys a shop item against the current bankroll and level,
// persisting the new shop and economy state on success.
func (s *Session) PurchaseItem(ctx context.Context, itemID string) (economy.PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level := s.progEngine.LevelFor(s.prog.TotalXP).Level
	result, err := economy.Purchase(itemID, s.bankroll, level, s.shop)
	if err != nil {
		return economy.PurchaseResult{}, err
	}

	s.bankroll = result.NewBalance
	s.shop = result.State
	s.persist(ctx, storage.KeyShop, s.shop)
	s.persist(ctx, storage.KeyEconomy, economyBlob{Bankroll: s.bankroll, History: s.history, Analytics: s.analytics})

	s.log(ctx).Info("shop purchase",
		"item", itemID, "price", result.Item.Price, "bankroll", s.bankroll)
	return result, nil
}

// EquipItem selects an owned shop item.
func (s *Session) EquipItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := economy.Equip(itemID, s.shop)
	if err != nil {
		return err
	}
	s.shop = next
	s.persist(ctx, storage.KeyShop, s.shop)
	return nil
}

// PurchaseOutfit buys a dealer outfit.
func (s *Session) PurchaseOutfit(ctx context.Context, outfitID string) (economy.OutfitPurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level := s.progEngine.LevelFor(s.prog.TotalXP).Level
	result, err := economy.PurchaseOutfit(outfitID, s.bankroll, level, s.outfits)
	if err != nil {
		return economy.OutfitPurchaseResult{}, err
	}

	s.bankroll = result.NewBalance
	s.outfits = result.State
	s.persist(ctx, storage.KeyOutfits, s.outfits)
	s.persist(ctx, storage.KeyEconomy, economyBlob{Bankroll: s.bankroll, History: s.history, Analytics: s.analytics})

	s.log(ctx).Info("outfit purchase",
		"outfit", outfitID, "price", result.Outfit.Price, "bankroll", s.bankroll)
	return result, nil
}

// EquipOutfit dresses the dealer in an owned outfit.
func (s *Session) EquipOutfit(ctx context.Context, outfitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := economy.EquipOutfit(outfitID, s.outfits)
	if err != nil {
		return err
	}
	s.outfits = next
	s.persist(ctx, storage.KeyOutfits, s.outfits)
	return nil
}

// SelectCosmetic equips a level-gated cosmetic into its category slot. The
// cosmetic must already be unlocked through progression.
func (s *Session) SelectCosmetic(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cosmetic *progression.Cosmetic
	for i := range progression.Cosmetics {
		if progression.Cosmetics[i].ID == id {
			cosmetic = &progression.Cosmetics[i]
			break
		}
	}
	if cosmetic == nil {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if !s.prog.HasCosmetic(id) {
		return fmt.Errorf("%w: %s", domain.ErrNotOwned, id)
	}

	switch cosmetic.Category {
	case domain.CosmeticTable:
		s.prog.SelectedTable = id
	case domain.CosmeticBorder:
		s.prog.SelectedBorder = id
	case domain.CosmeticDealer:
		s.prog.SelectedDealer = id
	}
	s.persist(ctx, storage.KeyProgression, s.prog)
	return nil
}
