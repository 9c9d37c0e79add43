// Package economy implements the cosmetic shop and outfit ledgers: guarded
// purchase and equip transactions against chip balance and level gates.
// Every operation is pure; on failure the input state is returned unchanged.
package economy

import (
	"fmt"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

// PurchaseResult reports a successful shop purchase.
type PurchaseResult struct {
	Item       ShopItem
	NewBalance int
	State      domain.ShopState
	Notice     domain.Notice
}

// Purchase validates and executes a shop purchase. Guard order matches the
// player-facing flow: unknown item, already owned, level gate, funds.
func Purchase(itemID string, balance, level int, state domain.ShopState) (PurchaseResult, error) {
	item, ok := ShopCatalog[itemID]
	if !ok {
		return PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if state.OwnedItems[itemID] {
		return PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrAlreadyOwned, itemID)
	}
	if level < item.Tier.UnlockLevel {
		return PurchaseResult{}, fmt.Errorf("%w: %s requires level %d", domain.ErrLevelLocked, itemID, item.Tier.UnlockLevel)
	}
	if balance < item.Price {
		return PurchaseResult{}, fmt.Errorf("%w: %s costs %d, balance %d", domain.ErrInsufficientFunds, itemID, item.Price, balance)
	}

	next := state.Clone()
	next.OwnedItems[itemID] = true

	return PurchaseResult{
		Item:       item,
		NewBalance: balance - item.Price,
		State:      next,
		Notice:     domain.Notice{Title: "Purchased!", Text: item.Name, Severity: domain.SeverityPositive},
	}, nil
}

// Equip selects an owned item. Table skins and borders are single-slot and
// replace the current selection; cosmetic items accumulate, de-duplicated.
func Equip(itemID string, state domain.ShopState) (domain.ShopState, error) {
	item, ok := ShopCatalog[itemID]
	if !ok {
		return state, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	if !state.OwnedItems[itemID] {
		return state, fmt.Errorf("%w: %s", domain.ErrNotOwned, itemID)
	}

	next := state.Clone()
	switch item.Type {
	case domain.ItemTableSkin:
		next.Equipped.TableSkin = itemID
	case domain.ItemBorderStyle:
		next.Equipped.Border = itemID
	case domain.ItemCosmeticItem:
		for _, equipped := range next.Equipped.CosmeticItems {
			if equipped == itemID {
				return next, nil
			}
		}
		next.Equipped.CosmeticItems = append(next.Equipped.CosmeticItems, itemID)
	default:
		return state, fmt.Errorf("%w: unknown item type %q", domain.ErrItemNotFound, item.Type)
	}
	return next, nil
}

// CanAfford reports whether the balance covers an item's price.
func CanAfford(itemID string, balance int) (bool, error) {
	item, ok := ShopCatalog[itemID]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return balance >= item.Price, nil
}
