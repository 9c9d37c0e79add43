package domain

// ItemType identifies which equipment slot a shop item occupies.
type ItemType string

const (
	ItemTableSkin    ItemType = "table_skin"
	ItemBorderStyle  ItemType = "border_style"
	ItemDealerSkin   ItemType = "dealer_persona"
	ItemCosmeticItem ItemType = "cosmetic_item"
)

// EquippedSelections holds the shop equipment choices. Table and border are
// single-slot; cosmetic items accumulate without duplicates.
type EquippedSelections struct {
	TableSkin     string   `json:"table_skin"`
	Border        string   `json:"border"`
	CosmeticItems []string `json:"cosmetic_items,omitempty"`
}

// ShopState is the persisted shop blob.
type ShopState struct {
	OwnedItems map[string]bool    `json:"owned_items"`
	Equipped   EquippedSelections `json:"equipped"`
}

// NewShopState returns an empty shop state with default selections.
func NewShopState() ShopState {
	return ShopState{
		OwnedItems: make(map[string]bool),
		Equipped: EquippedSelections{
			TableSkin: "default",
			Border:    "default",
		},
	}
}

// Clone deep-copies the state.
func (s ShopState) Clone() ShopState {
	c := s
	c.OwnedItems = make(map[string]bool, len(s.OwnedItems))
	for id, owned := range s.OwnedItems {
		c.OwnedItems[id] = owned
	}
	c.Equipped.CosmeticItems = append([]string(nil), s.Equipped.CosmeticItems...)
	return c
}

// OutfitState is the persisted dealer-outfit blob.
type OutfitState struct {
	OwnedOutfits   []string `json:"owned_outfits"`
	EquippedOutfit string   `json:"equipped_outfit"`
}

// NewOutfitState returns the starting wardrobe.
func NewOutfitState() OutfitState {
	return OutfitState{
		OwnedOutfits:   []string{"outfit_croupier"},
		EquippedOutfit: "outfit_croupier",
	}
}

// Owns reports ownership of an outfit ID.
func (s OutfitState) Owns(id string) bool {
	for _, got := range s.OwnedOutfits {
		if got == id {
			return true
		}
	}
	return false
}
