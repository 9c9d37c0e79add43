package domain

// CosmeticCategory groups level-gated cosmetics by slot.
type CosmeticCategory string

const (
	CosmeticTable  CosmeticCategory = "table"
	CosmeticBorder CosmeticCategory = "border"
	CosmeticDealer CosmeticCategory = "dealer"
)

// LevelInfo is the derived view of a total-XP value on the level curve.
type LevelInfo struct {
	Level           int `json:"level"`
	CurrentXP       int `json:"current_xp"`
	XPToNextLevel   int `json:"xp_to_next_level"`
	ProgressPercent int `json:"progress_percent"`
}

// ProgressionState is the persisted progression blob. TotalXP never decreases
// and the unlocked set never shrinks.
type ProgressionState struct {
	TotalXP           int      `json:"total_xp"`
	TotalSpins        int      `json:"total_spins"`
	UnlockedCosmetics []string `json:"unlocked_cosmetics"`
	SelectedTable     string   `json:"selected_table"`
	SelectedBorder    string   `json:"selected_border"`
	SelectedDealer    string   `json:"selected_dealer"`
}

// NewProgressionState returns a fresh profile with the default cosmetics.
func NewProgressionState() ProgressionState {
	return ProgressionState{
		UnlockedCosmetics: []string{"default"},
		SelectedTable:     "default",
		SelectedBorder:    "default",
		SelectedDealer:    "default",
	}
}

// HasCosmetic reports whether a cosmetic ID is already unlocked.
func (p ProgressionState) HasCosmetic(id string) bool {
	for _, got := range p.UnlockedCosmetics {
		if got == id {
			return true
		}
	}
	return false
}
