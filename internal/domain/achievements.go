package domain

// AchievementState is the persisted set of earned achievement IDs.
// The set only grows.
type AchievementState struct {
	Unlocked []string `json:"unlocked"`
}

// NewAchievementState returns an empty achievement set.
func NewAchievementState() AchievementState {
	return AchievementState{}
}

// Has reports whether an achievement is already earned.
func (s AchievementState) Has(id string) bool {
	for _, got := range s.Unlocked {
		if got == id {
			return true
		}
	}
	return false
}
