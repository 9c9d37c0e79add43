package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
)

func earnedIDs(earned []Achievement) []string {
	ids := make([]string, 0, len(earned))
	for _, a := range earned {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestCheck_SingleConditions(t *testing.T) {
	tests := []struct {
		name string
		view View
		want string
	}{
		{"straight hit", View{StraightHit: true}, "first_straight"},
		{"win streak", View{WinStreak: 5}, "five_wins"},
		{"session profit", View{SessionProfit: 500}, "profit_500"},
		{"spin count", View{TotalSpins: 100}, "spin_100"},
		{"big single win", View{Won: true, NetGain: 100}, "big_win"},
		{"charmed win", View{Won: true, PayoutBonusActive: true}, "charmed_win"},
		{"comeback", View{Won: true, LossStreakBefore: 5}, "come_back"},
		{"collection", View{OwnedItemCount: 5}, "collector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, earned := Check(domain.AchievementState{}, tt.view)
			assert.Contains(t, earnedIDs(earned), tt.want)
		})
	}
}

func TestCheck_ThresholdsNotMet(t *testing.T) {
	view := View{
		Won:              true,
		NetGain:          99,
		WinStreak:        4,
		LossStreakBefore: 4,
		SessionProfit:    499,
		TotalSpins:       99,
		OwnedItemCount:   4,
	}
	_, earned := Check(domain.AchievementState{}, view)
	assert.Empty(t, earned)
}

func TestCheck_BigWinRequiresWin(t *testing.T) {
	// A straight hit buried under bigger losses is not a "big win".
	_, earned := Check(domain.AchievementState{}, View{Won: false, NetGain: 150})
	assert.NotContains(t, earnedIDs(earned), "big_win")
}

func TestCheck_NeverAwardsTwice(t *testing.T) {
	state, earned := Check(domain.AchievementState{}, View{StraightHit: true})
	require.Contains(t, earnedIDs(earned), "first_straight")

	state, earned = Check(state, View{StraightHit: true})
	assert.Empty(t, earned)
	assert.True(t, state.Has("first_straight"))
}

func TestCheck_MultipleInOneSpin(t *testing.T) {
	view := View{Won: true, NetGain: 180, StraightHit: true, WinStreak: 5, SessionProfit: 600}
	state, earned := Check(domain.AchievementState{}, view)

	assert.ElementsMatch(t, []string{"first_straight", "five_wins", "profit_500", "big_win"}, earnedIDs(earned))
	assert.Len(t, state.Unlocked, 4)
}

func TestCheck_DoesNotMutateInput(t *testing.T) {
	state := domain.AchievementState{Unlocked: []string{"spin_100"}}
	next, _ := Check(state, View{StraightHit: true})

	assert.Equal(t, []string{"spin_100"}, state.Unlocked)
	assert.Len(t, next.Unlocked, 2)
}

func TestPoints(t *testing.T) {
	assert.Zero(t, Points(domain.AchievementState{}))

	state := domain.AchievementState{Unlocked: []string{"first_straight", "spin_100"}}
	assert.Equal(t, 150, Points(state))
}

func TestCatalog_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog {
		assert.False(t, seen[a.ID], "duplicate %s", a.ID)
		seen[a.ID] = true
		assert.Positive(t, a.Points, a.ID)
	}
}
