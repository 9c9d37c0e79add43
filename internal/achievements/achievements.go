// Package achievements awards one-shot badges from per-spin session views.
// The unlocked set only ever grows; Check is pure and returns the new state
// alongside anything newly earned.
package achievements

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// Achievement is one badge definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Points      int
}

// Catalog is the full badge table.
var Catalog = []Achievement{
	{ID: "first_straight", Name: "Straight Shot", Description: "Hit a straight bet (35:1)", Points: 100},
	{ID: "five_wins", Name: "On Fire!", Description: "5 win streak", Points: 150},
	{ID: "profit_500", Name: "High Roller", Description: "Reach +500 chips session profit", Points: 200},
	{ID: "spin_100", Name: "Regular", Description: "Play 100 spins", Points: 50},
	{ID: "big_win", Name: "Jackpot", Description: "Win 100+ chips in one spin", Points: 100},
	{ID: "charmed_win", Name: "Lucky!", Description: "Win while a payout bonus is active", Points: 75},
	{ID: "come_back", Name: "Comeback Kid", Description: "Win after a 5+ loss streak", Points: 125},
	{ID: "collector", Name: "Collector", Description: "Own 5 shop items", Points: 100},
}

// View is the read-only per-spin snapshot Check evaluates against.
type View struct {
	Won               bool
	NetGain           int
	StraightHit       bool
	WinStreak         int
	LossStreakBefore  int
	SessionProfit     int
	TotalSpins        int
	PayoutBonusActive bool
	OwnedItemCount    int
}

// Check evaluates every badge condition and returns the new state plus any
// newly earned achievements.
func Check(state domain.AchievementState, view View) (domain.AchievementState, []Achievement) {
	next := state
	next.Unlocked = append([]string(nil), state.Unlocked...)
	var earned []Achievement

	grant := func(a Achievement) {
		next.Unlocked = append(next.Unlocked, a.ID)
		earned = append(earned, a)
	}

	for _, a := range Catalog {
		if next.Has(a.ID) {
			continue
		}
		switch a.ID {
		case "first_straight":
			if view.StraightHit {
				grant(a)
			}
		case "five_wins":
			if view.WinStreak >= 5 {
				grant(a)
			}
		case "profit_500":
			if view.SessionProfit >= 500 {
				grant(a)
			}
		case "spin_100":
			if view.TotalSpins >= 100 {
				grant(a)
			}
		case "big_win":
			if view.Won && view.NetGain >= 100 {
				grant(a)
			}
		case "charmed_win":
			if view.Won && view.PayoutBonusActive {
				grant(a)
			}
		case "come_back":
			if view.Won && view.LossStreakBefore >= 5 {
				grant(a)
			}
		case "collector":
			if view.OwnedItemCount >= 5 {
				grant(a)
			}
		}
	}

	return next, earned
}

// Points sums the point values of every earned achievement.
func Points(state domain.AchievementState) int {
	total := 0
	for _, id := range state.Unlocked {
		for _, a := range Catalog {
			if a.ID == id {
				total += a.Points
				break
			}
		}
	}
	return total
}
