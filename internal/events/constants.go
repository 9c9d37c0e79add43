package events

// Rarity roll weights out of 100: common 70, rare 25, epic 5.
const (
	commonWeight = 70
	rareWeight   = 25
)

// Scheduling window: after a trigger attempt the next event becomes eligible
// a uniform 4-9 spins later.
const (
	minSpinsToNextEvent = 4
	maxSpinsToNextEvent = 9
)

// HistoryCap bounds the recent-event history, most-recent-first.
const HistoryCap = 10
