package domain

import "time"

// Rarity is the weighted tier an event is rolled from.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
)

// EventCategory is the flavor grouping of an event.
type EventCategory string

const (
	EventFinancial EventCategory = "financial"
	EventSocial    EventCategory = "social"
	EventRisk      EventCategory = "risk"
	EventLuck      EventCategory = "luck"
	EventPenalty   EventCategory = "penalty"
)

// Severity classifies a notice for presentation.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNegative Severity = "negative"
	SeverityNeutral  Severity = "neutral"
	SeverityEpic     Severity = "epic"
)

// Notice is a user-facing notification payload produced by an event effect.
type Notice struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Modifier is a timed effect altering payout or XP computation. Duration is
// counted in spins; a modifier with duration N applies to exactly N spins
// starting with the spin on which it was granted.
type Modifier struct {
	ID          string  `json:"id"`
	Duration    int     `json:"duration"`
	StreakBonus int     `json:"streak_bonus,omitempty"`
	PayoutBonus float64 `json:"payout_bonus,omitempty"`
	NoXP        bool    `json:"no_xp,omitempty"`
}

// EventRecord is one bounded-history entry of a triggered event.
type EventRecord struct {
	RecordID  string    `json:"record_id"`
	EventID   string    `json:"event_id"`
	Spin      int       `json:"spin"`
	Timestamp time.Time `json:"timestamp"`
}

// EventState is the persisted event-engine blob.
type EventState struct {
	SpinCount       int            `json:"spin_count"`
	NextEventAt     int            `json:"next_event_at"`
	ActiveModifiers []Modifier     `json:"active_modifiers,omitempty"`
	EventHistory    []EventRecord  `json:"event_history,omitempty"`
	Cooldowns       map[string]int `json:"cooldowns,omitempty"`
}

// NewEventState returns the initial engine state; the first event becomes
// eligible at spin five, matching a fresh session warmup.
func NewEventState() EventState {
	return EventState{
		NextEventAt: 5,
		Cooldowns:   make(map[string]int),
	}
}

// Clone deep-copies the state so engine transitions stay value-semantic.
func (s EventState) Clone() EventState {
	c := s
	c.ActiveModifiers = append([]Modifier(nil), s.ActiveModifiers...)
	c.EventHistory = append([]EventRecord(nil), s.EventHistory...)
	c.Cooldowns = make(map[string]int, len(s.Cooldowns))
	for id, expiry := range s.Cooldowns {
		c.Cooldowns[id] = expiry
	}
	return c
}

// EconomySnapshot is the read-only view of the player economy handed to event
// effects.
type EconomySnapshot struct {
	Chips   int `json:"chips"`
	TotalXP int `json:"total_xp"`
}

// SpinContext carries the just-resolved spin facts that outcome-dependent
// event effects are allowed to observe. It is only available post-resolution.
type SpinContext struct {
	Outcome        Outcome `json:"outcome"`
	Won            bool    `json:"won"`
	HadStraightBet bool    `json:"had_straight_bet"`
	StraightWon    bool    `json:"straight_won"`
}

// Delta is the effect of a triggered event, applied by the caller. Chips may
// be negative; the caller floors the resulting balance at zero.
type Delta struct {
	Chips       int       `json:"chips,omitempty"`
	XP          int       `json:"xp,omitempty"`
	Modifier    *Modifier `json:"modifier,omitempty"`
	StreakReset bool      `json:"streak_reset,omitempty"`
	Notice      *Notice   `json:"notice,omitempty"`
}
