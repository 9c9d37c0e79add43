// Package events runs the random flavor/economy event system: weighted
// rarity rolls on a spin schedule, per-event cooldowns, timed modifiers and
// a bounded trigger history.
//
// The engine holds no player state. EventState is an explicit value threaded
// through calls by the session, and all entropy comes from the injected RNG,
// so every transition is reproducible under test.
//
// Per-spin protocol, in order:
//
//  1. BeginSpin - counts the spin and rolls for a trigger. The returned
//     definition's effect may be applied immediately only if it is not
//     outcome-dependent; its modifiers take effect for this same spin.
//  2. Bonuses - aggregate view of active modifiers, consumed by payout
//     resolution and XP computation for this spin.
//  3. ApplyEffect - evaluates the triggered effect. For outcome-dependent
//     events this must happen after payout resolution, with the spin context.
//  4. EndSpin - ticks down modifier durations after they applied to the spin
//     that just completed, dropping the expired ones.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/utils"
)

// Engine selects and applies events. Safe to share across sessions since it
// is immutable after construction.
type Engine struct {
	catalog  []Definition
	policy   domain.StackingPolicy
	now      func() time.Time
	newID    func() string
	byRarity map[domain.Rarity][]Definition
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the timestamp source for history records.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator injects the history record ID source.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithCatalog replaces the default catalog (tests use reduced catalogs to
// force specific selections).
func WithCatalog(catalog []Definition) Option {
	return func(e *Engine) { e.catalog = catalog }
}

// NewEngine creates an event engine with the given payout-bonus stacking
// policy and the full default catalog.
func NewEngine(policy domain.StackingPolicy, opts ...Option) *Engine {
	e := &Engine{
		catalog: Catalog,
		policy:  policy,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.byRarity = make(map[domain.Rarity][]Definition)
	for _, def := range e.catalog {
		e.byRarity[def.Rarity] = append(e.byRarity[def.Rarity], def)
	}
	return e
}

// BeginSpin counts the spin and, if the schedule allows, rolls for an event.
// On a trigger it books the cooldown, records history and reschedules; the
// effect itself is NOT applied here. Returns the new state and the triggered
// definition, if any.
func (e *Engine) BeginSpin(state domain.EventState, rng utils.RNG) (domain.EventState, *Definition) {
	next := state.Clone()
	next.SpinCount++

	if next.SpinCount < next.NextEventAt {
		return next, nil
	}

	def := e.selectEvent(next, rng)
	e.reschedule(&next, rng)
	if def == nil {
		return next, nil
	}

	next.Cooldowns[def.ID] = next.SpinCount + def.CooldownSpins
	record := domain.EventRecord{
		RecordID:  e.newID(),
		EventID:   def.ID,
		Spin:      next.SpinCount,
		Timestamp: e.now(),
	}
	next.EventHistory = append([]domain.EventRecord{record}, next.EventHistory...)
	if len(next.EventHistory) > HistoryCap {
		next.EventHistory = next.EventHistory[:HistoryCap]
	}

	return next, def
}

// ApplyEffect evaluates a triggered event's effect against the economy
// snapshot. spin must be non-nil for outcome-dependent definitions; the
// session guarantees this by deferring those to after payout resolution.
func (e *Engine) ApplyEffect(def *Definition, econ domain.EconomySnapshot, spin *domain.SpinContext) domain.Delta {
	if def == nil || def.Effect == nil {
		return domain.Delta{}
	}
	return def.Effect(econ, spin)
}

// RegisterModifier adds a granted modifier to the active set. It applies
// starting with the spin on which it was granted, inclusive.
func (e *Engine) RegisterModifier(state domain.EventState, mod domain.Modifier) domain.EventState {
	next := state.Clone()
	next.ActiveModifiers = append(next.ActiveModifiers, mod)
	return next
}

// EndSpin ticks every active modifier down by one after it applied to the
// spin that just completed, dropping those that reached zero. Returns the
// new state and the expired modifiers.
func (e *Engine) EndSpin(state domain.EventState) (domain.EventState, []domain.Modifier) {
	next := state.Clone()
	var remaining []domain.Modifier
	var expired []domain.Modifier
	for _, mod := range next.ActiveModifiers {
		mod.Duration--
		if mod.Duration > 0 {
			remaining = append(remaining, mod)
		} else {
			expired = append(expired, mod)
		}
	}
	next.ActiveModifiers = remaining
	return next, expired
}

// Bonuses aggregates the active modifiers into the per-spin view. Streak
// bonuses always sum; payout bonuses combine per the configured policy.
func (e *Engine) Bonuses(state domain.EventState) domain.Bonuses {
	var b domain.Bonuses
	multiplicative := 1.0
	for _, mod := range state.ActiveModifiers {
		b.StreakBonus += mod.StreakBonus
		if mod.PayoutBonus > 0 {
			b.PayoutBonus += mod.PayoutBonus
			multiplicative *= 1 + mod.PayoutBonus
		}
		if mod.NoXP {
			b.NoXP = true
		}
	}
	if e.policy == domain.StackMultiplicative {
		b.PayoutBonus = multiplicative - 1
	}
	return b
}

// ClearStreakModifiers drops every streak-bonus modifier, honoring a
// streak-reset delta.
func (e *Engine) ClearStreakModifiers(state domain.EventState) domain.EventState {
	next := state.Clone()
	var remaining []domain.Modifier
	for _, mod := range next.ActiveModifiers {
		if mod.StreakBonus == 0 {
			remaining = append(remaining, mod)
		}
	}
	next.ActiveModifiers = remaining
	return next
}

// selectEvent rolls a rarity tier and picks uniformly among that tier's
// off-cooldown events, falling back to the whole off-cooldown catalog when
// the tier is exhausted. Returns nil when nothing is available at all.
func (e *Engine) selectEvent(state domain.EventState, rng utils.RNG) *Definition {
	rarity := rollRarity(rng)

	available := e.offCooldown(e.byRarity[rarity], state)
	if len(available) == 0 {
		available = e.offCooldown(e.catalog, state)
	}
	if len(available) == 0 {
		return nil
	}

	pick := available[utils.IntBelow(rng, len(available))]
	return &pick
}

func (e *Engine) offCooldown(defs []Definition, state domain.EventState) []Definition {
	var out []Definition
	for _, def := range defs {
		if state.Cooldowns[def.ID] <= state.SpinCount {
			out = append(out, def)
		}
	}
	return out
}

func (e *Engine) reschedule(state *domain.EventState, rng utils.RNG) {
	state.NextEventAt = state.SpinCount + utils.IntBetween(rng, minSpinsToNextEvent, maxSpinsToNextEvent)
}

func rollRarity(rng utils.RNG) domain.Rarity {
	roll := rng() * 100
	switch {
	case roll < commonWeight:
		return domain.RarityCommon
	case roll < commonWeight+rareWeight:
		return domain.RarityRare
	default:
		return domain.RarityEpic
	}
}
