// Package session owns one player's game state and runs the per-spin
// pipeline: wheel draw, event roll, payout resolution, outcome-dependent
// event effects, analytics, progression and persistence. It is the single
// logical mutator the engine packages assume; they all stay pure.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kairokome/waifu-roulette-lounge/internal/achievements"
	"github.com/kairokome/waifu-roulette-lounge/internal/analytics"
	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/events"
	"github.com/kairokome/waifu-roulette-lounge/internal/logger"
	"github.com/kairokome/waifu-roulette-lounge/internal/metrics"
	"github.com/kairokome/waifu-roulette-lounge/internal/payout"
	"github.com/kairokome/waifu-roulette-lounge/internal/progression"
	"github.com/kairokome/waifu-roulette-lounge/internal/storage"
	"github.com/kairokome/waifu-roulette-lounge/internal/utils"
	"github.com/kairokome/waifu-roulette-lounge/internal/wheel"
)

// SpinRecord is one bounded-history entry, most-recent-first.
type SpinRecord struct {
	Spin   int          `json:"spin"`
	Number int          `json:"number"`
	Color  domain.Color `json:"color"`
	Result int          `json:"result"` // net gain
}

// HistoryCap bounds the session spin history.
const HistoryCap = 10

// defaultStartingBankroll seeds a fresh session when no override is given.
const defaultStartingBankroll = 500

// economyBlob is the persisted player-economy shape.
type economyBlob struct {
	Bankroll  int                   `json:"bankroll"`
	History   []SpinRecord          `json:"history,omitempty"`
	Analytics domain.AnalyticsState `json:"analytics"`
}

// TriggeredEvent reports an event that fired during a spin.
type TriggeredEvent struct {
	ID      string
	Title   string
	Rarity  domain.Rarity
	Delta   domain.Delta
	Applied bool // false until the effect delta has been folded in
}

// SpinReport is everything a presentation layer needs to show one spin.
type SpinReport struct {
	Outcome         domain.Outcome
	Payout          domain.PayoutResult
	Bonuses         domain.Bonuses
	Event           *TriggeredEvent
	XPAwarded       int
	LevelUp         progression.LevelUpResult
	NewAchievements []achievements.Achievement
	Notices         []domain.Notice
	Bankroll        int
}

// Session is one player's live game. All methods are safe for a single
// caller; the spinning gate rejects overlapping spin requests explicitly.
type Session struct {
	mu       sync.Mutex
	spinning bool

	id    string
	store storage.Store
	rng   utils.RNG

	eventEngine *events.Engine
	progEngine  *progression.Engine

	startingBankroll int

	bankroll     int
	bets         domain.BetSet
	history      []SpinRecord
	analytics    domain.AnalyticsState
	prog         domain.ProgressionState
	eventState   domain.EventState
	shop         domain.ShopState
	outfits      domain.OutfitState
	achievements domain.AchievementState
}

// Options configures a session.
type Options struct {
	Store            storage.Store
	RNG              utils.RNG
	Clock            func() time.Time
	StartingBankroll int
	BonusStacking    domain.StackingPolicy
	EventEngine      *events.Engine // optional override, mainly for tests
}

// New creates a session, restoring any persisted state from the store.
// Storage failures are logged and ignored; a fresh state takes their place.
func New(ctx context.Context, opts Options) *Session {
	if opts.RNG == nil {
		opts.RNG = utils.DefaultRNG()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.BonusStacking == "" {
		opts.BonusStacking = domain.StackAdditive
	}
	if opts.StartingBankroll <= 0 {
		opts.StartingBankroll = defaultStartingBankroll
	}
	if opts.EventEngine == nil {
		opts.EventEngine = events.NewEngine(opts.BonusStacking, events.WithClock(opts.Clock))
	}

	s := &Session{
		id:               logger.GenerateSessionID(),
		store:            opts.Store,
		rng:              opts.RNG,
		eventEngine:      opts.EventEngine,
		progEngine:       progression.NewEngine(),
		startingBankroll: opts.StartingBankroll,
	}
	s.loadAll(ctx)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// log returns a logger tagged with this session's ID unless the context
// already carries one.
func (s *Session) log(ctx context.Context) *slog.Logger {
	if _, ok := logger.SessionIDFromContext(ctx); ok {
		return logger.FromContext(ctx)
	}
	return logger.FromContext(ctx).With("session_id", s.id)
}

// Bankroll returns the current chip balance.
func (s *Session) Bankroll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bankroll
}

// Analytics returns a copy of the session counters.
func (s *Session) Analytics() domain.AnalyticsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics
}

// WinRate returns the session win percentage.
func (s *Session) WinRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.WinRate(s.analytics)
}

// Progression returns the persisted progression state and its level view.
func (s *Session) Progression() (domain.ProgressionState, domain.LevelInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prog, s.progEngine.LevelFor(s.prog.TotalXP)
}

// Events returns a copy of the event-engine state.
func (s *Session) Events() domain.EventState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eventState.Clone()
}

// History returns the bounded spin history, most-recent-first.
func (s *Session) History() []SpinRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SpinRecord(nil), s.history...)
}

// Bets returns a copy of the currently placed bets.
func (s *Session) Bets() domain.BetSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bets.Clone()
}

// PlaceBet stakes chips on an outside bet. The whole placement is refused,
// leaving state unchanged, when the stake is negative or the total would
// exceed the bankroll.
func (s *Session) PlaceBet(betType domain.BetType, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trial := s.bets.Clone()
	trial.Stakes[betType] += amount
	return s.acceptBets(trial, amount)
}

// PlaceStraightBet stakes chips on a single number.
func (s *Session) PlaceStraightBet(number, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trial := s.bets.Clone()
	trial.Straight[number] += amount
	return s.acceptBets(trial, amount)
}

func (s *Session) acceptBets(trial domain.BetSet, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative stake %d", domain.ErrInvalidBet, amount)
	}
	if err := payout.ValidateBetSet(trial); err != nil {
		return err
	}
	if err := payout.CheckFunds(trial, s.bankroll); err != nil {
		return err
	}
	s.bets = trial
	return nil
}

// ClearBets removes every placed bet.
func (s *Session) ClearBets() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets = domain.NewBetSet()
}

// Spin resolves one spin against the placed bets. A spin with no bets is a
// no-op and returns ErrNoBetsPlaced; a spin while another is in flight
// returns ErrSpinInFlight.
func (s *Session) Spin(ctx context.Context) (*SpinReport, error) {
	s.mu.Lock()
	if s.spinning {
		s.mu.Unlock()
		return nil, domain.ErrSpinInFlight
	}
	if s.bets.IsEmpty() {
		s.mu.Unlock()
		return nil, domain.ErrNoBetsPlaced
	}
	s.spinning = true
	defer func() {
		s.mu.Lock()
		s.spinning = false
		s.mu.Unlock()
	}()
	bets := s.bets
	s.bets = domain.NewBetSet()
	s.mu.Unlock()

	report := s.runSpin(ctx, bets)

	s.mu.Lock()
	s.persistAll(ctx)
	s.mu.Unlock()

	return report, nil
}

// runSpin executes the pipeline. Ordering is the contract here:
// eligibility rolls and outcome-independent effects land before resolution
// so their modifiers cover this spin; outcome-dependent effects strictly
// after; modifier durations tick at the very end.
func (s *Session) runSpin(ctx context.Context, bets domain.BetSet) *SpinReport {
	log := s.log(ctx)
	report := &SpinReport{}

	outcome := wheel.Spin(s.rng)
	report.Outcome = outcome

	s.mu.Lock()
	defer s.mu.Unlock()

	eventState, triggered := s.eventEngine.BeginSpin(s.eventState, s.rng)
	s.eventState = eventState

	if triggered != nil {
		report.Event = &TriggeredEvent{
			ID:     triggered.ID,
			Title:  triggered.Title,
			Rarity: triggered.Rarity,
		}
		metrics.EventsTriggeredTotal.WithLabelValues(triggered.ID, string(triggered.Rarity)).Inc()
		log.Info("event triggered", "event", triggered.ID, "rarity", triggered.Rarity, "spin", s.eventState.SpinCount)

		if !triggered.OutcomeDependent {
			delta := s.eventEngine.ApplyEffect(triggered, s.snapshot(), nil)
			s.foldDelta(delta, report)
			report.Event.Delta = delta
			report.Event.Applied = true
		}
	}

	bonuses := s.eventEngine.Bonuses(s.eventState)
	report.Bonuses = bonuses

	lossStreakBefore := 0
	if s.analytics.CurrentStreakType == domain.StreakLoss {
		lossStreakBefore = s.analytics.CurrentStreak
	}

	result := payout.Resolve(outcome, bets, bonuses)
	report.Payout = result
	// An event this spin may have drained the balance below the committed
	// stake; the floor stays at zero either way.
	s.bankroll += result.NetGain
	if s.bankroll < 0 {
		s.bankroll = 0
	}

	if triggered != nil && triggered.OutcomeDependent {
		spinCtx := domain.SpinContext{
			Outcome:        outcome,
			Won:            result.IsWin(),
			HadStraightBet: hasStraightBet(bets),
			StraightWon:    result.StraightHit(),
		}
		delta := s.eventEngine.ApplyEffect(triggered, s.snapshot(), &spinCtx)
		s.foldDelta(delta, report)
		report.Event.Delta = delta
		report.Event.Applied = true
	}

	s.analytics = analytics.Update(s.analytics, result)

	winStreak := 0
	if s.analytics.CurrentStreakType == domain.StreakWin {
		winStreak = s.analytics.CurrentStreak
	}
	award := progression.XPEarned(result, winStreak, bonuses)
	report.XPAwarded = award

	var levelUp progression.LevelUpResult
	s.prog, levelUp = s.progEngine.ApplySpinXP(s.prog, award)
	report.LevelUp = levelUp

	s.recordMetrics(result, award, levelUp)

	s.eventState, _ = s.eventEngine.EndSpin(s.eventState)

	view := achievements.View{
		Won:               result.IsWin(),
		NetGain:           result.NetGain,
		StraightHit:       result.StraightHit(),
		WinStreak:         winStreak,
		LossStreakBefore:  lossStreakBefore,
		SessionProfit:     s.analytics.TotalWon - s.analytics.TotalWagered,
		TotalSpins:        s.analytics.TotalSpins,
		PayoutBonusActive: bonuses.PayoutBonus > 0,
		OwnedItemCount:    len(s.shop.OwnedItems),
	}
	var earned []achievements.Achievement
	s.achievements, earned = achievements.Check(s.achievements, view)
	report.NewAchievements = earned

	s.history = append([]SpinRecord{{
		Spin:   s.eventState.SpinCount,
		Number: outcome.Number,
		Color:  outcome.Color,
		Result: result.NetGain,
	}}, s.history...)
	if len(s.history) > HistoryCap {
		s.history = s.history[:HistoryCap]
	}

	report.Bankroll = s.bankroll
	log.Debug("spin resolved",
		"number", outcome.Number, "color", outcome.Color,
		"net", result.NetGain, "classification", result.Classification,
		"xp", award, "bankroll", s.bankroll)

	return report
}

// foldDelta applies an event delta to the session: chips floored at zero,
// XP granted outside the spin award, modifiers registered so they cover the
// current spin, streak resets clearing both analytics and streak modifiers.
func (s *Session) foldDelta(delta domain.Delta, report *SpinReport) {
	s.bankroll += delta.Chips
	if s.bankroll < 0 {
		s.bankroll = 0
	}
	if delta.XP > 0 {
		var levelUp progression.LevelUpResult
		s.prog, levelUp = s.progEngine.GrantXP(s.prog, delta.XP)
		metrics.XPAwardedTotal.Add(float64(delta.XP))
		if levelUp.LeveledUp {
			metrics.LevelUpsTotal.Inc()
			report.LevelUp = levelUp
		}
	}
	if delta.Modifier != nil {
		s.eventState = s.eventEngine.RegisterModifier(s.eventState, *delta.Modifier)
	}
	if delta.StreakReset {
		s.analytics = analytics.ResetStreak(s.analytics)
		s.eventState = s.eventEngine.ClearStreakModifiers(s.eventState)
	}
	if delta.Notice != nil {
		report.Notices = append(report.Notices, *delta.Notice)
	}
}

func (s *Session) recordMetrics(result domain.PayoutResult, award int, levelUp progression.LevelUpResult) {
	metrics.SpinsTotal.WithLabelValues(string(result.Classification)).Inc()
	metrics.ChipsWageredTotal.Add(float64(result.TotalStaked))
	metrics.ChipsWonTotal.Add(float64(result.TotalWinnings))
	metrics.NetGain.Observe(float64(result.NetGain))
	metrics.XPAwardedTotal.Add(float64(award))
	if levelUp.LeveledUp {
		metrics.LevelUpsTotal.Inc()
	}
}

func (s *Session) snapshot() domain.EconomySnapshot {
	return domain.EconomySnapshot{Chips: s.bankroll, TotalXP: s.prog.TotalXP}
}

func hasStraightBet(bets domain.BetSet) bool {
	for _, stake := range bets.Straight {
		if stake > 0 {
			return true
		}
	}
	return false
}
