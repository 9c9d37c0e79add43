package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/events"
	"github.com/kairokome/waifu-roulette-lounge/internal/storage"
	"github.com/kairokome/waifu-roulette-lounge/internal/utils"
)

// failingStore errors on every operation; gameplay must shrug it off.
type failingStore struct{}

func (failingStore) Get(string, any) (bool, error) { return false, errors.New("store unavailable") }
func (failingStore) Set(string, any) error         { return errors.New("store unavailable") }
func (failingStore) Delete(string) error           { return errors.New("store unavailable") }

// eventCatalog wraps a single definition so the fifth spin always triggers it.
func eventCatalog(def events.Definition) *events.Engine {
	def.Rarity = domain.RarityCommon
	if def.CooldownSpins == 0 {
		def.CooldownSpins = 50
	}
	return events.NewEngine(domain.StackAdditive, events.WithCatalog([]events.Definition{def}))
}

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	return New(context.Background(), opts)
}

// Wheel draws: 0.5 lands on 18 (red), 0.41 lands on 15 (black).
const (
	drawRed   = 0.5
	drawBlack = 0.41
)

func TestNew_FreshSessionDefaults(t *testing.T) {
	sess := newTestSession(t, Options{})

	assert.Equal(t, defaultStartingBankroll, sess.Bankroll())
	assert.Zero(t, sess.Analytics().TotalSpins)
	assert.Equal(t, 5, sess.Events().NextEventAt)
	assert.True(t, sess.Bets().IsEmpty())
	assert.NotEmpty(t, sess.ID())
}

func TestNew_CustomBankroll(t *testing.T) {
	sess := newTestSession(t, Options{StartingBankroll: 1000})
	assert.Equal(t, 1000, sess.Bankroll())
}

func TestPlaceBet(t *testing.T) {
	sess := newTestSession(t, Options{})

	require.NoError(t, sess.PlaceBet(domain.BetRed, 100))
	require.NoError(t, sess.PlaceBet(domain.BetRed, 50), "stakes accumulate")
	require.NoError(t, sess.PlaceStraightBet(7, 25))

	bets := sess.Bets()
	assert.Equal(t, 150, bets.Stakes[domain.BetRed])
	assert.Equal(t, 25, bets.Straight[7])
	assert.Equal(t, 175, bets.TotalStake())
}

func TestPlaceBet_Rejections(t *testing.T) {
	sess := newTestSession(t, Options{})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 400))

	tests := []struct {
		name    string
		place   func() error
		wantErr error
	}{
		{"exceeds bankroll", func() error { return sess.PlaceBet(domain.BetBlack, 200) }, domain.ErrInsufficientFunds},
		{"negative amount", func() error { return sess.PlaceBet(domain.BetRed, -10) }, domain.ErrInvalidBet},
		{"straight out of range", func() error { return sess.PlaceStraightBet(37, 10) }, domain.ErrInvalidBet},
		{"negative straight number", func() error { return sess.PlaceStraightBet(-1, 10) }, domain.ErrInvalidBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.place(), tt.wantErr)
		})
	}

	// Every rejection left the original placement intact.
	assert.Equal(t, 400, sess.Bets().TotalStake())
}

func TestClearBets(t *testing.T) {
	sess := newTestSession(t, Options{})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 100))

	sess.ClearBets()
	assert.True(t, sess.Bets().IsEmpty())
}

func TestSpin_NoBets(t *testing.T) {
	sess := newTestSession(t, Options{})
	_, err := sess.Spin(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoBetsPlaced)
}

func TestSpin_InFlightGate(t *testing.T) {
	sess := newTestSession(t, Options{})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))

	sess.mu.Lock()
	sess.spinning = true
	sess.mu.Unlock()

	_, err := sess.Spin(context.Background())
	assert.ErrorIs(t, err, domain.ErrSpinInFlight)
}

func TestSpin_WinningSpin(t *testing.T) {
	sess := newTestSession(t, Options{RNG: utils.ScriptedRNG(drawRed)})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))

	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 18, report.Outcome.Number)
	assert.Equal(t, domain.ColorRed, report.Outcome.Color)
	assert.Equal(t, 10, report.Payout.NetGain)
	assert.Equal(t, 510, report.Bankroll)
	assert.Equal(t, 510, sess.Bankroll())
	assert.Equal(t, 15, report.XPAwarded, "base 10 times the win multiplier")
	assert.Nil(t, report.Event, "no event before the fifth spin")

	assert.True(t, sess.Bets().IsEmpty(), "bets consumed by the spin")

	stats := sess.Analytics()
	assert.Equal(t, 1, stats.TotalSpins)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, domain.StreakWin, stats.CurrentStreakType)

	prog, level := sess.Progression()
	assert.Equal(t, 15, prog.TotalXP)
	assert.Equal(t, 1, prog.TotalSpins)
	assert.Equal(t, 1, level.Level)
}

func TestSpin_LosingSpin(t *testing.T) {
	sess := newTestSession(t, Options{RNG: utils.ScriptedRNG(drawBlack)})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))

	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 15, report.Outcome.Number)
	assert.Equal(t, -10, report.Payout.NetGain)
	assert.Equal(t, 490, sess.Bankroll())
	assert.Equal(t, 10, report.XPAwarded, "losses still pay base XP")
}

func TestSpin_HistoryMostRecentFirstAndCapped(t *testing.T) {
	sess := newTestSession(t, Options{RNG: utils.SeededRNG(99)})

	for i := 0; i < HistoryCap+5; i++ {
		require.NoError(t, sess.PlaceBet(domain.BetRed, 1))
		_, err := sess.Spin(context.Background())
		require.NoError(t, err)
	}

	history := sess.History()
	require.Len(t, history, HistoryCap)
	assert.Equal(t, HistoryCap+5, history[0].Spin)
	for i := 1; i < len(history); i++ {
		assert.Greater(t, history[i-1].Spin, history[i].Spin)
	}
}

// spinTo burns plain spins so the next one is the event-eligible fifth.
func spinTo(t *testing.T, sess *Session, spins int, stake int) {
	t.Helper()
	for i := 0; i < spins; i++ {
		require.NoError(t, sess.PlaceBet(domain.BetRed, stake))
		_, err := sess.Spin(context.Background())
		require.NoError(t, err)
	}
}

func TestSpin_EventChipsAppliedBeforeResolution(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "windfall", Title: "Windfall",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Chips: 25, Notice: &domain.Notice{Title: "Windfall!", Severity: domain.SeverityPositive}}
		},
	})
	// Four losing spins, then the fifth: wheel, rarity, pick, reschedule.
	rng := utils.ScriptedRNG(drawBlack, drawBlack, drawBlack, drawBlack, drawBlack, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)
	require.Equal(t, 460, sess.Bankroll())

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.Event)
	assert.Equal(t, "windfall", report.Event.ID)
	assert.True(t, report.Event.Applied)
	assert.Equal(t, 475, sess.Bankroll(), "event chips land before the loss is settled")
	require.Len(t, report.Notices, 1)
	assert.Equal(t, "Windfall!", report.Notices[0].Title)
	assert.Len(t, sess.Events().EventHistory, 1)
}

func TestSpin_GrantedModifierCoversGrantSpin(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "double_down", Title: "Double Down",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Modifier: &domain.Modifier{ID: "double_down", PayoutBonus: 1.0, Duration: 1}}
		},
	})
	rng := utils.ScriptedRNG(drawRed, drawRed, drawRed, drawRed, drawRed, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)
	require.Equal(t, 540, sess.Bankroll())

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	// Base winnings 20 doubled to 40 on the very spin that granted the bonus.
	assert.InDelta(t, 1.0, report.Bonuses.PayoutBonus, 1e-9)
	assert.Equal(t, 30, report.Payout.NetGain)
	assert.Equal(t, 570, sess.Bankroll())

	// Duration one: spent after this spin.
	assert.Empty(t, sess.Events().ActiveModifiers)
}

func TestSpin_NoXPModifierSuppressesAward(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "glitch", Title: "Glitch",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Modifier: &domain.Modifier{ID: "glitch", NoXP: true, Duration: 1}}
		},
	})
	rng := utils.ScriptedRNG(drawRed, drawRed, drawRed, drawRed, drawRed, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)
	xpBefore, _ := sess.Progression()

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.XPAwarded)
	xpAfter, _ := sess.Progression()
	assert.Equal(t, xpBefore.TotalXP, xpAfter.TotalXP)
	assert.Equal(t, xpBefore.TotalSpins+1, xpAfter.TotalSpins, "the spin still counts")
}

func TestSpin_OutcomeDependentEventAfterResolution(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "side_wager", Title: "Side Wager", OutcomeDependent: true,
		Effect: func(_ domain.EconomySnapshot, spin *domain.SpinContext) domain.Delta {
			if spin == nil {
				return domain.Delta{Chips: -999}
			}
			if spin.Won {
				return domain.Delta{Chips: 100}
			}
			return domain.Delta{Chips: -5}
		},
	})
	rng := utils.ScriptedRNG(drawRed, drawRed, drawRed, drawRed, drawRed, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)
	require.Equal(t, 540, sess.Bankroll())

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	require.NotNil(t, report.Event)
	assert.True(t, report.Event.Applied)
	assert.Equal(t, 100, report.Event.Delta.Chips)
	assert.Equal(t, 650, sess.Bankroll(), "win settled first, then the side wager pays")
}

func TestSpin_EventXPGrantedOutsideSpinAward(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "inspiration", Title: "Inspiration",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{XP: 150}
		},
	})
	rng := utils.ScriptedRNG(drawRed, drawRed, drawRed, drawRed, drawRed, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	prog, _ := sess.Progression()
	// Four win spins at 15/17/19/21 XP (streak), the event's 150, and the
	// fifth spin's own award on top.
	assert.Equal(t, 72+150+report.XPAwarded, prog.TotalXP)
	assert.Equal(t, 5, prog.TotalSpins, "event XP never counts a spin")
}

func TestSpin_StreakResetEvent(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "rival", Title: "Rival",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{StreakReset: true}
		},
	})
	rng := utils.ScriptedRNG(drawRed, drawRed, drawRed, drawRed, drawRed, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)
	require.Equal(t, 4, sess.Analytics().CurrentStreak)

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	_, err := sess.Spin(context.Background())
	require.NoError(t, err)

	// The reset lands before resolution; the fifth win starts a new streak.
	assert.Equal(t, 1, sess.Analytics().CurrentStreak)
	assert.Equal(t, domain.StreakWin, sess.Analytics().CurrentStreakType)
}

func TestSpin_BankrollFloorsAtZero(t *testing.T) {
	engine := eventCatalog(events.Definition{
		ID: "disaster", Title: "Disaster",
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Chips: -10000}
		},
	})
	rng := utils.ScriptedRNG(drawBlack, drawBlack, drawBlack, drawBlack, drawBlack, 0.1, 0.0, 0.0)
	sess := newTestSession(t, Options{RNG: rng, EventEngine: engine})

	spinTo(t, sess, 4, 10)

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	_, err := sess.Spin(context.Background())
	require.NoError(t, err)

	assert.Zero(t, sess.Bankroll())
}

func TestSpin_StatePersistsAcrossSessions(t *testing.T) {
	store := storage.NewMemoryStore()

	sess := newTestSession(t, Options{Store: store, RNG: utils.ScriptedRNG(drawRed)})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	_, err := sess.Spin(context.Background())
	require.NoError(t, err)
	require.Equal(t, 510, sess.Bankroll())

	restored := newTestSession(t, Options{Store: store})

	assert.Equal(t, 510, restored.Bankroll())
	assert.Equal(t, 1, restored.Analytics().TotalSpins)
	assert.Equal(t, 1, restored.Events().SpinCount)
	prog, _ := restored.Progression()
	assert.Equal(t, 15, prog.TotalXP)
	require.Len(t, restored.History(), 1)
	assert.Equal(t, 18, restored.History()[0].Number)
}

func TestSpin_BrokenStoreNeverBlocksGameplay(t *testing.T) {
	sess := newTestSession(t, Options{Store: failingStore{}, RNG: utils.ScriptedRNG(drawRed)})

	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	report, err := sess.Spin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 510, report.Bankroll)

	sess.Reset(context.Background())
	assert.Equal(t, defaultStartingBankroll, sess.Bankroll())
}

func TestReset_KeepsProgression(t *testing.T) {
	sess := newTestSession(t, Options{RNG: utils.ScriptedRNG(drawRed)})
	require.NoError(t, sess.PlaceBet(domain.BetRed, 10))
	_, err := sess.Spin(context.Background())
	require.NoError(t, err)

	sess.Reset(context.Background())

	assert.Equal(t, defaultStartingBankroll, sess.Bankroll())
	assert.Zero(t, sess.Analytics().TotalSpins)
	assert.Empty(t, sess.History())
	prog, _ := sess.Progression()
	assert.Equal(t, 15, prog.TotalXP, "progression survives an economy reset")
}

func TestPurchaseItem_LevelGate(t *testing.T) {
	sess := newTestSession(t, Options{})

	_, err := sess.PurchaseItem(context.Background(), "table_ocean")
	assert.ErrorIs(t, err, domain.ErrLevelLocked, "fresh sessions are level 1")
}

func TestPurchaseAndEquipItem(t *testing.T) {
	store := storage.NewMemoryStore()
	prog := domain.NewProgressionState()
	prog.TotalXP = 382 // level 3
	require.NoError(t, store.Set(storage.KeyProgression, prog))

	sess := newTestSession(t, Options{Store: store})
	ctx := context.Background()

	result, err := sess.PurchaseItem(ctx, "table_ocean")
	require.NoError(t, err)
	assert.Equal(t, 300, result.NewBalance)
	assert.Equal(t, 300, sess.Bankroll())

	require.NoError(t, sess.EquipItem(ctx, "table_ocean"))
	assert.Equal(t, "table_ocean", sess.Shop().Equipped.TableSkin)

	_, err = sess.PurchaseItem(ctx, "table_ocean")
	assert.ErrorIs(t, err, domain.ErrAlreadyOwned)

	// The shop blob round-trips through the store.
	restored := newTestSession(t, Options{Store: store})
	assert.True(t, restored.Shop().OwnedItems["table_ocean"])
	assert.Equal(t, 300, restored.Bankroll())
}

func TestPurchaseAndEquipOutfit(t *testing.T) {
	sess := newTestSession(t, Options{})
	ctx := context.Background()

	result, err := sess.PurchaseOutfit(ctx, "outfit_blazer")
	require.NoError(t, err)
	assert.Equal(t, 300, result.NewBalance)

	require.NoError(t, sess.EquipOutfit(ctx, "outfit_blazer"))
	assert.Equal(t, "outfit_blazer", sess.Outfits().EquippedOutfit)
}

func TestSelectCosmetic(t *testing.T) {
	store := storage.NewMemoryStore()
	prog := domain.NewProgressionState()
	prog.TotalXP = 382
	prog.UnlockedCosmetics = []string{"default", "border_pink"}
	require.NoError(t, store.Set(storage.KeyProgression, prog))

	sess := newTestSession(t, Options{Store: store})
	ctx := context.Background()

	require.NoError(t, sess.SelectCosmetic(ctx, "border_pink"))
	got, _ := sess.Progression()
	assert.Equal(t, "border_pink", got.SelectedBorder)

	assert.ErrorIs(t, sess.SelectCosmetic(ctx, "table_gold"), domain.ErrNotOwned)
	assert.ErrorIs(t, sess.SelectCosmetic(ctx, "no_such"), domain.ErrItemNotFound)
}

func TestSpin_AchievementEarned(t *testing.T) {
	// A straight hit on the first spin earns the straight badge.
	rng := utils.ScriptedRNG(drawRed)
	sess := newTestSession(t, Options{RNG: rng})
	require.NoError(t, sess.PlaceStraightBet(18, 10))

	report, err := sess.Spin(context.Background())
	require.NoError(t, err)

	require.True(t, report.Payout.StraightHit())
	ids := make([]string, 0, len(report.NewAchievements))
	for _, a := range report.NewAchievements {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "first_straight")
	assert.Contains(t, ids, "big_win", "350 net gain clears the big-win bar")
	assert.True(t, sess.Achievements().Has("first_straight"))
}
