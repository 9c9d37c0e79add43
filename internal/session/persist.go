package session

import (
	"context"

	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/storage"
)

// loadAll restores every persisted blob, falling back to fresh state per key.
// Storage failures are logged and treated as a missing key so a corrupt or
// unavailable store never blocks the game from starting.
func (s *Session) loadAll(ctx context.Context) {
	log := s.log(ctx)

	s.bets = domain.NewBetSet()
	s.bankroll = s.startingBankroll
	s.analytics = domain.NewAnalyticsState()
	s.prog = domain.NewProgressionState()
	s.eventState = domain.NewEventState()
	s.shop = domain.NewShopState()
	s.outfits = domain.NewOutfitState()
	s.achievements = domain.AchievementState{}

	var econ economyBlob
	if found := s.load(ctx, storage.KeyEconomy, &econ); found {
		s.bankroll = econ.Bankroll
		s.history = econ.History
		s.analytics = econ.Analytics
	}
	s.load(ctx, storage.KeyProgression, &s.prog)
	if found := s.load(ctx, storage.KeyEvents, &s.eventState); found && s.eventState.Cooldowns == nil {
		s.eventState.Cooldowns = make(map[string]int)
	}
	if found := s.load(ctx, storage.KeyShop, &s.shop); found && s.shop.OwnedItems == nil {
		s.shop.OwnedItems = make(map[string]bool)
	}
	s.load(ctx, storage.KeyOutfits, &s.outfits)
	s.load(ctx, storage.KeyAchievements, &s.achievements)

	log.Debug("session state loaded", "bankroll", s.bankroll, "total_xp", s.prog.TotalXP, "spin_count", s.eventState.SpinCount)
}

func (s *Session) load(ctx context.Context, key string, dest any) bool {
	found, err := s.store.Get(key, dest)
	if err != nil {
		s.log(ctx).Warn("failed to load state, using defaults", "key", key, "error", err)
		return false
	}
	return found
}

// persistAll writes every blob back. Failures are logged and swallowed;
// gameplay never depends on persistence succeeding.
func (s *Session) persistAll(ctx context.Context) {
	econ := economyBlob{
		Bankroll:  s.bankroll,
		History:   s.history,
		Analytics: s.analytics,
	}
	s.persist(ctx, storage.KeyEconomy, econ)
	s.persist(ctx, storage.KeyProgression, s.prog)
	s.persist(ctx, storage.KeyEvents, s.eventState)
	s.persist(ctx, storage.KeyShop, s.shop)
	s.persist(ctx, storage.KeyOutfits, s.outfits)
	s.persist(ctx, storage.KeyAchievements, s.achievements)
}

func (s *Session) persist(ctx context.Context, key string, value any) {
	if err := s.store.Set(key, value); err != nil {
		s.log(ctx).Warn("failed to persist state", "key", key, "error", err)
	}
}

// Reset wipes the session back to a fresh start and clears persisted state.
// Progression, shop, outfits and achievements survive a reset; only the
// economy (bankroll, bets, history, analytics) starts over.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bets = domain.NewBetSet()
	s.bankroll = s.startingBankroll
	s.history = nil
	s.analytics = domain.NewAnalyticsState()

	if err := s.store.Delete(storage.KeyEconomy); err != nil {
		s.log(ctx).Warn("failed to clear persisted economy", "error", err)
	}
	s.log(ctx).Info("session reset", "bankroll", s.bankroll)
}
