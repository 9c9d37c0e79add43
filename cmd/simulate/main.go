// Command simulate runs a headless session for a number of spins and prints
// a summary. Useful for eyeballing payout balance, event frequency and
// progression pacing without a frontend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/kairokome/waifu-roulette-lounge/internal/analytics"
	"github.com/kairokome/waifu-roulette-lounge/internal/config"
	"github.com/kairokome/waifu-roulette-lounge/internal/domain"
	"github.com/kairokome/waifu-roulette-lounge/internal/logger"
	"github.com/kairokome/waifu-roulette-lounge/internal/session"
	"github.com/kairokome/waifu-roulette-lounge/internal/storage"
	"github.com/kairokome/waifu-roulette-lounge/internal/utils"
)

func main() {
	spins := flag.Int("spins", 200, "number of spins to simulate")
	seed := flag.Int64("seed", 0, "RNG seed; 0 uses a random seed")
	stake := flag.Int("stake", 10, "chips staked per spin")
	memory := flag.Bool("memory", false, "use in-memory storage instead of the data dir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	var store storage.Store
	if *memory {
		store = storage.NewMemoryStore()
	} else {
		store, err = storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open data dir %s: %v", cfg.DataDir, err)
		}
	}

	rng := utils.DefaultRNG()
	if *seed != 0 {
		rng = utils.SeededRNG(*seed)
	}

	ctx := context.Background()
	sess := session.New(ctx, session.Options{
		Store:            store,
		RNG:              rng,
		StartingBankroll: cfg.StartingBankroll,
		BonusStacking:    cfg.BonusStacking,
	})
	ctx = logger.WithSessionID(ctx, sess.ID())

	events := 0
	levelUps := 0
	broke := false

	for i := 0; i < *spins; i++ {
		if err := placeBets(sess, *stake, rng); err != nil {
			broke = true
			break
		}
		report, err := sess.Spin(ctx)
		if err != nil {
			log.Fatalf("spin %d failed: %v", i+1, err)
		}
		if report.Event != nil {
			events++
		}
		if report.LevelUp.LeveledUp {
			levelUps++
		}
	}

	printSummary(sess, events, levelUps, broke)
}

// placeBets spreads the stake over one outside bet and, one spin in ten, a
// straight number, so both payout paths get exercised.
func placeBets(sess *session.Session, stake int, rng utils.RNG) error {
	outside := domain.OutsideBetTypes[utils.IntBelow(rng, len(domain.OutsideBetTypes))]
	if err := sess.PlaceBet(outside, stake); err != nil {
		return err
	}
	if utils.IntBelow(rng, 10) == 0 {
		number := utils.IntBelow(rng, 37)
		if err := sess.PlaceStraightBet(number, stake/2+1); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(sess *session.Session, events, levelUps int, broke bool) {
	stats := sess.Analytics()
	prog, level := sess.Progression()

	fmt.Println("--- Session ---")
	fmt.Printf("Bankroll: %d chips\n", sess.Bankroll())
	fmt.Printf("Spins: %d (W %d / L %d / P %d, %d%% win rate)\n",
		stats.TotalSpins, stats.Wins, stats.Losses, stats.Pushes, analytics.WinRate(stats))
	fmt.Printf("Wagered: %d  Won: %d  Biggest win: %d\n",
		stats.TotalWagered, stats.TotalWon, stats.BiggestWin)
	fmt.Printf("Longest streaks: %d wins / %d losses\n",
		stats.LongestWinStreak, stats.LongestLossStreak)
	if broke {
		fmt.Println("Stopped early: bankroll could not cover the stake")
	}

	fmt.Println("\n--- Progression ---")
	fmt.Printf("Level %d (%d/%d XP, %d%%)  Total XP: %d\n",
		level.Level, level.CurrentXP, level.CurrentXP+level.XPToNextLevel, level.ProgressPercent, prog.TotalXP)
	fmt.Printf("Level-ups: %d  Cosmetics unlocked: %d\n", levelUps, len(prog.UnlockedCosmetics))

	fmt.Println("\n--- Events ---")
	fmt.Printf("Triggered: %d\n", events)
	for _, record := range sess.Events().EventHistory {
		fmt.Printf("  spin %4d  %s\n", record.Spin, record.EventID)
	}

	printMetrics()
}

// printMetrics dumps the counter families from the default registry, which
// doubles as a sanity check that instrumentation is wired.
func printMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Printf("failed to gather metrics: %v", err)
		return
	}
	fmt.Println("\n--- Metrics ---")
	for _, fam := range families {
		if fam.GetName() == "" || len(fam.GetMetric()) == 0 {
			continue
		}
		for _, m := range fam.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("%s%s %v\n", fam.GetName(), labelString(m.GetLabel()), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Printf("%s_count %d\n", fam.GetName(), m.GetHistogram().GetSampleCount())
			}
		}
	}
}

func labelString(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	out := "{"
	for i, p := range pairs {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return out + "}"
}
