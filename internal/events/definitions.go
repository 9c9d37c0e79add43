package events

import "github.com/kairokome/waifu-roulette-lounge/internal/domain"

// Effect computes an event's outcome as a delta against the player economy.
// Effects never mutate anything: the session folds the delta in and floors
// the chip balance at zero. For outcome-dependent events spin is non-nil and
// carries the just-resolved result; for everything else it is ignored.
type Effect func(econ domain.EconomySnapshot, spin *domain.SpinContext) domain.Delta

// Definition is one entry in the event catalog.
type Definition struct {
	ID            string
	Title         string
	Text          string
	Category      domain.EventCategory
	Rarity        domain.Rarity
	CooldownSpins int
	// OutcomeDependent effects must only be evaluated after payout
	// resolution; the engine enforces the two-phase split.
	OutcomeDependent bool
	Effect           Effect
}

func chipDelta(amount int, notice domain.Notice) Effect {
	return func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
		return domain.Delta{Chips: amount, Notice: &notice}
	}
}

func modifierDelta(mod domain.Modifier, notice domain.Notice) Effect {
	return func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
		m := mod
		return domain.Delta{Modifier: &m, Notice: &notice}
	}
}

// Catalog is the full event table: fourteen common, five rare, one epic.
// Cooldowns are in spins.
var Catalog = []Definition{
	// Common
	{
		ID: "ramen_discount", Title: "Late-night ramen discount", Text: "Found a coupon in your pocket.",
		Category: domain.EventFinancial, Rarity: domain.RarityCommon, CooldownSpins: 5,
		Effect: chipDelta(25, domain.Notice{Title: "Ramen Discount!", Text: "+25 chips", Severity: domain.SeverityPositive}),
	},
	{
		ID: "arcade_find", Title: "Arcade cabinet find", Text: "Found coins under the cabinet.",
		Category: domain.EventFinancial, Rarity: domain.RarityCommon, CooldownSpins: 4,
		Effect: chipDelta(15, domain.Notice{Title: "Arcade Find!", Text: "+15 chips", Severity: domain.SeverityPositive}),
	},
	{
		ID: "train_delay", Title: "Train delay", Text: "Compensation from the station.",
		Category: domain.EventFinancial, Rarity: domain.RarityCommon, CooldownSpins: 6,
		Effect: chipDelta(10, domain.Notice{Title: "Train Delay!", Text: "+10 chips", Severity: domain.SeverityPositive}),
	},
	{
		ID: "lucky_charm", Title: "Lucky charm glows", Text: "Your charm is vibrating!",
		Category: domain.EventLuck, Rarity: domain.RarityCommon, CooldownSpins: 5,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{XP: 10, Notice: &domain.Notice{Title: "Lucky Charm!", Text: "+10 XP", Severity: domain.SeverityPositive}}
		},
	},
	{
		ID: "street_performer", Title: "Street performer", Text: "Busker's rhythm boosts you.",
		Category: domain.EventLuck, Rarity: domain.RarityCommon, CooldownSpins: 4,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{XP: 5, Notice: &domain.Notice{Title: "Street Rhythm!", Text: "+5 XP", Severity: domain.SeverityPositive}}
		},
	},
	{
		ID: "bubble_tip", Title: "Bubble-era tip", Text: "Tip jar overflows.",
		Category: domain.EventFinancial, Rarity: domain.RarityCommon, CooldownSpins: 5,
		Effect: chipDelta(20, domain.Notice{Title: "Bubble Tip!", Text: "+20 chips", Severity: domain.SeverityPositive}),
	},
	{
		ID: "phone_booth", Title: "Phone booth call", Text: "\"Bet black!\" - anonymous tip.",
		Category: domain.EventRisk, Rarity: domain.RarityCommon, CooldownSpins: 8,
		OutcomeDependent: true,
		Effect: func(_ domain.EconomySnapshot, spin *domain.SpinContext) domain.Delta {
			if spin != nil && spin.Outcome.Color == domain.ColorBlack {
				return domain.Delta{Chips: 30, Notice: &domain.Notice{Title: "Tip Was Right!", Text: "+30 chips", Severity: domain.SeverityPositive}}
			}
			return domain.Delta{Chips: -10, Notice: &domain.Notice{Title: "Tip Was Wrong!", Text: "-10 chips", Severity: domain.SeverityNegative}}
		},
	},
	{
		ID: "neon_focus", Title: "Neon focus", Text: "The lights sharpen your vision.",
		Category: domain.EventLuck, Rarity: domain.RarityCommon, CooldownSpins: 6,
		Effect: modifierDelta(
			domain.Modifier{ID: "neon_focus", StreakBonus: 2, Duration: 3},
			domain.Notice{Title: "Neon Focus!", Text: "+2 streak bonus (3 spins)", Severity: domain.SeverityPositive},
		),
	},
	{
		ID: "cashier_error", Title: "Cashier error", Text: "Oops! Extra change.",
		Category: domain.EventFinancial, Rarity: domain.RarityCommon, CooldownSpins: 7,
		Effect: chipDelta(30, domain.Notice{Title: "Cashier Error!", Text: "+30 chips", Severity: domain.SeverityPositive}),
	},
	{
		ID: "mood_lift", Title: "Dealer smiles", Text: "The dealer winks at you.",
		Category: domain.EventSocial, Rarity: domain.RarityCommon, CooldownSpins: 5,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Notice: &domain.Notice{Title: "Mood Lift!", Text: "The dealer is in a good mood", Severity: domain.SeverityPositive}}
		},
	},
	{
		ID: "taxi_meter", Title: "Taxi meter", Text: "Meter ran too long.",
		Category: domain.EventPenalty, Rarity: domain.RarityCommon, CooldownSpins: 6,
		Effect: chipDelta(-15, domain.Notice{Title: "Taxi Fare", Text: "-15 chips", Severity: domain.SeverityNegative}),
	},
	{
		ID: "coin_drop", Title: "Coin drop", Text: "Oops! Stack fell.",
		Category: domain.EventPenalty, Rarity: domain.RarityCommon, CooldownSpins: 4,
		Effect: chipDelta(-10, domain.Notice{Title: "Coin Drop!", Text: "-10 chips", Severity: domain.SeverityNegative}),
	},
	{
		ID: "good_omen", Title: "Good omen", Text: "The stars align.",
		Category: domain.EventLuck, Rarity: domain.RarityCommon, CooldownSpins: 8,
		Effect: modifierDelta(
			domain.Modifier{ID: "good_omen", PayoutBonus: 0.10, Duration: 1},
			domain.Notice{Title: "Good Omen!", Text: "+10% payout this spin", Severity: domain.SeverityPositive},
		),
	},
	{
		ID: "static_glitch", Title: "CRT static", Text: "Signal interference...",
		Category: domain.EventPenalty, Rarity: domain.RarityCommon, CooldownSpins: 7,
		Effect: modifierDelta(
			domain.Modifier{ID: "static_glitch", NoXP: true, Duration: 1},
			domain.Notice{Title: "Static Glitch!", Text: "No XP this spin", Severity: domain.SeverityNeutral},
		),
	},

	// Rare
	{
		ID: "lucky_spin", Title: "Lucky Spin!", Text: "Fortune favors you!",
		Category: domain.EventLuck, Rarity: domain.RarityRare, CooldownSpins: 15,
		Effect: chipDelta(60, domain.Notice{Title: "LUCKY!", Text: "+60 chips", Severity: domain.SeverityEpic}),
	},
	{
		ID: "rival_bump", Title: "Rival encounter", Text: "Bumped into a rival player!",
		Category: domain.EventRisk, Rarity: domain.RarityRare, CooldownSpins: 12,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{StreakReset: true, Notice: &domain.Notice{Title: "Rival!", Text: "Streak reset!", Severity: domain.SeverityNegative}}
		},
	},
	{
		ID: "high_roller", Title: "High roller energy", Text: "You feel like a VIP!",
		Category: domain.EventLuck, Rarity: domain.RarityRare, CooldownSpins: 15,
		Effect: modifierDelta(
			domain.Modifier{ID: "high_roller", PayoutBonus: 0.15, Duration: 3},
			domain.Notice{Title: "High Roller!", Text: "+15% payouts (3 spins)", Severity: domain.SeverityEpic},
		),
	},
	{
		ID: "night_market", Title: "Night market hustle", Text: "Quick thinking pays off.",
		Category: domain.EventFinancial, Rarity: domain.RarityRare, CooldownSpins: 12,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Chips: 25, XP: 15, Notice: &domain.Notice{Title: "Night Market!", Text: "+25 chips, +15 XP", Severity: domain.SeverityEpic}}
		},
	},
	{
		ID: "dealer_dare", Title: "Dealer dares you", Text: "\"Straight bet. Go big or go home.\"",
		Category: domain.EventRisk, Rarity: domain.RarityRare, CooldownSpins: 15,
		OutcomeDependent: true,
		Effect: func(_ domain.EconomySnapshot, spin *domain.SpinContext) domain.Delta {
			if spin != nil && spin.HadStraightBet && spin.StraightWon {
				return domain.Delta{Chips: 100, Notice: &domain.Notice{Title: "Dare Won!", Text: "+100 chips!", Severity: domain.SeverityEpic}}
			}
			return domain.Delta{Chips: -25, Notice: &domain.Notice{Title: "Dare Lost", Text: "-25 chips", Severity: domain.SeverityNegative}}
		},
	},

	// Epic
	{
		ID: "police_raid", Title: "POLICE RAID!", Text: "Everyone runs! But you kept your cool.",
		Category: domain.EventRisk, Rarity: domain.RarityEpic, CooldownSpins: 25,
		Effect: func(domain.EconomySnapshot, *domain.SpinContext) domain.Delta {
			return domain.Delta{Chips: -80, XP: 150, Notice: &domain.Notice{Title: "POLICE RAID!", Text: "-80 chips, +150 XP!", Severity: domain.SeverityEpic}}
		},
	},
}

// ByID returns the catalog entry for an event ID, or nil if unknown.
func ByID(id string) *Definition {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
