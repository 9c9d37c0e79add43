package metrics

// Metric names
const (
	MetricNameSpinsTotal           = "lounge_spins_total"
	MetricNameChipsWageredTotal    = "lounge_chips_wagered_total"
	MetricNameChipsWonTotal        = "lounge_chips_won_total"
	MetricNameEventsTriggeredTotal = "lounge_events_triggered_total"
	MetricNameLevelUpsTotal        = "lounge_level_ups_total"
	MetricNameXPAwardedTotal       = "lounge_xp_awarded_total"
	MetricNameNetGain              = "lounge_spin_net_gain"
)

// Help texts
const (
	HelpTextSpinsTotal           = "Total spins resolved, by classification"
	HelpTextChipsWageredTotal    = "Total chips staked across all spins"
	HelpTextChipsWonTotal        = "Total chip winnings paid out"
	HelpTextEventsTriggeredTotal = "Random events triggered, by event ID and rarity"
	HelpTextLevelUpsTotal        = "Level boundaries crossed"
	HelpTextXPAwardedTotal       = "Experience points awarded"
	HelpTextNetGain              = "Per-spin net gain distribution"
)

// Label names
const (
	LabelClassification = "classification"
	LabelEvent          = "event"
	LabelRarity         = "rarity"
)

// NetGainBuckets covers typical single-spin swings up to a max straight hit.
var NetGainBuckets = []float64{-500, -100, -50, -10, 0, 10, 50, 100, 500, 1000, 5000}
