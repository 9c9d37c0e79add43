package domain

// StreakType marks which classification the current streak is made of.
type StreakType string

const (
	StreakNone StreakType = ""
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
)

// AnalyticsState holds cumulative session counters. Counters only ever grow;
// the state is replaced wholesale on an explicit player reset.
type AnalyticsState struct {
	TotalSpins        int        `json:"total_spins"`
	Wins              int        `json:"wins"`
	Losses            int        `json:"losses"`
	Pushes            int        `json:"pushes"`
	TotalWagered      int        `json:"total_wagered"`
	TotalWon          int        `json:"total_won"`
	BiggestWin        int        `json:"biggest_win"`
	CurrentStreak     int        `json:"current_streak"`
	CurrentStreakType StreakType `json:"current_streak_type"`
	LongestWinStreak  int        `json:"longest_win_streak"`
	LongestLossStreak int        `json:"longest_loss_streak"`
}

// NewAnalyticsState returns the zero session state.
func NewAnalyticsState() AnalyticsState {
	return AnalyticsState{CurrentStreakType: StreakNone}
}
