package domain

// Classification is the net result of a resolved spin.
type Classification string

const (
	// ClassificationNone marks a spin with zero total stake; it is neither a
	// win, a loss nor a push and must not touch analytics.
	ClassificationNone Classification = "none"
	ClassificationWin  Classification = "win"
	ClassificationLoss Classification = "loss"
	ClassificationPush Classification = "push"
)

// WinningBet is one bet entry that paid out.
type WinningBet struct {
	Type   BetType `json:"type"`
	Number int     `json:"number,omitempty"` // set for straight bets only
	Stake  int     `json:"stake"`
	Win    int     `json:"win"`
}

// PayoutResult is the resolution of one outcome against a bet set.
// It is derived state and is never persisted directly.
type PayoutResult struct {
	TotalWinnings  int            `json:"total_winnings"`
	TotalStaked    int            `json:"total_staked"`
	NetGain        int            `json:"net_gain"`
	Classification Classification `json:"classification"`
	WinningBets    []WinningBet   `json:"winning_bets,omitempty"`
}

// IsWin reports a positive net gain.
func (r PayoutResult) IsWin() bool { return r.Classification == ClassificationWin }

// IsLoss reports a negative net gain.
func (r PayoutResult) IsLoss() bool { return r.Classification == ClassificationLoss }

// IsPush reports staked money returned exactly.
func (r PayoutResult) IsPush() bool { return r.Classification == ClassificationPush }

// StraightHit reports whether any straight bet paid out.
func (r PayoutResult) StraightHit() bool {
	for _, wb := range r.WinningBets {
		if wb.Type == BetStraight {
			return true
		}
	}
	return false
}
