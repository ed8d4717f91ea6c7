package model

// Price is the share of total liquidity held by each side.
type Price struct {
	Over  float64 `json:"over"`
	Under float64 `json:"under"`
}

// Of returns the price of a single side.
func (p Price) Of(side Side) float64 {
	if side == SideUnder {
		return p.Under
	}
	return p.Over
}

// Resolution is the payout computed for a declared winning side.
type Resolution struct {
	Result         Side    `json:"result"`
	PayoutPerShare float64 `json:"payout_per_share"`
	PayoutPool     float64 `json:"payout_pool"`
	WinningShares  float64 `json:"winning_shares"`
}
