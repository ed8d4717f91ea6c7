package model

// Step actions understood by the driver.
const (
	ActionPrice   = "price"
	ActionBuy     = "buy"
	ActionResolve = "resolve"
)

// StepRecord is one line of a run report.
type StepRecord struct {
	Kind       string      `json:"kind"`
	Seq        int         `json:"seq"`
	MarketID   string      `json:"market_id"`
	Market     string      `json:"market"`
	Action     string      `json:"action"`
	Side       Side        `json:"side,omitempty"`
	Amount     float64     `json:"amount,omitempty"`
	Shares     float64     `json:"shares,omitempty"`
	Price      *Price      `json:"price,omitempty"`
	Resolution *Resolution `json:"resolution,omitempty"`
	State      MarketState `json:"state"`
	Error      string      `json:"error,omitempty"`
	RecordedAt string      `json:"recorded_at"`
}

// MarketSummary aggregates the buys and the last resolution of one market.
type MarketSummary struct {
	Kind              string      `json:"kind"`
	MarketID          string      `json:"market_id"`
	Market            string      `json:"market"`
	Threshold         float64     `json:"threshold"`
	BuyCount          uint64      `json:"buy_count"`
	FailedSteps       uint64      `json:"failed_steps"`
	OverSpent         string      `json:"over_spent"`
	UnderSpent        string      `json:"under_spent"`
	OverSharesIssued  string      `json:"over_shares_issued"`
	UnderSharesIssued string      `json:"under_shares_issued"`
	FinalPrice        *Price      `json:"final_price,omitempty"`
	Resolution        *Resolution `json:"resolution,omitempty"`
	State             MarketState `json:"state"`
}

// Record kinds written to a report.
const (
	KindStep    = "step"
	KindSummary = "summary"
)
