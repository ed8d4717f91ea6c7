package simulate

import (
	"predictionMarket/internal/market"
	"predictionMarket/internal/model"
)

// Accumulator tallies the activity of one market during a run.
type Accumulator struct {
	Market      string
	BuyCount    uint64
	FailedSteps uint64
	OverSpent   float64
	UnderSpent  float64
	OverShares  float64
	UnderShares float64
	Resolution  *model.Resolution
}

func NewAccumulator(name string) *Accumulator {
	return &Accumulator{Market: name}
}

func (a *Accumulator) AddBuy(side model.Side, amount, shares float64) {
	switch side {
	case model.SideOver:
		a.OverSpent += amount
		a.OverShares += shares
	case model.SideUnder:
		a.UnderSpent += amount
		a.UnderShares += shares
	default:
		return
	}
	a.BuyCount++
}

// AddResolution keeps the most recent resolution.
func (a *Accumulator) AddResolution(res model.Resolution) {
	a.Resolution = &res
}

func (a *Accumulator) AddFailure() {
	a.FailedSteps++
}

// Summary builds the report summary for m.
func (a *Accumulator) Summary(m *market.Market) model.MarketSummary {
	summary := model.MarketSummary{
		Kind:              model.KindSummary,
		MarketID:          model.MarketID(a.Market),
		Market:            a.Market,
		BuyCount:          a.BuyCount,
		FailedSteps:       a.FailedSteps,
		OverSpent:         formatAmount(a.OverSpent),
		UnderSpent:        formatAmount(a.UnderSpent),
		OverSharesIssued:  formatAmount(a.OverShares),
		UnderSharesIssued: formatAmount(a.UnderShares),
		Resolution:        a.Resolution,
	}
	if m == nil {
		return summary
	}

	summary.Threshold = m.Threshold()
	summary.State = m.Snapshot()
	if price, err := m.CurrentPrice(); err == nil {
		summary.FinalPrice = &price
	}
	return summary
}
