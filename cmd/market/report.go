package main

import (
	"fmt"
	"io"
	"sort"

	"predictionMarket/internal/model"
	"predictionMarket/internal/simulate"
)

func printReport(w io.Writer, result simulate.Result, markets map[string]float64) error {
	fmt.Fprintf(w, "steps: %d failed: %d\n", result.Steps, result.Failed)
	for _, s := range result.Summaries {
		fmt.Fprintf(w, "\nmarket %q (%s) threshold=%g\n", s.Market, s.MarketID, s.Threshold)
		fmt.Fprintf(w, "  buys=%d failed=%d over_spent=%s under_spent=%s\n", s.BuyCount, s.FailedSteps, s.OverSpent, s.UnderSpent)
		fmt.Fprintf(w, "  shares issued over=%s under=%s\n", s.OverSharesIssued, s.UnderSharesIssued)
		if s.FinalPrice != nil {
			fmt.Fprintf(w, "  price over=%.4f under=%.4f\n", s.FinalPrice.Over, s.FinalPrice.Under)
		} else {
			fmt.Fprintln(w, "  price unavailable")
		}
		if s.Resolution != nil {
			writeResolution(w, *s.Resolution)
		}
	}

	names := make([]string, 0, len(markets))
	for name := range markets {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "\nall markets:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %g\n", name, markets[name])
	}
	return nil
}

func writeResolution(w io.Writer, res model.Resolution) {
	fmt.Fprintf(w, "  resolved %s: payout_per_share=%g payout_pool=%g winning_shares=%g\n",
		res.Result, res.PayoutPerShare, res.PayoutPool, res.WinningShares)
}
