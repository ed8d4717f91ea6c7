package main

import (
	"bytes"
	"strings"
	"testing"

	"predictionMarket/internal/model"
	"predictionMarket/internal/simulate"
)

func TestPrintReport(t *testing.T) {
	result := simulate.Result{
		Steps:  2,
		Failed: 1,
		Summaries: []model.MarketSummary{{
			Market:     "M",
			MarketID:   model.MarketID("M"),
			Threshold:  5000,
			BuyCount:   1,
			OverSpent:  "100.000000",
			FinalPrice: &model.Price{Over: 0.5, Under: 0.5},
			Resolution: &model.Resolution{Result: model.SideUnder, PayoutPool: 50},
		}},
	}

	var buf bytes.Buffer
	if err := printReport(&buf, result, map[string]float64{"M": 5000, "A": 1}); err != nil {
		t.Fatalf("print: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"steps: 2 failed: 1",
		"market \"M\"",
		"price over=0.5000 under=0.5000",
		"resolved under: payout_per_share=0 payout_pool=50",
		"  A: 1\n  M: 5000",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
