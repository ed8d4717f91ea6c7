package simulate

import "predictionMarket/internal/model"

// DemoOptions parameterize DemoScenario.
type DemoOptions struct {
	Name             string
	Threshold        float64
	InitialLiquidity *float64
	Amount           float64
	Result           string
}

// DefaultDemoOptions seeds a single market with 1000 on both sides.
func DefaultDemoOptions() DemoOptions {
	seed := 1000.0
	return DemoOptions{
		Name:             "Market 1",
		Threshold:        5000,
		InitialLiquidity: &seed,
		Amount:           100,
		Result:           string(model.SideUnder),
	}
}

// DemoScenario buys over once, under twice, then resolves.
func DemoScenario(opts DemoOptions) model.Scenario {
	price := model.Step{Market: opts.Name, Action: model.ActionPrice}
	buy := func(side model.Side) model.Step {
		return model.Step{Market: opts.Name, Action: model.ActionBuy, Side: string(side), Amount: opts.Amount}
	}

	return model.Scenario{
		Markets: []model.MarketSpec{{
			Name:             opts.Name,
			Threshold:        opts.Threshold,
			InitialLiquidity: opts.InitialLiquidity,
		}},
		Steps: []model.Step{
			price,
			buy(model.SideOver),
			price,
			buy(model.SideUnder),
			price,
			buy(model.SideUnder),
			price,
			{Market: opts.Name, Action: model.ActionResolve, Result: opts.Result},
		},
	}
}
