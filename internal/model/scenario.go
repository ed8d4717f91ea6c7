package model

// MarketSpec describes a market to create before a run.
type MarketSpec struct {
	Name             string   `mapstructure:"name" json:"name"`
	Threshold        float64  `mapstructure:"threshold" json:"threshold"`
	InitialLiquidity *float64 `mapstructure:"initial_liquidity" json:"initial_liquidity,omitempty"`
}

// Step is one operation against a named market. Side and Result are kept
// as raw text and validated when the step runs.
type Step struct {
	Market string  `mapstructure:"market" json:"market"`
	Action string  `mapstructure:"action" json:"action"`
	Side   string  `mapstructure:"side" json:"side,omitempty"`
	Amount float64 `mapstructure:"amount" json:"amount,omitempty"`
	Result string  `mapstructure:"result" json:"result,omitempty"`
}

// Scenario is an ordered script of market operations.
type Scenario struct {
	Markets []MarketSpec `mapstructure:"markets" json:"markets"`
	Steps   []Step       `mapstructure:"steps" json:"steps"`
}
