package model

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// MarketState is a point-in-time snapshot of a market.
type MarketState struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Threshold        float64  `json:"threshold"`
	InitialLiquidity *float64 `json:"initial_liquidity,omitempty"`
	OverPool         *float64 `json:"over_pool,omitempty"`
	UnderPool        *float64 `json:"under_pool,omitempty"`
	TotalOverShares  *float64 `json:"total_over_shares,omitempty"`
	TotalUnderShares *float64 `json:"total_under_shares,omitempty"`
}

// Seeded reports whether the market was created with initial liquidity.
func (s MarketState) Seeded() bool {
	return s.InitialLiquidity != nil
}

// MarketID derives a stable identifier from a market name.
func MarketID(name string) string {
	return crypto.Keccak256Hash([]byte(name)).Hex()
}
