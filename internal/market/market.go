package market

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"predictionMarket/internal/model"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive finite number")
	ErrInvalidLiquidity = errors.New("initial liquidity must be a non-negative finite number")
	ErrUnseeded         = errors.New("market has no initial liquidity")
	ErrNoLiquidity      = errors.New("total liquidity is zero")
)

// Market prices and resolves a single over/under market.
//
// Shares for a buy are issued at the buying side's current price and the
// issued quantity is added to both that side's pool and its share total.
// The opposite side is never touched by a buy.
type Market struct {
	name      string
	threshold float64
	seed      *float64

	mu               sync.Mutex
	overPool         float64
	underPool        float64
	totalOverShares  float64
	totalUnderShares float64
}

// New creates a market. A nil initialLiquidity leaves the market unseeded.
func New(name string, threshold float64, initialLiquidity *float64) (*Market, error) {
	m := &Market{name: name, threshold: threshold}
	if initialLiquidity == nil {
		return m, nil
	}

	seed := *initialLiquidity
	if math.IsNaN(seed) || math.IsInf(seed, 0) || seed < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLiquidity, seed)
	}
	m.seed = &seed
	m.overPool = seed
	m.underPool = seed
	m.totalOverShares = seed
	m.totalUnderShares = seed
	return m, nil
}

func (m *Market) Name() string {
	return m.name
}

func (m *Market) Threshold() float64 {
	return m.threshold
}

// InitialLiquidity returns the seed and whether one was set.
func (m *Market) InitialLiquidity() (float64, bool) {
	if m.seed == nil {
		return 0, false
	}
	return *m.seed, true
}

// CurrentPrice returns each side's share of total liquidity.
func (m *Market) CurrentPrice() (model.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentPriceLocked()
}

func (m *Market) currentPriceLocked() (model.Price, error) {
	if m.seed == nil {
		return model.Price{}, ErrUnseeded
	}
	total := m.overPool + m.underPool
	if total == 0 {
		return model.Price{}, ErrNoLiquidity
	}
	return model.Price{
		Over:  m.overPool / total,
		Under: m.underPool / total,
	}, nil
}

// BuyShares spends amount on side and returns the shares issued.
func (m *Market) BuyShares(side model.Side, amount float64) (float64, error) {
	if !side.Valid() {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidSide, side)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	price, err := m.currentPriceLocked()
	if err != nil {
		return 0, err
	}

	shares := amount * price.Of(side)
	if side == model.SideOver {
		m.overPool += shares
		m.totalOverShares += shares
	} else {
		m.underPool += shares
		m.totalUnderShares += shares
	}
	return shares, nil
}

// ResolveMarket computes the payout for result winning. The losing pool net
// of the seed is split across the winning shares net of the seed. State is
// not modified, so repeated calls with different results are allowed.
func (m *Market) ResolveMarket(result model.Side) (model.Resolution, error) {
	if !result.Valid() {
		return model.Resolution{}, fmt.Errorf("%w: %q", model.ErrInvalidSide, result)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seed == nil {
		return model.Resolution{}, ErrUnseeded
	}
	seed := *m.seed

	var losingPool, winningTotal float64
	if result == model.SideOver {
		losingPool = m.underPool
		winningTotal = m.totalOverShares
	} else {
		losingPool = m.overPool
		winningTotal = m.totalUnderShares
	}

	res := model.Resolution{
		Result:        result,
		PayoutPool:    losingPool - seed,
		WinningShares: winningTotal - seed,
	}
	if res.WinningShares > 0 {
		res.PayoutPerShare = res.PayoutPool / res.WinningShares
	}
	return res, nil
}

// Snapshot returns the current state.
func (m *Market) Snapshot() model.MarketState {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := model.MarketState{
		ID:        model.MarketID(m.name),
		Name:      m.name,
		Threshold: m.threshold,
	}
	if m.seed == nil {
		return state
	}

	seed := *m.seed
	overPool, underPool := m.overPool, m.underPool
	overShares, underShares := m.totalOverShares, m.totalUnderShares
	state.InitialLiquidity = &seed
	state.OverPool = &overPool
	state.UnderPool = &underPool
	state.TotalOverShares = &overShares
	state.TotalUnderShares = &underShares
	return state
}
