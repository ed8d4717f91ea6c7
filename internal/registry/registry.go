package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"predictionMarket/internal/market"
	"predictionMarket/internal/model"
)

var (
	ErrAlreadyExists = errors.New("market already exists")
	ErrNotFound      = errors.New("market not found")
	ErrInvalidName   = errors.New("market name is required")
)

// Registry holds markets keyed by unique name.
type Registry struct {
	mu      sync.RWMutex
	markets map[string]*market.Market
	logger  *zap.Logger
}

func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		markets: make(map[string]*market.Market),
		logger:  logger,
	}
}

// Create registers a new market. An existing market with the same name is
// left untouched.
func (r *Registry) Create(name string, threshold float64, initialLiquidity *float64) (*market.Market, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.markets[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyExists, name)
	}

	m, err := market.New(name, threshold, initialLiquidity)
	if err != nil {
		return nil, fmt.Errorf("create market %q: %w", name, err)
	}
	r.markets[name] = m

	fields := []zap.Field{
		zap.String("market", name),
		zap.String("market_id", model.MarketID(name)),
		zap.Float64("threshold", threshold),
	}
	if initialLiquidity != nil {
		fields = append(fields, zap.Float64("initial_liquidity", *initialLiquidity))
	} else {
		fields = append(fields, zap.Bool("seeded", false))
	}
	r.logger.Debug("market created", fields...)

	return m, nil
}

// Get returns the market registered under name.
func (r *Registry) Get(name string) (*market.Market, error) {
	r.mu.RLock()
	m, ok := r.markets[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return m, nil
}

// List returns a snapshot of name -> threshold.
func (r *Registry) List() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]float64, len(r.markets))
	for name, m := range r.markets {
		out[name] = m.Threshold()
	}
	return out
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.markets))
	for name := range r.markets {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}
