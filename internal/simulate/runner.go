package simulate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"predictionMarket/internal/market"
	"predictionMarket/internal/model"
	"predictionMarket/internal/registry"
	"predictionMarket/internal/storage"
)

// Config controls run behavior.
type Config struct {
	BatchSize   int
	StopOnError bool
	Now         func() time.Time
}

// Result summarizes a completed run.
type Result struct {
	Steps     int
	Failed    int
	Summaries []model.MarketSummary
}

// Runner executes scenarios against a registry and reports each step.
type Runner struct {
	cfg          Config
	registry     *registry.Registry
	storage      storage.Storage
	logger       *zap.Logger
	accumulators map[string]*Accumulator
}

func NewRunner(cfg Config, reg *registry.Registry, sink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = storage.NopStorage{}
	}
	if reg == nil {
		reg = registry.New(logger)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Runner{
		cfg:          cfg,
		registry:     reg,
		storage:      sink,
		logger:       logger,
		accumulators: make(map[string]*Accumulator),
	}
}

// Registry returns the registry the runner operates on.
func (r *Runner) Registry() *registry.Registry {
	return r.registry
}

// Run creates the scenario's markets, executes its steps in order and writes
// one summary per registered market.
func (r *Runner) Run(ctx context.Context, scenario model.Scenario) (Result, error) {
	if err := r.CreateMarkets(scenario.Markets); err != nil {
		return Result{}, err
	}

	batch := make([]model.StepRecord, 0, r.cfg.BatchSize)
	var result Result

	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		record := r.execute(i+1, step)
		result.Steps++
		if record.Error != "" {
			result.Failed++
			r.logger.Warn("step failed",
				zap.Int("seq", record.Seq),
				zap.String("market", record.Market),
				zap.String("action", record.Action),
				zap.String("error", record.Error),
			)
		}
		batch = append(batch, record)

		if len(batch) >= r.cfg.BatchSize {
			if err := r.storage.PutStepBatch(batch); err != nil {
				return result, fmt.Errorf("store steps: %w", err)
			}
			batch = batch[:0]
		}

		if record.Error != "" && r.cfg.StopOnError {
			if err := r.storage.PutStepBatch(batch); err != nil {
				return result, fmt.Errorf("store steps: %w", err)
			}
			return result, fmt.Errorf("step %d (%s %s): %s", record.Seq, record.Action, record.Market, record.Error)
		}
	}

	if err := r.storage.PutStepBatch(batch); err != nil {
		return result, fmt.Errorf("store steps: %w", err)
	}

	result.Summaries = r.summaries()
	if err := r.storage.PutSummaries(result.Summaries); err != nil {
		return result, fmt.Errorf("store summaries: %w", err)
	}

	r.logger.Info("run complete",
		zap.Int("markets", len(result.Summaries)),
		zap.Int("steps", result.Steps),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// CreateMarkets registers every market spec.
func (r *Runner) CreateMarkets(specs []model.MarketSpec) error {
	for _, spec := range specs {
		if _, err := r.registry.Create(spec.Name, spec.Threshold, spec.InitialLiquidity); err != nil {
			return err
		}
		r.accumulators[spec.Name] = NewAccumulator(spec.Name)
	}
	return nil
}

func (r *Runner) execute(seq int, step model.Step) model.StepRecord {
	action := strings.ToLower(strings.TrimSpace(step.Action))
	record := model.StepRecord{
		Kind:       model.KindStep,
		Seq:        seq,
		MarketID:   model.MarketID(step.Market),
		Market:     step.Market,
		Action:     action,
		RecordedAt: r.cfg.Now().UTC().Format(time.RFC3339Nano),
	}

	m, err := r.registry.Get(step.Market)
	if err != nil {
		record.Error = err.Error()
		return record
	}
	acc := r.accumulator(step.Market)

	if err := r.apply(m, acc, step, &record); err != nil {
		record.Error = err.Error()
		acc.AddFailure()
	}
	record.State = m.Snapshot()

	r.logger.Debug("step",
		zap.Int("seq", record.Seq),
		zap.String("market", record.Market),
		zap.String("action", record.Action),
		zap.String("side", string(record.Side)),
		zap.Float64("shares", record.Shares),
	)
	return record
}

func (r *Runner) apply(m *market.Market, acc *Accumulator, step model.Step, record *model.StepRecord) error {
	switch record.Action {
	case model.ActionPrice:
		price, err := m.CurrentPrice()
		if err != nil {
			return fmt.Errorf("current price: %w", err)
		}
		record.Price = &price
		return nil

	case model.ActionBuy:
		record.Amount = step.Amount
		side, err := model.ParseSide(step.Side)
		if err != nil {
			return err
		}
		record.Side = side
		shares, err := m.BuyShares(side, step.Amount)
		if err != nil {
			return fmt.Errorf("buy shares: %w", err)
		}
		record.Shares = shares
		acc.AddBuy(side, step.Amount, shares)
		return nil

	case model.ActionResolve:
		result, err := model.ParseSide(step.Result)
		if err != nil {
			return err
		}
		record.Side = result
		res, err := m.ResolveMarket(result)
		if err != nil {
			return fmt.Errorf("resolve market: %w", err)
		}
		record.Resolution = &res
		acc.AddResolution(res)
		return nil

	default:
		return fmt.Errorf("unknown action: %q", step.Action)
	}
}

func (r *Runner) accumulator(name string) *Accumulator {
	acc := r.accumulators[name]
	if acc == nil {
		acc = NewAccumulator(name)
		r.accumulators[name] = acc
	}
	return acc
}

func (r *Runner) summaries() []model.MarketSummary {
	names := r.registry.Names()
	out := make([]model.MarketSummary, 0, len(names))
	for _, name := range names {
		m, err := r.registry.Get(name)
		if err != nil {
			r.logger.Warn("summary market missing", zap.String("market", name), zap.Error(err))
			continue
		}
		out = append(out, r.accumulator(name).Summary(m))
	}
	return out
}
