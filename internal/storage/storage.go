package storage

import "predictionMarket/internal/model"

// Storage defines a sink for run reports.
type Storage interface {
	PutStepBatch(steps []model.StepRecord) error
	PutSummaries(summaries []model.MarketSummary) error
}

// NopStorage discards everything.
type NopStorage struct{}

func (NopStorage) PutStepBatch([]model.StepRecord) error { return nil }
func (NopStorage) PutSummaries([]model.MarketSummary) error { return nil }
