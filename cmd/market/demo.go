package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"predictionMarket/internal/config"
	"predictionMarket/internal/registry"
	"predictionMarket/internal/simulate"
	"predictionMarket/internal/storage"
)

func runDemo(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDemo(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Name == "" {
		return fmt.Errorf("market name is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, err := newSink(cfg.Out)
	if err != nil {
		return err
	}

	scenario := simulate.DemoScenario(simulate.DemoOptions{
		Name:             cfg.Name,
		Threshold:        cfg.Threshold,
		InitialLiquidity: cfg.InitialLiquidity,
		Amount:           cfg.Amount,
		Result:           cfg.Result,
	})

	fields := []zap.Field{
		zap.String("market", cfg.Name),
		zap.Float64("threshold", cfg.Threshold),
		zap.Float64("amount", cfg.Amount),
		zap.String("result", cfg.Result),
		zap.String("out", cfg.Out),
	}
	if cfg.InitialLiquidity != nil {
		fields = append(fields, zap.Float64("initial_liquidity", *cfg.InitialLiquidity))
	}
	logger.Info("demo start", fields...)

	runner := simulate.NewRunner(simulate.Config{}, registry.New(logger), sink, logger)
	result, err := runner.Run(ctx, scenario)
	if err != nil {
		return err
	}

	return printReport(cmd.OutOrStdout(), result, runner.Registry().List())
}

func newSink(path string) (storage.Storage, error) {
	if path == "" {
		return storage.NopStorage{}, nil
	}
	sink := storage.NewJsonlStorage(path)
	if err := sink.Reset(); err != nil {
		return nil, err
	}
	return sink, nil
}
